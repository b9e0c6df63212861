// Package indicators provides technical readouts over the daily price history
package indicators

import "github.com/rustyeddy/tycoon/market"

// Indicator computes a single streaming value from bars.
// It is deterministic: the same bars always give the same value.
type Indicator interface {
	// Name returns a stable identifier like "EMA(10)" or "ATR(14)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next closed bar.
	Update(b market.Bar)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current value, or 0 before warmup completes.
	Value() float64
}

// Reading is one indicator value with its name.
type Reading struct {
	Name  string
	Value float64
}

// Calculate resets ind, feeds it every bar and returns the final value.
// ok is false when there are too few bars.
func Calculate(ind Indicator, bars []market.Bar) (v float64, ok bool) {
	ind.Reset()
	for _, b := range bars {
		ind.Update(b)
	}
	return ind.Value(), ind.Ready()
}

// Standard returns the indicators shown alongside the game status.
func Standard() []Indicator {
	return []Indicator{NewMA(5), NewMA(20), NewEMA(10), NewATR(14)}
}

// Readings runs the standard set over bars, skipping indicators that are
// still warming up.
func Readings(bars []market.Bar) []Reading {
	var out []Reading
	for _, ind := range Standard() {
		if v, ok := Calculate(ind, bars); ok {
			out = append(out, Reading{Name: ind.Name(), Value: v})
		}
	}
	return out
}
