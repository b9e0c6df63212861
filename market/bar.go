package market

import (
	"fmt"
	"math"
)

// PriceFloor is the lowest close a simulated day can produce.
const PriceFloor = 1.0

// Bar is one simulated trading day: open, high, low and close.
// Bars are immutable once appended to a session history.
type Bar struct {
	Day   int
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// SeedBar is the synthetic day 0 bar with every field set to price.
func SeedBar(price float64) Bar {
	return Bar{Day: 0, Open: price, High: price, Low: price, Close: price}
}

// Change returns the fractional move from open to close.
func (b Bar) Change() float64 {
	if b.Open == 0 {
		return 0
	}
	return b.Close/b.Open - 1
}

// Validate reports whether b holds the OHLC invariant
// low <= min(open, close) <= max(open, close) <= high.
func (b Bar) Validate() error {
	if b.Day < 0 {
		return fmt.Errorf("bar day %d: negative day", b.Day)
	}
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("bar day %d: non-positive or non-finite price %v", b.Day, v)
		}
	}
	if b.Low > math.Min(b.Open, b.Close) {
		return fmt.Errorf("bar day %d: low %.4f above body", b.Day, b.Low)
	}
	if b.High < math.Max(b.Open, b.Close) {
		return fmt.Errorf("bar day %d: high %.4f below body", b.Day, b.High)
	}
	return nil
}
