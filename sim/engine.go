// Package sim is the simulation and ledger engine: it advances the price
// of the stock one day at a time and settles the player's buy and sell
// orders against the latest close.
//
// The engine holds parameters and a random source only. All game data
// lives in a session.State that the caller owns and passes to every call.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

const (
	DefaultFeeRate         = 0.001
	DefaultNewsProbability = 0.20
	DefaultVolatility      = 0.03
)

// Intraday range multipliers applied to the body of each bar.
const (
	highJitterMin = 1.002
	highJitterMax = 1.01
	lowJitterMin  = 0.99
	lowJitterMax  = 0.998
)

// Params are the tunable constants of the market model.
type Params struct {
	// FeeRate is charged on the gross value of every fill, both directions.
	FeeRate float64
	// NewsProbability is the chance that a news event fires on a given day.
	NewsProbability float64
	// Volatility bounds the uniform daily base move to [-Volatility, +Volatility].
	Volatility float64
	// PriceFloor is the lowest possible close.
	PriceFloor float64
}

func DefaultParams() Params {
	return Params{
		FeeRate:         DefaultFeeRate,
		NewsProbability: DefaultNewsProbability,
		Volatility:      DefaultVolatility,
		PriceFloor:      1.0,
	}
}

func (p Params) Validate() error {
	if p.FeeRate < 0 || p.FeeRate >= 1 {
		return fmt.Errorf("fee rate must be in [0, 1), got %v", p.FeeRate)
	}
	if p.NewsProbability < 0 || p.NewsProbability > 1 {
		return fmt.Errorf("news probability must be in [0, 1], got %v", p.NewsProbability)
	}
	if p.Volatility < 0 || p.Volatility >= 1 {
		return fmt.Errorf("volatility must be in [0, 1), got %v", p.Volatility)
	}
	if p.PriceFloor <= 0 {
		return fmt.Errorf("price floor must be positive, got %v", p.PriceFloor)
	}
	return nil
}

type Engine struct {
	params  Params
	feeRate decimal.Decimal
	rng     Source
	logger  *slog.Logger
}

// NewEngine builds an engine. A nil logger falls back to slog.Default().
func NewEngine(p Params, rng Source, logger *slog.Logger) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("engine params: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: nil random source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		params:  p,
		feeRate: decimal.NewFromFloat(p.FeeRate),
		rng:     rng,
		logger:  logger,
	}, nil
}

func (e *Engine) Params() Params { return e.params }
