// Package risk sizes orders against the cash available.
package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrBadInputs = errors.New("bad sizing inputs")

type Inputs struct {
	Cash     float64
	Price    float64
	FeeRate  float64
	Fraction float64 // share of cash to commit, in (0, 1]
}

type Result struct {
	Shares int64
	Gross  float64
	Fee    float64
	Total  float64
}

// Calculate returns the largest whole number of shares whose cost,
// fee included, fits in Fraction of Cash.
func Calculate(in Inputs) (Result, error) {
	switch {
	case in.Price <= 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0):
		return Result{}, fmt.Errorf("%w: price %v", ErrBadInputs, in.Price)
	case in.Cash < 0:
		return Result{}, fmt.Errorf("%w: cash %v", ErrBadInputs, in.Cash)
	case in.FeeRate < 0:
		return Result{}, fmt.Errorf("%w: fee rate %v", ErrBadInputs, in.FeeRate)
	case !(in.Fraction > 0 && in.Fraction <= 1):
		return Result{}, fmt.Errorf("%w: fraction %v", ErrBadInputs, in.Fraction)
	}

	budget := decimal.NewFromFloat(in.Cash)
	if in.Fraction < 1 {
		budget = budget.Mul(decimal.NewFromFloat(in.Fraction))
	}
	fits := func(n int64) bool {
		_, _, total := Cost(n, in.Price, in.FeeRate)
		return total.LessThanOrEqual(budget)
	}

	// Binary search for the largest fitting count. fits(lo) always holds
	// and the answer is below hi. The float estimate only narrows hi.
	lo, hi := int64(0), int64(math.MaxInt64)
	if est := in.Cash * in.Fraction / (in.Price * (1 + in.FeeRate)); est < 1<<61 {
		if h := int64(est)*2 + 2; !fits(h) {
			hi = h
		}
	}
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	n := lo

	gross, fee, total := Cost(n, in.Price, in.FeeRate)
	return Result{
		Shares: n,
		Gross:  gross.InexactFloat64(),
		Fee:    fee.InexactFloat64(),
		Total:  total.InexactFloat64(),
	}, nil
}
