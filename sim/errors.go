package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// InsufficientFundsError carries the cost of the rejected buy so the
// caller can show the player what they were short.
type InsufficientFundsError struct {
	Shares int64
	Total  float64
	Fee    float64
	Cash   float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: %d shares cost $%.2f including $%.2f fee, cash is $%.2f",
		ErrInsufficientFunds, e.Shares, e.Total, e.Fee, e.Cash)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }
