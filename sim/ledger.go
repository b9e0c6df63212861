package sim

import (
	"fmt"

	"github.com/rustyeddy/tycoon/session"
	"github.com/shopspring/decimal"
)

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Fill reports a settled order. Total is the cash debited for a buy
// (gross plus fee) or credited for a sell (gross minus fee).
type Fill struct {
	Side   Side
	Shares int64
	Price  float64
	Gross  float64
	Fee    float64
	Total  float64
}

// Buy purchases amount shares at the latest close. On error the ledger and
// log are unchanged.
func (e *Engine) Buy(s *session.State, amount int64) (Fill, error) {
	if amount <= 0 {
		return Fill{}, fmt.Errorf("buy %d: %w", amount, ErrInvalidAmount)
	}

	gross, fee := e.quote(amount, s.LatestClose)
	total := gross.Add(fee)

	cash := decimal.NewFromFloat(s.Ledger.Cash)
	if cash.LessThan(total) {
		return Fill{}, &InsufficientFundsError{
			Shares: amount,
			Total:  total.InexactFloat64(),
			Fee:    fee.InexactFloat64(),
			Cash:   s.Ledger.Cash,
		}
	}

	s.Ledger = session.Ledger{
		Cash:   cash.Sub(total).InexactFloat64(),
		Shares: s.Ledger.Shares + amount,
	}

	f := Fill{
		Side:   SideBuy,
		Shares: amount,
		Price:  s.LatestClose,
		Gross:  gross.InexactFloat64(),
		Fee:    fee.InexactFloat64(),
		Total:  total.InexactFloat64(),
	}
	s.Logf("Day %d: bought %d shares for $%s (fee $%s)",
		s.Day, amount, session.Money(f.Gross), session.Money(f.Fee))
	e.logger.Debug("fill", "side", f.Side, "shares", f.Shares, "price", f.Price, "total", f.Total)
	return f, nil
}

// Sell disposes of amount shares at the latest close. On error the ledger
// and log are unchanged.
func (e *Engine) Sell(s *session.State, amount int64) (Fill, error) {
	if amount <= 0 {
		return Fill{}, fmt.Errorf("sell %d: %w", amount, ErrInvalidAmount)
	}
	if s.Ledger.Shares < amount {
		return Fill{}, fmt.Errorf("sell %d: %w: holding %d", amount, ErrInsufficientShares, s.Ledger.Shares)
	}

	gross, fee := e.quote(amount, s.LatestClose)
	net := gross.Sub(fee)

	s.Ledger = session.Ledger{
		Cash:   decimal.NewFromFloat(s.Ledger.Cash).Add(net).InexactFloat64(),
		Shares: s.Ledger.Shares - amount,
	}

	f := Fill{
		Side:   SideSell,
		Shares: amount,
		Price:  s.LatestClose,
		Gross:  gross.InexactFloat64(),
		Fee:    fee.InexactFloat64(),
		Total:  net.InexactFloat64(),
	}
	s.Logf("Day %d: sold %d shares for $%s (fee $%s)",
		s.Day, amount, session.Money(f.Gross), session.Money(f.Fee))
	e.logger.Debug("fill", "side", f.Side, "shares", f.Shares, "price", f.Price, "total", f.Total)
	return f, nil
}

func (e *Engine) quote(amount int64, price float64) (gross, fee decimal.Decimal) {
	gross = decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(price))
	fee = gross.Mul(e.feeRate)
	return gross, fee
}
