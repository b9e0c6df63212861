package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/rustyeddy/tycoon/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyThenSellScenario(t *testing.T) {
	e := newTestEngine(t, NewSource(1))
	s := session.New(session.DefaultCash, session.DefaultPrice)

	fill, err := e.Buy(s, 100)
	require.NoError(t, err)
	assert.Equal(t, SideBuy, fill.Side)
	assert.Equal(t, int64(100), fill.Shares)
	assert.Equal(t, 100.0, fill.Price)
	assert.InDelta(t, 10000.0, fill.Gross, 1e-9)
	assert.InDelta(t, 10.0, fill.Fee, 1e-9)
	assert.InDelta(t, 10010.0, fill.Total, 1e-9)
	assert.InDelta(t, 89990.0, s.Ledger.Cash, 1e-9)
	assert.Equal(t, int64(100), s.Ledger.Shares)
	assert.Equal(t, "Day 1: bought 100 shares for $10,000.00 (fee $10.00)", s.Log[len(s.Log)-1])

	fill, err = e.Sell(s, 50)
	require.NoError(t, err)
	assert.Equal(t, SideSell, fill.Side)
	assert.InDelta(t, 5000.0, fill.Gross, 1e-9)
	assert.InDelta(t, 5.0, fill.Fee, 1e-9)
	assert.InDelta(t, 4995.0, fill.Total, 1e-9)
	assert.InDelta(t, 94985.0, s.Ledger.Cash, 1e-9)
	assert.Equal(t, int64(50), s.Ledger.Shares)
	assert.Equal(t, "Day 1: sold 50 shares for $5,000.00 (fee $5.00)", s.Log[len(s.Log)-1])
}

func TestOrderRejections(t *testing.T) {
	tests := []struct {
		name   string
		shares int64
		run    func(*Engine, *session.State) error
		target error
	}{
		{"buy zero", 0, func(e *Engine, s *session.State) error { _, err := e.Buy(s, 0); return err }, ErrInvalidAmount},
		{"buy negative", 0, func(e *Engine, s *session.State) error { _, err := e.Buy(s, -5); return err }, ErrInvalidAmount},
		{"sell zero", 10, func(e *Engine, s *session.State) error { _, err := e.Sell(s, 0); return err }, ErrInvalidAmount},
		{"sell without shares", 0, func(e *Engine, s *session.State) error { _, err := e.Sell(s, 1); return err }, ErrInsufficientShares},
		{"sell more than held", 10, func(e *Engine, s *session.State) error { _, err := e.Sell(s, 11); return err }, ErrInsufficientShares},
		{"buy too much", 0, func(e *Engine, s *session.State) error { _, err := e.Buy(s, 1000); return err }, ErrInsufficientFunds},
		{"buy huge", 0, func(e *Engine, s *session.State) error { _, err := e.Buy(s, math.MaxInt64); return err }, ErrInsufficientFunds},
		{"sell huge", 10, func(e *Engine, s *session.State) error { _, err := e.Sell(s, math.MaxInt64); return err }, ErrInsufficientShares},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, NewSource(1))
			s := session.New(session.DefaultCash, session.DefaultPrice)
			s.Ledger.Shares = tt.shares
			before := s.Clone()

			err := tt.run(e, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, before, s)
		})
	}
}

func TestInsufficientFundsReportsCost(t *testing.T) {
	e := newTestEngine(t, NewSource(1))
	s := session.New(10000, session.DefaultPrice)

	// 100 shares cost 10000 gross, the fee tips it over
	_, err := e.Buy(s, 100)

	var fe *InsufficientFundsError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, int64(100), fe.Shares)
	assert.InDelta(t, 10010.0, fe.Total, 1e-9)
	assert.InDelta(t, 10.0, fe.Fee, 1e-9)
	assert.Equal(t, 10000.0, fe.Cash)
	assert.Contains(t, err.Error(), "$10010.00")
	assert.Contains(t, err.Error(), "$10.00 fee")
}

func TestBuyExactCash(t *testing.T) {
	e := newTestEngine(t, NewSource(1))
	s := session.New(10010, session.DefaultPrice)

	_, err := e.Buy(s, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Ledger.Cash)
	assert.Equal(t, int64(100), s.Ledger.Shares)
}

func TestRoundTripCostsTwoFees(t *testing.T) {
	e := newTestEngine(t, NewSource(1))
	s := session.New(session.DefaultCash, 37.13)

	_, err := e.Buy(s, 250)
	require.NoError(t, err)
	_, err = e.Sell(s, 250)
	require.NoError(t, err)

	want := session.DefaultCash - 2*250*37.13*DefaultFeeRate
	assert.InDelta(t, want, s.Ledger.Cash, 1e-6)
	assert.Equal(t, int64(0), s.Ledger.Shares)
}

func TestZeroFeeRate(t *testing.T) {
	p := DefaultParams()
	p.FeeRate = 0
	e, err := NewEngine(p, NewSource(1), nil)
	require.NoError(t, err)
	s := session.New(session.DefaultCash, session.DefaultPrice)

	fill, err := e.Buy(s, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fill.Fee)
	assert.Equal(t, fill.Gross, fill.Total)
}
