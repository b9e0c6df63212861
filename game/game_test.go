package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/persist"
	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJournal struct {
	fills  []journal.FillRecord
	days   []journal.DayRecord
	closed bool
	err    error
}

func (j *testJournal) RecordFill(rec journal.FillRecord) error {
	if j.err != nil {
		return j.err
	}
	j.fills = append(j.fills, rec)
	return nil
}

func (j *testJournal) RecordDay(rec journal.DayRecord) error {
	if j.err != nil {
		return j.err
	}
	j.days = append(j.days, rec)
	return nil
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

var fixedNow = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func newGame(t *testing.T, p sim.Params) (*Game, *testJournal) {
	t.Helper()
	j := &testJournal{}
	g, err := New(Config{
		Params:    p,
		Source:    sim.NewSource(7),
		Journal:   j,
		SessionID: "S1",
		Now:       func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return g, j
}

func TestNewDefaults(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	s := g.State()
	assert.Equal(t, 1, s.Day)
	assert.Equal(t, session.DefaultCash, s.Ledger.Cash)
	assert.Equal(t, session.DefaultPrice, s.LatestClose)
	assert.Len(t, g.SessionID(), 26)
	assert.Equal(t, 0.0, g.ProfitLoss())
	assert.NoError(t, g.Close())
}

func TestNewRejectsBadParams(t *testing.T) {
	p := sim.DefaultParams()
	p.Volatility = 5
	_, err := New(Config{Params: p})
	assert.Error(t, err)
}

func TestNewResumesState(t *testing.T) {
	s := session.New(500, 20)
	s.Day = 9
	g, err := New(Config{State: s, InitialCash: 500})
	require.NoError(t, err)
	assert.Equal(t, 9, g.State().Day)
	assert.Equal(t, 500.0, g.Equity())
}

func TestBuySellJournaled(t *testing.T) {
	g, j := newGame(t, sim.DefaultParams())

	fill, err := g.Buy(100)
	require.NoError(t, err)
	assert.InDelta(t, 10010.0, fill.Total, 1e-9)

	_, err = g.Sell(50)
	require.NoError(t, err)

	require.Len(t, j.fills, 2)
	buy, sell := j.fills[0], j.fills[1]
	assert.Equal(t, "S1", buy.SessionID)
	assert.Equal(t, "buy", buy.Side)
	assert.Equal(t, 1, buy.Day)
	assert.InDelta(t, 89990.0, buy.Cash, 1e-9)
	assert.Equal(t, int64(100), buy.SharesAfter)
	assert.Equal(t, fixedNow, buy.Time)
	assert.NotEmpty(t, buy.FillID)

	assert.Equal(t, "sell", sell.Side)
	assert.InDelta(t, 94985.0, sell.Cash, 1e-9)
	assert.Equal(t, int64(50), sell.SharesAfter)
	assert.NotEqual(t, buy.FillID, sell.FillID)

	assert.InDelta(t, -15.0, g.ProfitLoss(), 1e-9)
}

func TestRejectedOrdersNotJournaled(t *testing.T) {
	g, j := newGame(t, sim.DefaultParams())
	before := g.State()

	_, err := g.Buy(0)
	assert.ErrorIs(t, err, sim.ErrInvalidAmount)
	_, err = g.Sell(1)
	assert.ErrorIs(t, err, sim.ErrInsufficientShares)
	_, err = g.Buy(1_000_000)
	assert.ErrorIs(t, err, sim.ErrInsufficientFunds)

	assert.Empty(t, j.fills)
	assert.Equal(t, before, g.State())
}

func TestAdvanceJournalsDay(t *testing.T) {
	p := sim.DefaultParams()
	p.NewsProbability = 1
	g, j := newGame(t, p)

	bars := g.AdvanceN(3)
	require.Len(t, bars, 3)
	require.Len(t, j.days, 3)

	for i, d := range j.days {
		assert.Equal(t, bars[i].Day, d.Day)
		assert.Equal(t, bars[i].Close, d.Close)
		assert.NotEmpty(t, d.News)
		assert.Equal(t, fixedNow, d.Time)
	}
	last := j.days[2]
	assert.InDelta(t, g.Equity(), last.Equity, 1e-9)
	assert.Empty(t, g.AdvanceN(0))
}

func TestJournalFailureDoesNotFailCommand(t *testing.T) {
	g, j := newGame(t, sim.DefaultParams())
	j.err = errors.New("disk full")

	_, err := g.Buy(10)
	require.NoError(t, err)
	g.Advance()

	s := g.State()
	assert.Equal(t, int64(10), s.Ledger.Shares)
	assert.Equal(t, 2, s.Day)
}

func TestSaveLoad(t *testing.T) {
	g, _ := newGame(t, sim.DefaultParams())
	_, err := g.Buy(40)
	require.NoError(t, err)
	g.AdvanceN(5)

	data, err := g.Save()
	require.NoError(t, err)
	saved := g.State()

	g.AdvanceN(5)
	_, err = g.Sell(40)
	require.NoError(t, err)

	require.NoError(t, g.Load(data))
	got := g.State()
	assert.Equal(t, saved.Ledger, got.Ledger)
	assert.Equal(t, saved.Day, got.Day)
	assert.Equal(t, saved.History, got.History)
	assert.Nil(t, got.CurrentNews)
	assert.Len(t, got.Log, len(saved.Log)+1)
}

func TestLoadCorruptKeepsState(t *testing.T) {
	g, _ := newGame(t, sim.DefaultParams())
	g.AdvanceN(2)
	before := g.State()

	err := g.Load([]byte(`{"balance": 1, "shares": 0}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, persist.ErrCorruptSave)
	assert.Equal(t, before, g.State())
}

func TestStateIsACopy(t *testing.T) {
	g, _ := newGame(t, sim.DefaultParams())
	s := g.State()
	s.Ledger.Cash = 0
	s.Log = append(s.Log, "tampered")

	assert.Equal(t, session.DefaultCash, g.State().Ledger.Cash)
	assert.NotContains(t, g.State().Log, "tampered")
}

func TestClose(t *testing.T) {
	g, j := newGame(t, sim.DefaultParams())
	require.NoError(t, g.Close())
	assert.True(t, j.closed)
}

func TestAffordable(t *testing.T) {
	g, _ := newGame(t, sim.DefaultParams())

	r, err := g.Affordable(1)
	require.NoError(t, err)
	assert.Equal(t, int64(999), r.Shares)

	_, err = g.Buy(r.Shares)
	require.NoError(t, err)

	r, err = g.Affordable(1)
	require.NoError(t, err)
	assert.Zero(t, r.Shares)

	_, err = g.Affordable(0)
	assert.Error(t, err)
}
