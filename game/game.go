// Package game is the driver-facing facade over the engine. A Game owns
// exactly one session.State and exposes the commands a player can issue:
// advance, buy, sell, save and load. Every command runs to completion
// before the next; Game does no locking of its own.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/persist"
	"github.com/rustyeddy/tycoon/pkg/id"
	"github.com/rustyeddy/tycoon/risk"
	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
)

// Config wires a Game. Zero values fall back to defaults.
type Config struct {
	Params      sim.Params
	Source      sim.Source
	InitialCash float64
	// State resumes an existing session instead of starting a new one.
	State     *session.State
	SessionID string
	Journal   journal.Journal
	Logger    *slog.Logger
	Now       func() time.Time
}

type Game struct {
	id        string
	startCash float64
	engine    *sim.Engine
	state     *session.State
	journal   journal.Journal
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a Game from cfg. With no State a fresh session starts at the
// default cash and price.
func New(cfg Config) (*Game, error) {
	if cfg.Params == (sim.Params{}) {
		cfg.Params = sim.DefaultParams()
	}
	if cfg.Source == nil {
		cfg.Source = sim.NewSource(uint64(time.Now().UnixNano()))
	}
	if cfg.InitialCash == 0 {
		cfg.InitialCash = session.DefaultCash
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Journal == nil {
		cfg.Journal = journal.Discard
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SessionID == "" {
		cfg.SessionID = id.New()
	}
	if cfg.State == nil {
		cfg.State = session.New(cfg.InitialCash, session.DefaultPrice)
	}

	engine, err := sim.NewEngine(cfg.Params, cfg.Source, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	return &Game{
		id:        cfg.SessionID,
		startCash: cfg.InitialCash,
		engine:    engine,
		state:     cfg.State,
		journal:   cfg.Journal,
		logger:    cfg.Logger.With("session", cfg.SessionID),
		now:       cfg.Now,
	}, nil
}

func (g *Game) SessionID() string { return g.id }

// State returns a deep copy of the current session for rendering.
func (g *Game) State() *session.State { return g.state.Clone() }

// Equity is cash plus shares at the latest close.
func (g *Game) Equity() float64 { return g.state.Equity() }

// ProfitLoss is equity relative to the starting cash.
func (g *Game) ProfitLoss() float64 { return g.state.Equity() - g.startCash }

// Advance simulates one day.
func (g *Game) Advance() market.Bar {
	bar := g.engine.Advance(g.state)
	g.recordDay(bar)
	g.logger.Info("advance", "day", bar.Day, "close", bar.Close, "news", g.state.CurrentNews != nil)
	return bar
}

// AdvanceN simulates n days and returns the new bars.
func (g *Game) AdvanceN(n int) []market.Bar {
	bars := make([]market.Bar, 0, max(n, 0))
	for i := 0; i < n; i++ {
		bars = append(bars, g.Advance())
	}
	return bars
}

func (g *Game) Buy(amount int64) (sim.Fill, error) {
	fill, err := g.engine.Buy(g.state, amount)
	if err != nil {
		g.logger.Info("buy rejected", "amount", amount, "err", err)
		return fill, err
	}
	g.recordFill(fill)
	g.logger.Info("buy", "shares", fill.Shares, "price", fill.Price, "total", fill.Total)
	return fill, nil
}

func (g *Game) Sell(amount int64) (sim.Fill, error) {
	fill, err := g.engine.Sell(g.state, amount)
	if err != nil {
		g.logger.Info("sell rejected", "amount", amount, "err", err)
		return fill, err
	}
	g.recordFill(fill)
	g.logger.Info("sell", "shares", fill.Shares, "price", fill.Price, "total", fill.Total)
	return fill, nil
}

// Affordable sizes the largest buy that fits in fraction of the cash at
// the latest close.
func (g *Game) Affordable(fraction float64) (risk.Result, error) {
	return risk.Calculate(risk.Inputs{
		Cash:     g.state.Ledger.Cash,
		Price:    g.state.LatestClose,
		FeeRate:  g.engine.Params().FeeRate,
		Fraction: fraction,
	})
}

// Save exports the session in the portable save format.
func (g *Game) Save() ([]byte, error) {
	return persist.Encode(g.state)
}

// Load replaces the whole session with the one in data. On error nothing
// changes.
func (g *Game) Load(data []byte) error {
	if err := persist.Restore(g.state, data); err != nil {
		g.logger.Warn("load rejected", "err", err)
		return err
	}
	g.logger.Info("load", "day", g.state.Day, "cash", g.state.Ledger.Cash, "shares", g.state.Ledger.Shares)
	return nil
}

// Close releases the journal.
func (g *Game) Close() error {
	return g.journal.Close()
}

func (g *Game) recordDay(bar market.Bar) {
	rec := journal.DayRecord{
		SessionID: g.id,
		Day:       bar.Day,
		Open:      bar.Open,
		High:      bar.High,
		Low:       bar.Low,
		Close:     bar.Close,
		Cash:      g.state.Ledger.Cash,
		Shares:    g.state.Ledger.Shares,
		Equity:    g.state.Equity(),
		Time:      g.now(),
	}
	if ev := g.state.CurrentNews; ev != nil {
		rec.News = ev.Title
	}
	if err := g.journal.RecordDay(rec); err != nil {
		g.logger.Warn("journal day", "day", bar.Day, "err", err)
	}
}

func (g *Game) recordFill(f sim.Fill) {
	rec := journal.FillRecord{
		FillID:      id.New(),
		SessionID:   g.id,
		Day:         g.state.Day,
		Side:        string(f.Side),
		Shares:      f.Shares,
		Price:       f.Price,
		Gross:       f.Gross,
		Fee:         f.Fee,
		Total:       f.Total,
		Cash:        g.state.Ledger.Cash,
		SharesAfter: g.state.Ledger.Shares,
		Time:        g.now(),
	}
	if err := g.journal.RecordFill(rec); err != nil {
		g.logger.Warn("journal fill", "fill", rec.FillID, "err", err)
	}
}
