// Package session holds the state of one player's game: the ledger, the
// price history, today's news and the narrative log. A State is the unit
// that gets saved and restored.
package session

import (
	"fmt"

	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/news"
)

const (
	DefaultCash  = 100000.0
	DefaultPrice = 100.0
)

// Ledger is the player's holdings. Cash and Shares are always updated
// together.
type Ledger struct {
	Cash   float64
	Shares int64
}

// State is owned by exactly one running session and is passed explicitly
// to every engine call.
type State struct {
	Ledger      Ledger
	LatestClose float64
	Day         int
	History     []market.Bar

	// CurrentNews is set only for the day just simulated.
	CurrentNews *news.Event
	Log         []string
}

// New starts a session on day 1 holding only cash, with the seed bar at
// price as its history.
func New(cash, price float64) *State {
	s := &State{
		Ledger:      Ledger{Cash: cash},
		LatestClose: price,
		Day:         1,
		History:     []market.Bar{market.SeedBar(price)},
	}
	s.Logf("Game started! Initial cash $%s", Money(cash))
	return s
}

// Logf appends one formatted line to the session log.
func (s *State) Logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

// Equity is cash plus shares valued at the latest close.
func (s *State) Equity() float64 {
	return s.Ledger.Cash + float64(s.Ledger.Shares)*s.LatestClose
}

// LastBar returns the most recent bar in the history.
func (s *State) LastBar() market.Bar {
	if len(s.History) == 0 {
		return market.SeedBar(s.LatestClose)
	}
	return s.History[len(s.History)-1]
}

// RecentLog returns up to n log lines, newest first.
func (s *State) RecentLog(n int) []string {
	if n <= 0 || n > len(s.Log) {
		n = len(s.Log)
	}
	out := make([]string, 0, n)
	for i := len(s.Log) - 1; i >= len(s.Log)-n; i-- {
		out = append(out, s.Log[i])
	}
	return out
}

// Clone returns a deep copy that shares nothing with s.
func (s *State) Clone() *State {
	c := *s
	c.History = append([]market.Bar(nil), s.History...)
	c.Log = append([]string(nil), s.Log...)
	if s.CurrentNews != nil {
		ev := *s.CurrentNews
		c.CurrentNews = &ev
	}
	return &c
}
