package sim

import (
	"math"

	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/news"
	"github.com/rustyeddy/tycoon/session"
)

// Advance simulates one trading day. It appends the new bar to the
// history, moves the latest close, bumps the day counter, replaces the
// current news and writes exactly one log line. It cannot fail.
//
// Draw order: news trigger, news index (only when triggered), base move,
// high multiplier, low multiplier.
func (e *Engine) Advance(s *session.State) market.Bar {
	last := s.LatestClose

	s.CurrentNews = nil
	impact := 0.0
	if e.rng.Float64() < e.params.NewsProbability {
		ev := news.At(e.rng.IntN(news.Len()))
		s.CurrentNews = &ev
		impact = ev.Impact
	}

	base := uniform(e.rng, -e.params.Volatility, e.params.Volatility)

	closePx := last * (1 + base + impact)
	if closePx < e.params.PriceFloor {
		closePx = e.params.PriceFloor
	}

	high := math.Max(last, closePx) * uniform(e.rng, highJitterMin, highJitterMax)
	low := math.Min(last, closePx) * uniform(e.rng, lowJitterMin, lowJitterMax)

	bar := market.Bar{
		Day:   s.Day,
		Open:  last,
		High:  high,
		Low:   low,
		Close: closePx,
	}
	s.History = append(s.History, bar)
	s.LatestClose = closePx
	s.Day++

	if ev := s.CurrentNews; ev != nil {
		s.Logf("Day %d news: %s", bar.Day, ev.Title)
		e.logger.Debug("news shock",
			"day", bar.Day,
			"title", ev.Title,
			"impact", ev.Impact,
			"sentiment", ev.Sentiment.String())
	} else {
		s.Logf("Day %d: price moved %+.2f%%", bar.Day, bar.Change()*100)
	}

	return bar
}

// AdvanceN runs n days and returns the bars produced, oldest first.
func (e *Engine) AdvanceN(s *session.State, n int) []market.Bar {
	if n <= 0 {
		return nil
	}
	bars := make([]market.Bar, 0, n)
	for i := 0; i < n; i++ {
		bars = append(bars, e.Advance(s))
	}
	return bars
}
