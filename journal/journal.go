// journal/journal.go
package journal

import "time"

// FillRecord is one settled buy or sell.
type FillRecord struct {
	FillID      string
	SessionID   string
	Day         int
	Side        string
	Shares      int64
	Price       float64
	Gross       float64
	Fee         float64
	Total       float64
	Cash        float64 // cash after the fill
	SharesAfter int64
	Time        time.Time
}

// DayRecord is the close of one simulated day.
type DayRecord struct {
	SessionID string
	Day       int
	Open      float64
	High      float64
	Low       float64
	Close     float64
	News      string // empty on quiet days
	Cash      float64
	Shares    int64
	Equity    float64
	Time      time.Time
}

type Journal interface {
	RecordFill(FillRecord) error
	RecordDay(DayRecord) error
	Close() error
}

// Discard is a Journal that drops everything.
var Discard Journal = discard{}

type discard struct{}

func (discard) RecordFill(FillRecord) error { return nil }
func (discard) RecordDay(DayRecord) error   { return nil }
func (discard) Close() error                { return nil }
