// Package persist saves and restores a session.State.
//
// The save format is a JSON object with fixed field names:
//
//	{"balance": 94985, "shares": 50, "price": 101.2, "day": 7,
//	 "log": ["..."], "history_json": "[{\"Day\":0,\"Open\":100,...}]"}
//
// history_json is itself an encoded JSON document, not a nested array;
// existing save files depend on that shape.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/session"
)

var ErrCorruptSave = errors.New("corrupt save")

type saveFile struct {
	Balance     *float64  `json:"balance"`
	Shares      *int64    `json:"shares"`
	Price       *float64  `json:"price"`
	Day         *int      `json:"day"`
	Log         *[]string `json:"log"`
	HistoryJSON *string   `json:"history_json"`
}

// Encode serializes s. Today's news is not part of the save.
func Encode(s *session.State) ([]byte, error) {
	history := s.History
	if history == nil {
		history = []market.Bar{}
	}
	hist, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	log := s.Log
	if log == nil {
		log = []string{}
	}
	histStr := string(hist)

	out, err := json.Marshal(saveFile{
		Balance:     &s.Ledger.Cash,
		Shares:      &s.Ledger.Shares,
		Price:       &s.LatestClose,
		Day:         &s.Day,
		Log:         &log,
		HistoryJSON: &histStr,
	})
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return out, nil
}

// Decode parses and validates a save payload and returns a new State. The
// restored state has no current news and one extra log line recording the
// restore. Every failure wraps ErrCorruptSave.
func Decode(data []byte) (*session.State, error) {
	s, err := parse(data)
	if err != nil {
		return nil, err
	}
	s.Logf("Session restored on day %d", s.Day)
	return s, nil
}

func parse(data []byte) (*session.State, error) {
	var f saveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, corrupt("%v", err)
	}

	switch {
	case f.Balance == nil:
		return nil, missing("balance")
	case f.Shares == nil:
		return nil, missing("shares")
	case f.Price == nil:
		return nil, missing("price")
	case f.Day == nil:
		return nil, missing("day")
	case f.Log == nil:
		return nil, missing("log")
	case f.HistoryJSON == nil:
		return nil, missing("history_json")
	}

	var history []market.Bar
	if err := json.Unmarshal([]byte(*f.HistoryJSON), &history); err != nil {
		return nil, corrupt("history_json: %v", err)
	}

	s := &session.State{
		Ledger:      session.Ledger{Cash: *f.Balance, Shares: *f.Shares},
		LatestClose: *f.Price,
		Day:         *f.Day,
		History:     history,
		Log:         append([]string(nil), (*f.Log)...),
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore decodes data and replaces *dst with the result. On error dst is
// left exactly as it was.
func Restore(dst *session.State, data []byte) error {
	s, err := Decode(data)
	if err != nil {
		return err
	}
	*dst = *s
	return nil
}

func validate(s *session.State) error {
	if s.Ledger.Cash < 0 {
		return corrupt("negative balance %v", s.Ledger.Cash)
	}
	if s.Ledger.Shares < 0 {
		return corrupt("negative shares %d", s.Ledger.Shares)
	}
	if !(s.LatestClose > 0) {
		return corrupt("non-positive price %v", s.LatestClose)
	}
	if s.Day < 1 {
		return corrupt("day %d is before day 1", s.Day)
	}
	if len(s.History) == 0 {
		return corrupt("empty history")
	}
	// History runs day 0, 1, ... with no gaps and ends the day before Day,
	// so the next simulated bar lands right after it.
	for i, b := range s.History {
		if err := b.Validate(); err != nil {
			return corrupt("history: %v", err)
		}
		if b.Day != i {
			return corrupt("history bar %d has day %d, want %d", i, b.Day, i)
		}
	}
	if last := s.History[len(s.History)-1].Day; last != s.Day-1 {
		return corrupt("day %d does not follow history ending on day %d", s.Day, last)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing field %q", ErrCorruptSave, field)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptSave, fmt.Sprintf(format, args...))
}
