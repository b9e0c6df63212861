package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	fillHeader = []string{"fill_id", "session_id", "day", "side", "shares", "price", "gross", "fee", "total", "cash", "shares_after", "time"}
	dayHeader  = []string{"session_id", "day", "open", "high", "low", "close", "news", "cash", "shares", "equity", "time"}
)

// CSV appends fills and days to two CSV files. Headers are written only
// when a file is new or empty, so one pair of files can collect many
// sessions.
type CSV struct {
	fills  *csv.Writer
	days   *csv.Writer
	ff, df *os.File
}

func NewCSV(fillsPath, daysPath string) (*CSV, error) {
	ff, fw, err := openAppend(fillsPath, fillHeader)
	if err != nil {
		return nil, err
	}
	df, dw, err := openAppend(daysPath, dayHeader)
	if err != nil {
		ff.Close()
		return nil, err
	}
	return &CSV{fills: fw, days: dw, ff: ff, df: df}, nil
}

func openAppend(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("write header %s: %w", path, err)
		}
	}
	return f, w, nil
}

func (j *CSV) RecordFill(r FillRecord) error {
	err := j.fills.Write([]string{
		r.FillID,
		r.SessionID,
		strconv.Itoa(r.Day),
		r.Side,
		strconv.FormatInt(r.Shares, 10),
		f(r.Price),
		f(r.Gross),
		f(r.Fee),
		f(r.Total),
		f(r.Cash),
		strconv.FormatInt(r.SharesAfter, 10),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.fills.Flush()
	return j.fills.Error()
}

func (j *CSV) RecordDay(d DayRecord) error {
	err := j.days.Write([]string{
		d.SessionID,
		strconv.Itoa(d.Day),
		f(d.Open),
		f(d.High),
		f(d.Low),
		f(d.Close),
		d.News,
		f(d.Cash),
		strconv.FormatInt(d.Shares, 10),
		f(d.Equity),
		d.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.days.Flush()
	return j.days.Error()
}

func (j *CSV) Close() error {
	j.fills.Flush()
	if err := j.fills.Error(); err != nil {
		return err
	}
	j.days.Flush()
	if err := j.days.Error(); err != nil {
		return err
	}

	if err := j.ff.Close(); err != nil {
		return err
	}
	if err := j.df.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
