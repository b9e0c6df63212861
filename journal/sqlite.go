package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(f FillRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(fill_id, session_id, day, side, shares, price, gross, fee, total, cash, shares_after, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.FillID, f.SessionID, f.Day, f.Side, f.Shares, f.Price,
		f.Gross, f.Fee, f.Total, f.Cash, f.SharesAfter, f.Time,
	)
	return err
}

func (j *SQLite) RecordDay(d DayRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO days
		(session_id, day, open, high, low, close, news, cash, shares, equity, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.SessionID, d.Day, d.Open, d.High, d.Low, d.Close,
		d.News, d.Cash, d.Shares, d.Equity, d.Time,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
