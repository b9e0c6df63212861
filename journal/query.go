package journal

import (
	"database/sql"
	"errors"
	"fmt"
)

const fillColumns = `fill_id, session_id, day, side, shares, price, gross, fee, total, cash, shares_after, time`

type scanner interface {
	Scan(dest ...any) error
}

func scanFill(row scanner) (FillRecord, error) {
	var rec FillRecord
	err := row.Scan(
		&rec.FillID,
		&rec.SessionID,
		&rec.Day,
		&rec.Side,
		&rec.Shares,
		&rec.Price,
		&rec.Gross,
		&rec.Fee,
		&rec.Total,
		&rec.Cash,
		&rec.SharesAfter,
		&rec.Time,
	)
	return rec, err
}

// GetFill returns a single fill by ID.
func (j *SQLite) GetFill(fillID string) (FillRecord, error) {
	row := j.db.QueryRow(`SELECT `+fillColumns+` FROM fills WHERE fill_id = ?`, fillID)

	rec, err := scanFill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FillRecord{}, fmt.Errorf("fill %q not found", fillID)
		}
		return FillRecord{}, err
	}
	return rec, nil
}

// ListFills returns the fills of a session in the order they happened.
// An empty sessionID lists every session.
func (j *SQLite) ListFills(sessionID string) ([]FillRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+fillColumns+`
		FROM fills
		WHERE ? = '' OR session_id = ?
		ORDER BY time ASC, rowid ASC`, sessionID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FillRecord
	for rows.Next() {
		rec, err := scanFill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDays returns the daily closes of a session ordered by day.
// An empty sessionID lists every session.
func (j *SQLite) ListDays(sessionID string) ([]DayRecord, error) {
	rows, err := j.db.Query(`
		SELECT session_id, day, open, high, low, close, news, cash, shares, equity, time
		FROM days
		WHERE ? = '' OR session_id = ?
		ORDER BY time ASC, day ASC`, sessionID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayRecord
	for rows.Next() {
		var rec DayRecord
		if err := rows.Scan(
			&rec.SessionID,
			&rec.Day,
			&rec.Open,
			&rec.High,
			&rec.Low,
			&rec.Close,
			&rec.News,
			&rec.Cash,
			&rec.Shares,
			&rec.Equity,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sessions lists the distinct session IDs in the journal, oldest first.
func (j *SQLite) Sessions() ([]string, error) {
	rows, err := j.db.Query(`
		SELECT session_id FROM (
			SELECT session_id, time FROM fills
			UNION ALL
			SELECT session_id, time FROM days
		)
		GROUP BY session_id
		ORDER BY MIN(time) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
