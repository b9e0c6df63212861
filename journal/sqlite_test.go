package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleFill(id string, tm time.Time) FillRecord {
	return FillRecord{
		FillID:      id,
		SessionID:   "S1",
		Day:         3,
		Side:        "buy",
		Shares:      100,
		Price:       101.25,
		Gross:       10125,
		Fee:         10.125,
		Total:       10135.125,
		Cash:        89864.875,
		SharesAfter: 100,
		Time:        tm,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('fills','days')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["fills"])
	assert.True(t, found["days"])
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.RecordFill(sampleFill("F1", tm)))
	require.NoError(t, j.Close())

	j2, err := NewSQLite(path)
	require.NoError(t, err)
	defer j2.Close()

	fills, err := j2.ListFills("S1")
	require.NoError(t, err)
	assert.Len(t, fills, 1)
}

func TestSQLiteRecordDay(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	rec := DayRecord{
		SessionID: "S1",
		Day:       4,
		Open:      100,
		High:      104.5,
		Low:       98.25,
		Close:     103.75,
		News:      "CEO resigns amid scandal",
		Cash:      5000.5,
		Shares:    12,
		Equity:    6245.5,
		Time:      ts,
	}

	require.NoError(t, j.RecordDay(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		day    int
		high   float64
		news   string
		shares int64
		when   time.Time
	)
	err = db.QueryRow(`SELECT day, high, news, shares, time FROM days LIMIT 1`).Scan(&day, &high, &news, &shares, &when)
	require.NoError(t, err)

	assert.Equal(t, rec.Day, day)
	assert.InDelta(t, rec.High, high, 1e-9)
	assert.Equal(t, rec.News, news)
	assert.Equal(t, rec.Shares, shares)
	assert.True(t, when.Equal(rec.Time))
}
