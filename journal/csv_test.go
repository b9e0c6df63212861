package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fillsPath := filepath.Join(dir, "fills.csv")
	daysPath := filepath.Join(dir, "days.csv")

	j, err := NewCSV(fillsPath, daysPath)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.Equal(t, [][]string{fillHeader}, readCSV(t, fillsPath))
	assert.Equal(t, [][]string{dayHeader}, readCSV(t, daysPath))
}

func TestCSVJournalRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fillsPath := filepath.Join(dir, "fills.csv")
	daysPath := filepath.Join(dir, "days.csv")

	j, err := NewCSV(fillsPath, daysPath)
	require.NoError(t, err)

	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.RecordFill(sampleFill("F1", tm)))
	require.NoError(t, j.RecordDay(DayRecord{
		SessionID: "S1", Day: 2, Open: 100, High: 103, Low: 99.5, Close: 102,
		News: "Analysts upgrade the stock to buy", Cash: 10, Shares: 1, Equity: 112, Time: tm,
	}))
	require.NoError(t, j.Close())

	fills := readCSV(t, fillsPath)
	require.Len(t, fills, 2)
	assert.Equal(t, []string{
		"F1", "S1", "3", "buy", "100", "101.250000", "10125.000000", "10.125000",
		"10135.125000", "89864.875000", "100", "2024-01-02T03:04:05Z",
	}, fills[1])

	days := readCSV(t, daysPath)
	require.Len(t, days, 2)
	assert.Equal(t, "Analysts upgrade the stock to buy", days[1][6])
	assert.Equal(t, "112.000000", days[1][9])
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fillsPath := filepath.Join(dir, "fills.csv")
	daysPath := filepath.Join(dir, "days.csv")
	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, id := range []string{"F1", "F2"} {
		j, err := NewCSV(fillsPath, daysPath)
		require.NoError(t, err)
		require.NoError(t, j.RecordFill(sampleFill(id, tm)))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, fillsPath)
	require.Len(t, rows, 3, "header should be written once")
	assert.Equal(t, fillHeader, rows[0])
	assert.Equal(t, "F1", rows[1][0])
	assert.Equal(t, "F2", rows[2][0])
}

func TestCSVJournalBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "fills.csv"), "days.csv")
	assert.Error(t, err)
}
