package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFillOrg(t *testing.T) {
	t.Parallel()

	r := sampleFill("01HZX4ABCDEFGHJKMNPQRS", time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
	result := FormatFillOrg(r)

	assert.Contains(t, result, "** BUY 100 @ 101.25 (day 3, 01HZX4AB)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":FILL_ID: 01HZX4ABCDEFGHJKMNPQRS")
	assert.Contains(t, result, ":SESSION_ID: S1")
	assert.Contains(t, result, ":SHARES: 100")
	assert.Contains(t, result, ":PRICE: 101.2500")
	assert.Contains(t, result, ":GROSS: 10125.00")
	assert.Contains(t, result, ":TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Review")
}

func TestFormatFillOrgShortID(t *testing.T) {
	t.Parallel()

	r := sampleFill("short", time.Now())
	r.Side = "sell"
	assert.Contains(t, FormatFillOrg(r), "** SELL 100 @ 101.25 (day 3, short)")
}

func TestFormatFillsOrg(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatFillsOrg(nil))

	tm := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	out := FormatFillsOrg([]FillRecord{sampleFill("A", tm), sampleFill("B", tm)})
	assert.Equal(t, 2, strings.Count(out, ":PROPERTIES:"))
	assert.Contains(t, out, ":END:\n\n*** Why")
}
