package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatFillOrg renders a FillRecord as an Org-mode block suitable for
// pasting into a trading diary.
func FormatFillOrg(r FillRecord) string {
	heading := fmt.Sprintf("** %s %d @ %.2f (day %d, %s)",
		strings.ToUpper(r.Side), r.Shares, r.Price, r.Day, shortID(r.FillID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":FILL_ID: %s\n", r.FillID))
	b.WriteString(fmt.Sprintf(":SESSION_ID: %s\n", r.SessionID))
	b.WriteString(fmt.Sprintf(":DAY: %d\n", r.Day))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", r.Side))
	b.WriteString(fmt.Sprintf(":SHARES: %d\n", r.Shares))
	b.WriteString(fmt.Sprintf(":PRICE: %.4f\n", r.Price))
	b.WriteString(fmt.Sprintf(":GROSS: %.2f\n", r.Gross))
	b.WriteString(fmt.Sprintf(":FEE: %.2f\n", r.Fee))
	b.WriteString(fmt.Sprintf(":TOTAL: %.2f\n", r.Total))
	b.WriteString(fmt.Sprintf(":CASH_AFTER: %.2f\n", r.Cash))
	b.WriteString(fmt.Sprintf(":SHARES_AFTER: %d\n", r.SharesAfter))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", r.Time.UTC().Format(time.RFC3339)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Why\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatFillsOrg renders multiple fills separated by blank lines.
func FormatFillsOrg(fills []FillRecord) string {
	var b strings.Builder
	for i, r := range fills {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatFillOrg(r))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
