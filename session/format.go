package session

import (
	"strconv"
	"strings"
)

// Money formats v with two decimals and thousands separators: 100000 -> "100,000.00".
func Money(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	// Sign comes from the rounded text so -0.001 prints as 0.00.
	s, neg := strings.CutPrefix(s, "-")
	if neg && strings.Trim(s, "0.") == "" {
		neg = false
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
