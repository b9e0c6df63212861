package journal

import (
	"io"
	"math"
	"strconv"
	"text/template"
	"time"
)

// Summary aggregates one session's journal into headline numbers.
type Summary struct {
	SessionID string
	Created   time.Time
	StartCash float64

	Days      int
	NewsDays  int
	HighClose float64
	LowClose  float64

	Buys         int
	Sells        int
	SharesBought int64
	SharesSold   int64
	Fees         float64

	EndCash   float64
	EndShares int64
	EndEquity float64
	NetPL     float64
	ReturnPct float64

	Notes []string
}

// Summarize folds fills and days into a Summary. The ending position is
// taken from whichever record is most recent.
func Summarize(sessionID string, startCash float64, fills []FillRecord, days []DayRecord) Summary {
	s := Summary{
		SessionID: sessionID,
		StartCash: startCash,
		EndCash:   startCash,
		EndEquity: startCash,
		LowClose:  math.Inf(1),
	}

	var last time.Time
	for _, d := range days {
		s.Days++
		if d.News != "" {
			s.NewsDays++
			s.Notes = append(s.Notes, "Day "+strconv.Itoa(d.Day)+": "+d.News)
		}
		s.HighClose = math.Max(s.HighClose, d.Close)
		s.LowClose = math.Min(s.LowClose, d.Close)
		if s.Created.IsZero() || d.Time.Before(s.Created) {
			s.Created = d.Time
		}
		if !d.Time.Before(last) {
			last = d.Time
			s.EndCash, s.EndShares, s.EndEquity = d.Cash, d.Shares, d.Equity
		}
	}

	for _, fl := range fills {
		switch fl.Side {
		case "buy":
			s.Buys++
			s.SharesBought += fl.Shares
		case "sell":
			s.Sells++
			s.SharesSold += fl.Shares
		}
		s.Fees += fl.Fee
		if s.Created.IsZero() || fl.Time.Before(s.Created) {
			s.Created = fl.Time
		}
		if !fl.Time.Before(last) {
			last = fl.Time
			s.EndCash, s.EndShares = fl.Cash, fl.SharesAfter
			s.EndEquity = fl.Cash + float64(fl.SharesAfter)*fl.Price
		}
	}

	if s.Days == 0 {
		s.LowClose = 0
	}
	s.NetPL = s.EndEquity - startCash
	if startCash > 0 {
		s.ReturnPct = s.NetPL / startCash * 100
	}
	return s
}

var summaryOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var summaryOrg = template.Must(template.New("summary").Funcs(summaryOrgFuncs).Parse(SummaryOrgTemplate))

// WriteOrg renders the summary as an Org-mode section.
func (s Summary) WriteOrg(w io.Writer) error {
	return summaryOrg.Execute(w, s)
}

const SummaryOrgTemplate = `* SESSION: {{if .SessionID}}{{.SessionID}}{{else}}(session-id?){{end}}
:PROPERTIES:
:SESSION_ID:  {{.SessionID}}
:START_CASH:  {{printf "%.2f" .StartCash}}
:END_CASH:    {{printf "%.2f" .EndCash}}
:END_SHARES:  {{.EndShares}}
:END_EQUITY:  {{printf "%.2f" .EndEquity}}
:NET_PL:      {{printf "%.2f" .NetPL}}
:RETURN_PCT:  {{printf "%.2f" .ReturnPct}}
:DAYS:        {{.Days}}
:NEWS_DAYS:   {{.NewsDays}}
:FILLS:       {{.Buys}} buys / {{.Sells}} sells
:FEES:        {{printf "%.2f" .Fees}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:       *{{printf "%.2f" .NetPL}}*
- Return:        *{{printf "%.2f" .ReturnPct}}%*
- Fees paid:     *{{printf "%.2f" .Fees}}*
- Close range:   {{printf "%.2f" .LowClose}} - {{printf "%.2f" .HighClose}}

** Fills
| Side | Count | Shares |
|------+-------+--------|
| Buy  | {{.Buys}} | {{.SharesBought}} |
| Sell | {{.Sells}} | {{.SharesSold}} |

{{- if .Notes }}
** Headlines
{{- range .Notes }}
- {{.}}
{{- end }}
{{- end }}
`
