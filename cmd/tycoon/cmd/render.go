package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/indicators"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
)

func signedMoney(v float64) string {
	if v < 0 {
		return "-$" + session.Money(-v)
	}
	return "+$" + session.Money(v)
}

func printStatus(w io.Writer, g *game.Game) {
	st := g.State()
	fmt.Fprintf(w, "Session  %s\n", g.SessionID())
	fmt.Fprintf(w, "Day      %d\n", st.Day)
	fmt.Fprintf(w, "Price    $%s\n", session.Money(st.LatestClose))
	fmt.Fprintf(w, "Cash     $%s\n", session.Money(st.Ledger.Cash))
	fmt.Fprintf(w, "Shares   %d\n", st.Ledger.Shares)
	fmt.Fprintf(w, "Equity   $%s\n", session.Money(st.Equity()))
	fmt.Fprintf(w, "P/L      %s\n", signedMoney(g.ProfitLoss()))
	if ev := st.CurrentNews; ev != nil {
		fmt.Fprintf(w, "News     %s (%+.0f%%)\n", ev.Title, ev.Impact*100)
	}
	for _, r := range indicators.Readings(st.History) {
		fmt.Fprintf(w, "%-8s %.2f\n", r.Name, r.Value)
	}
}

func printBars(w io.Writer, bars []market.Bar) {
	fmt.Fprintf(w, "%5s %10s %10s %10s %10s %8s\n", "DAY", "OPEN", "HIGH", "LOW", "CLOSE", "CHANGE")
	for _, b := range bars {
		fmt.Fprintf(w, "%5d %10.2f %10.2f %10.2f %10.2f %+7.2f%%\n",
			b.Day, b.Open, b.High, b.Low, b.Close, b.Change()*100)
	}
}

func printFill(w io.Writer, f sim.Fill, g *game.Game) {
	verb := "Bought"
	if f.Side == sim.SideSell {
		verb = "Sold"
	}
	st := g.State()
	fmt.Fprintf(w, "%s %d shares @ $%s: gross $%s, fee $%s, total $%s\n",
		verb, f.Shares, session.Money(f.Price), session.Money(f.Gross),
		session.Money(f.Fee), session.Money(f.Total))
	fmt.Fprintf(w, "Cash $%s  Shares %d\n", session.Money(st.Ledger.Cash), st.Ledger.Shares)
}

func printLines(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
