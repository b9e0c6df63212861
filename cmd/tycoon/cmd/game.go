package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/internal/api"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/sim"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Long: `Start a new game with the configured cash and opening price.

Refuses to overwrite a game in progress unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show day, price and holdings",
	Args:  cobra.NoArgs,
	RunE: withGame(false, func(cmd *cobra.Command, g *game.Game, args []string) error {
		printStatus(cmd.OutOrStdout(), g)
		return nil
	}),
}

var nextCmd = &cobra.Command{
	Use:   "next [days]",
	Short: "Simulate one or more trading days",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withGame(true, runNext),
}

var buyCmd = &cobra.Command{
	Use:   "buy <shares|max|N%>",
	Short: "Buy shares at the latest close",
	Args:  cobra.ExactArgs(1),
	RunE:  withGame(true, runOrder(sim.SideBuy)),
}

var sellCmd = &cobra.Command{
	Use:   "sell <shares|all|N%>",
	Short: "Sell shares at the latest close",
	Args:  cobra.ExactArgs(1),
	RunE:  withGame(true, runOrder(sim.SideSell)),
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the game log, newest first",
	Args:  cobra.NoArgs,
	RunE: withGame(false, func(cmd *cobra.Command, g *game.Game, args []string) error {
		printLines(cmd.OutOrStdout(), g.State().RecentLog(logLines))
		return nil
	}),
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent daily bars",
	Args:  cobra.NoArgs,
	RunE: withGame(false, func(cmd *cobra.Command, g *game.Game, args []string) error {
		bars := market.Aggregate(g.State().History, historyPeriod)
		if historyDays > 0 && historyDays < len(bars) {
			bars = bars[len(bars)-historyDays:]
		}
		printBars(cmd.OutOrStdout(), bars)
		return nil
	}),
}

var (
	newForce      bool
	logLines      int
	historyDays   int
	historyPeriod int
)

func init() {
	rootCmd.AddCommand(newCmd, statusCmd, nextCmd, buyCmd, sellCmd, logCmd, historyCmd)

	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite a game in progress")
	logCmd.Flags().IntVarP(&logLines, "lines", "n", 10, "number of lines (0 for all)")
	historyCmd.Flags().IntVarP(&historyDays, "days", "n", 10, "number of bars (0 for all)")
	historyCmd.Flags().IntVarP(&historyPeriod, "period", "p", 1, "days per bar, e.g. 5 for weekly bars")
}

func runNew(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfg.Save.Path); err == nil && !newForce {
		return fmt.Errorf("game in progress at %s (use --force to replace it)", cfg.Save.Path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	g, err := newGame()
	if err != nil {
		return err
	}
	defer g.Close()

	printLines(cmd.OutOrStdout(), g.State().Log)
	printStatus(cmd.OutOrStdout(), g)
	return nil
}

func runNext(cmd *cobra.Command, g *game.Game, args []string) error {
	days := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > api.MaxAdvanceDays {
			return fmt.Errorf("days must be a number between 1 and %d", api.MaxAdvanceDays)
		}
		days = n
	}
	advance(cmd, g, days)
	return nil
}

func advance(cmd *cobra.Command, g *game.Game, days int) {
	before := len(g.State().Log)
	bars := g.AdvanceN(days)

	w := cmd.OutOrStdout()
	printBars(w, bars)
	printLines(w, g.State().Log[before:])
	printStatus(w, g)
}

func runOrder(side sim.Side) func(*cobra.Command, *game.Game, []string) error {
	return func(cmd *cobra.Command, g *game.Game, args []string) error {
		amount, err := orderAmount(g, side, args[0])
		if err != nil {
			return err
		}

		var fill sim.Fill
		if side == sim.SideBuy {
			fill, err = g.Buy(amount)
		} else {
			fill, err = g.Sell(amount)
		}
		if err != nil {
			return err
		}
		printFill(cmd.OutOrStdout(), fill, g)
		return nil
	}
}

// orderAmount reads a share count, "max" (or "all") or a percentage such as
// "25%". Buys are sized against cash including the fee; sells against the
// shares held.
func orderAmount(g *game.Game, side sim.Side, arg string) (int64, error) {
	fraction := 0.0
	switch a := strings.ToLower(arg); {
	case a == "max" || a == "all":
		fraction = 1
	case strings.HasSuffix(a, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil || pct <= 0 || pct > 100 {
			return 0, fmt.Errorf("percentage must be in (0, 100]: %q", arg)
		}
		fraction = pct / 100
	default:
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("shares must be a whole number, max or a percentage: %q", arg)
		}
		return n, nil
	}

	var n int64
	if side == sim.SideBuy {
		r, err := g.Affordable(fraction)
		if err != nil {
			return 0, err
		}
		n = r.Shares
	} else {
		n = int64(math.Floor(float64(g.State().Ledger.Shares) * fraction))
	}
	if n == 0 {
		return 0, fmt.Errorf("%s %s comes to 0 shares: %w", side, arg, sim.ErrInvalidAmount)
	}
	return n, nil
}

// lastBars returns the final n bars of the history, all of them when n <= 0.
func lastBars(g *game.Game, n int) []market.Bar {
	h := g.State().History
	if n <= 0 || n > len(h) {
		return h
	}
	return h[len(h)-n:]
}
