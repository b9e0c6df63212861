package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/internal/api"
	"github.com/rustyeddy/tycoon/sim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long:  playHelp,
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

const playHelp = `Start a prompt that keeps the game open between commands.
The game is saved after every command that changes it.

Commands:
  next [days]   simulate days (default 1)
  buy <n>       buy n shares (or max, or 25%)
  sell <n>      sell n shares (or all, or 25%)
  status        show holdings
  log [n]       show recent log lines
  history [n]   show recent bars
  help          list commands
  quit          leave (the game stays saved)`

var errQuit = errors.New("quit")

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	g, err := resumeGame()
	if errors.Is(err, errNoGame) {
		if g, err = newGame(); err == nil {
			printLines(w, g.State().Log)
		}
	}
	if err != nil {
		return err
	}
	defer g.Close()

	printStatus(w, g)

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(w, "> ")
		if !in.Scan() {
			fmt.Fprintln(w)
			return in.Err()
		}

		mutated, err := playLine(cmd, g, in.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if mutated {
			if err := saveGame(g); err != nil {
				return err
			}
		}
	}
}

// playLine runs one prompt command and reports whether the session changed.
func playLine(cmd *cobra.Command, g *game.Game, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	w := cmd.OutOrStdout()
	verb, rest := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "next", "n":
		days, err := optionalCount(rest, 1, api.MaxAdvanceDays)
		if err != nil {
			return false, err
		}
		advance(cmd, g, days)
		return true, nil

	case "buy", "b", "sell", "s":
		if len(rest) != 1 {
			return false, fmt.Errorf("usage: %s <shares>", verb)
		}
		side := sim.SideBuy
		if verb[0] == 's' {
			side = sim.SideSell
		}
		return true, runOrder(side)(cmd, g, rest)

	case "status":
		printStatus(w, g)
	case "log":
		n, err := optionalCount(rest, 10, -1)
		if err != nil {
			return false, err
		}
		printLines(w, g.State().RecentLog(n))
	case "history":
		n, err := optionalCount(rest, 10, -1)
		if err != nil {
			return false, err
		}
		printBars(w, lastBars(g, n))
	case "help", "?":
		io.WriteString(w, playHelp+"\n")
	case "quit", "exit", "q":
		return false, errQuit
	default:
		return false, fmt.Errorf("unknown command %q (try help)", verb)
	}
	return false, nil
}

// optionalCount parses an optional positive count argument. A negative
// limit means unbounded.
func optionalCount(args []string, def, limit int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || (limit > 0 && n > limit) {
		return 0, fmt.Errorf("bad count %q", args[0])
	}
	return n, nil
}
