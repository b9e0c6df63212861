package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/config"
)

var rootCmd = &cobra.Command{
	Use:   "tycoon",
	Short: "A single-player stock market game",
	Long: `Tycoon simulates one stock, day by day. Prices follow a random walk
with occasional news shocks; you buy and sell shares against a cash ledger
and pay a small fee on every trade.

The running game lives in a save file (tycoon.json by default) and every
command picks up where the last one left off:

  tycoon new
  tycoon next 5
  tycoon buy 100
  tycoon status`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	savePath string
	verbose  bool

	// cfg is loaded before any command runs.
	cfg *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&savePath, "save", "s", "", "save file (overrides save.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if cfgFile == "" {
		cfg = config.Default()
	} else {
		c, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	if savePath != "" {
		cfg.Save.Path = savePath
	}
	if env := os.Getenv("TYCOON_SAVE"); env != "" && savePath == "" {
		cfg.Save.Path = env
	}
	return nil
}
