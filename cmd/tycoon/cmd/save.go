package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/game"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the game in the portable save format",
	Long: `Write the current game as a portable save file.

Examples:
  tycoon export -o backup.json
  tycoon export > backup.json`,
	Args: cobra.NoArgs,
	RunE: withGame(false, runExport),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the game with a saved one",
	Long: `Load a save file produced by export (or GET /api/save) and make it
the game in progress. A corrupt file is rejected and nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: withGame(true, runImport),
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file (- for stdout)")
}

func runExport(cmd *cobra.Command, g *game.Game, args []string) error {
	data, err := g.Save()
	if err != nil {
		return err
	}
	if exportOutput == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported day %d to %s\n", g.State().Day, exportOutput)
	return nil
}

func runImport(cmd *cobra.Command, g *game.Game, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := g.Load(data); err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %s\n", args[0])
	printStatus(cmd.OutOrStdout(), g)
	return nil
}
