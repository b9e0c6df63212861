package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the SQLite game journal",
	Long: `Query fills and daily closes recorded in the SQLite journal.

Subcommands:
  fill     - Show one fill by ID
  fills    - List fills as Org-mode entries
  days     - List daily closes
  summary  - Org-mode summary of a session
  sessions - List journaled sessions

Queries default to the session of the game in progress; pass --all for
every session.

Examples:
  tycoon journal fills
  tycoon journal summary --session 01HZX...
  tycoon journal days --all --db ./tycoon.sqlite`,
}

var journalFillCmd = &cobra.Command{
	Use:   "fill <fill-id>",
	Short: "Show details of a specific fill",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalFill,
}

var journalFillsCmd = &cobra.Command{
	Use:   "fills",
	Short: "List fills",
	Args:  cobra.NoArgs,
	RunE:  runJournalFills,
}

var journalDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "List daily closes",
	Args:  cobra.NoArgs,
	RunE:  runJournalDays,
}

var journalSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a session",
	Args:  cobra.NoArgs,
	RunE:  runJournalSummary,
}

var journalSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List journaled sessions",
	Args:  cobra.NoArgs,
	RunE:  runJournalSessions,
}

var (
	journalDBPath  string
	journalSession string
	journalAll     bool
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalFillCmd, journalFillsCmd, journalDaysCmd, journalSummaryCmd, journalSessionsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default journal.db_path or ./tycoon.sqlite)")
	journalCmd.PersistentFlags().StringVar(&journalSession, "session", "", "session ID (default: the game in progress)")
	journalCmd.PersistentFlags().BoolVar(&journalAll, "all", false, "query every session")
}

func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		path = "./tycoon.sqlite"
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// querySession is the session to filter on; empty means all.
func querySession() string {
	if journalAll {
		return ""
	}
	if journalSession != "" {
		return journalSession
	}
	return readSessionID()
}

func runJournalFill(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetFill(args[0])
	if err != nil {
		return fmt.Errorf("get fill: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatFillOrg(rec))
	return nil
}

func runJournalFills(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListFills(querySession())
	if err != nil {
		return fmt.Errorf("query fills: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatFillsOrg(recs))
	return nil
}

func runJournalDays(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	days, err := j.ListDays(querySession())
	if err != nil {
		return fmt.Errorf("query days: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-10s %5s %10s %10s %10s %10s %14s  %s\n",
		"SESSION", "DAY", "OPEN", "HIGH", "LOW", "CLOSE", "EQUITY", "NEWS")
	for _, d := range days {
		fmt.Fprintf(w, "%-10s %5d %10.2f %10.2f %10.2f %10.2f %14.2f  %s\n",
			shortSession(d.SessionID), d.Day, d.Open, d.High, d.Low, d.Close, d.Equity, d.News)
	}
	return nil
}

func runJournalSummary(cmd *cobra.Command, args []string) error {
	sid := querySession()
	if sid == "" {
		return fmt.Errorf("summary needs a session: pass --session or start a game")
	}

	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	fills, err := j.ListFills(sid)
	if err != nil {
		return fmt.Errorf("query fills: %w", err)
	}
	days, err := j.ListDays(sid)
	if err != nil {
		return fmt.Errorf("query days: %w", err)
	}

	sum := journal.Summarize(sid, cfg.Session.InitialCash, fills, days)
	return sum.WriteOrg(cmd.OutOrStdout())
}

func runJournalSessions(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	ids, err := j.Sessions()
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(ids) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, "\n"))
	}
	return nil
}

func shortSession(sid string) string {
	if len(sid) <= 10 {
		return sid
	}
	return sid[:10]
}
