package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/persist"
	"github.com/rustyeddy/tycoon/pkg/id"
	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
)

var errNoGame = errors.New("no game in progress")

// sessionFile holds the journal session ID next to the save, which has no
// room for it.
func sessionFile() string {
	return cfg.Save.Path + ".session"
}

func readSessionID() string {
	data, err := os.ReadFile(sessionFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeSessionID(sid string) error {
	if err := os.WriteFile(sessionFile(), []byte(sid+"\n"), 0644); err != nil {
		return fmt.Errorf("write session id: %w", err)
	}
	return nil
}

func openJournal() (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.FillsFile, cfg.Journal.DaysFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return journal.Discard, nil
	}
}

// source seeds the price path. A configured seed is mixed with the day the
// command starts on, so each invocation continues the path instead of
// replaying the same draws.
func source(day int) sim.Source {
	if cfg.Engine.Seed == 0 {
		return sim.NewSource(uint64(time.Now().UnixNano()))
	}
	return sim.NewSource(cfg.Engine.Seed ^ uint64(day)<<32)
}

func startGame(st *session.State, sid string) (*game.Game, error) {
	j, err := openJournal()
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	g, err := game.New(game.Config{
		Params:      cfg.Params(),
		Source:      source(st.Day),
		InitialCash: cfg.Session.InitialCash,
		State:       st,
		SessionID:   sid,
		Journal:     j,
		Logger:      slog.Default(),
	})
	if err != nil {
		j.Close()
		return nil, err
	}
	return g, nil
}

// newGame starts a fresh session and writes it out.
func newGame() (*game.Game, error) {
	st := session.New(cfg.Session.InitialCash, cfg.Session.InitialPrice)
	sid := id.New()
	g, err := startGame(st, sid)
	if err != nil {
		return nil, err
	}
	if err := writeSessionID(sid); err != nil {
		g.Close()
		return nil, err
	}
	if err := saveGame(g); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

// resumeGame loads the game from the save file.
func resumeGame() (*game.Game, error) {
	st, err := persist.ReadFile(cfg.Save.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s: run 'tycoon new' first", errNoGame, cfg.Save.Path)
	}
	if err != nil {
		return nil, err
	}

	sid := readSessionID()
	if sid == "" {
		sid = id.New()
		if err := writeSessionID(sid); err != nil {
			return nil, err
		}
	}
	return startGame(st, sid)
}

func saveGame(g *game.Game) error {
	if err := persist.WriteFile(cfg.Save.Path, g.State()); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// withGame resumes the game, runs fn and, when fn changed the session,
// writes it back.
func withGame(mutates bool, fn func(cmd *cobra.Command, g *game.Game, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		g, err := resumeGame()
		if err != nil {
			return err
		}
		defer g.Close()

		if err := fn(cmd, g, args); err != nil {
			return err
		}
		if !mutates {
			return nil
		}
		return saveGame(g)
	}
}
