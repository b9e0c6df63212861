package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tycoon/internal/api"
	"github.com/rustyeddy/tycoon/persist"
	"github.com/rustyeddy/tycoon/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game as a JSON API",
	Long: `Serve the game in progress over HTTP. A new game is started when
there is none. Every change is written back to the save file.

Routes:
  GET  /health
  GET  /api/state
  POST /api/advance   {"days": 5}
  POST /api/buy       {"amount": 100}
  POST /api/sell      {"amount": 50}
  GET  /api/save
  POST /api/load      (save file as body)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	g, err := resumeGame()
	if errors.Is(err, errNoGame) {
		g, err = newGame()
	}
	if err != nil {
		return err
	}
	defer g.Close()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	s := api.NewServer(g, api.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		Autosave: func(st *session.State) error {
			return persist.WriteFile(cfg.Save.Path, st)
		},
		Logger: slog.Default(),
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving", "addr", addr, "session", g.SessionID(), "save", cfg.Save.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
