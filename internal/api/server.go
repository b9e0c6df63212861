// Package api serves one game over HTTP. Commands are serialized: each
// request holds the game for its whole duration.
package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/session"
)

// MaxAdvanceDays bounds a single POST /api/advance.
const MaxAdvanceDays = 1000

// Options configures a Server.
type Options struct {
	// CORSOrigins lists allowed browser origins. Empty allows none.
	CORSOrigins []string
	// Autosave, when set, receives the session after every command that
	// changed it. Failures are logged only.
	Autosave func(s *session.State) error
	Logger   *slog.Logger
}

type Server struct {
	mu       sync.Mutex
	game     *game.Game
	autosave func(*session.State) error
	logger   *slog.Logger
	handler  http.Handler
}

// NewServer wraps g. The server takes over command serialization; callers
// must not use g concurrently.
func NewServer(g *game.Game, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		game:     g,
		autosave: opts.Autosave,
		logger:   opts.Logger,
	}

	router := gin.New()
	router.Use(requestLogger(s.logger))
	router.Use(ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.POST("/advance", s.advance)
		api.POST("/buy", s.buy)
		api.POST("/sell", s.sell)
		api.GET("/save", s.save)
		api.POST("/load", s.load)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "NOT_FOUND", Message: "no route for " + c.Request.URL.Path},
		})
	})

	s.handler = cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
	return s
}

// Handler returns the HTTP handler including CORS.
func (s *Server) Handler() http.Handler { return s.handler }

// autosaveState runs the autosave hook. Caller holds s.mu.
func (s *Server) autosaveState() {
	if s.autosave == nil {
		return
	}
	if err := s.autosave(s.game.State()); err != nil {
		s.logger.Warn("autosave failed", "err", err)
	}
}

// snapshot renders the session. Caller holds s.mu.
func (s *Server) snapshot() StateResponse {
	return toState(s.game.SessionID(), s.game.State(), s.game.ProfitLoss())
}
