package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tycoon/persist"
	"github.com/rustyeddy/tycoon/sim"
)

// maxSaveBytes caps the body of POST /api/load.
const maxSaveBytes = 8 << 20

// getState handles GET /api/state
func (s *Server) getState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.snapshot())
}

// advance handles POST /api/advance. An empty body advances one day.
func (s *Server) advance(c *gin.Context) {
	req := AdvanceRequest{Days: 1}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "INVALID_REQUEST", err.Error())
			return
		}
	}
	if req.Days < 1 || req.Days > MaxAdvanceDays {
		badRequest(c, "INVALID_DAYS", fmt.Sprintf("days must be between 1 and %d", MaxAdvanceDays))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bars := s.game.AdvanceN(req.Days)
	s.autosaveState()
	c.JSON(http.StatusOK, AdvanceResponse{Bars: toBars(bars), State: s.snapshot()})
}

// buy handles POST /api/buy
func (s *Server) buy(c *gin.Context) {
	s.order(c, sim.SideBuy)
}

// sell handles POST /api/sell
func (s *Server) sell(c *gin.Context) {
	s.order(c, sim.SideSell)
}

func (s *Server) order(c *gin.Context, side sim.Side) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		fill sim.Fill
		err  error
	)
	if side == sim.SideBuy {
		fill, err = s.game.Buy(*req.Amount)
	} else {
		fill, err = s.game.Sell(*req.Amount)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	s.autosaveState()
	c.JSON(http.StatusOK, OrderResponse{Fill: toFill(fill), State: s.snapshot()})
}

// save handles GET /api/save
func (s *Server) save(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.game.Save()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="tycoon.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// load handles POST /api/load. The body is a save file as produced by
// GET /api/save.
func (s *Server) load(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSaveBytes))
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Load(data); err != nil {
		writeError(c, err)
		return
	}
	s.autosaveState()
	c.JSON(http.StatusOK, s.snapshot())
}

func badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: msg},
	})
}

// writeError maps engine and codec errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var funds *sim.InsufficientFundsError
	switch {
	case errors.As(err, &funds):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INSUFFICIENT_FUNDS",
				Message: err.Error(),
				Details: map[string]any{
					"shares": funds.Shares,
					"total":  funds.Total,
					"fee":    funds.Fee,
					"cash":   funds.Cash,
				},
			},
		})
	case errors.Is(err, sim.ErrInsufficientShares):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: ErrorDetail{Code: "INSUFFICIENT_SHARES", Message: err.Error()},
		})
	case errors.Is(err, sim.ErrInvalidAmount):
		badRequest(c, "INVALID_AMOUNT", err.Error())
	case errors.Is(err, persist.ErrCorruptSave):
		badRequest(c, "CORRUPT_SAVE", err.Error())
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}
