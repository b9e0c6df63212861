package api

import (
	"github.com/rustyeddy/tycoon/indicators"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
)

// AdvanceRequest is the body of POST /api/advance.
type AdvanceRequest struct {
	Days int `json:"days"`
}

// OrderRequest is the body of POST /api/buy and /api/sell.
type OrderRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type NewsResponse struct {
	Title     string  `json:"title"`
	Impact    float64 `json:"impact"`
	Sentiment string  `json:"sentiment"`
}

type BarResponse struct {
	Day   int     `json:"day"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

type StateResponse struct {
	SessionID  string             `json:"session_id"`
	Day        int                `json:"day"`
	Price      float64            `json:"price"`
	Cash       float64            `json:"cash"`
	Shares     int64              `json:"shares"`
	Equity     float64            `json:"equity"`
	ProfitLoss float64            `json:"profit_loss"`
	News       *NewsResponse      `json:"news,omitempty"`
	Indicators map[string]float64 `json:"indicators"`
	History    []BarResponse      `json:"history"`
	Log        []string           `json:"log"`
}

type FillResponse struct {
	Side   string  `json:"side"`
	Shares int64   `json:"shares"`
	Price  float64 `json:"price"`
	Gross  float64 `json:"gross"`
	Fee    float64 `json:"fee"`
	Total  float64 `json:"total"`
}

type OrderResponse struct {
	Fill  FillResponse  `json:"fill"`
	State StateResponse `json:"state"`
}

type AdvanceResponse struct {
	Bars  []BarResponse `json:"bars"`
	State StateResponse `json:"state"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func toBars(bars []market.Bar) []BarResponse {
	out := make([]BarResponse, len(bars))
	for i, b := range bars {
		out[i] = BarResponse{Day: b.Day, Open: b.Open, High: b.High, Low: b.Low, Close: b.Close}
	}
	return out
}

func toFill(f sim.Fill) FillResponse {
	return FillResponse{
		Side:   string(f.Side),
		Shares: f.Shares,
		Price:  f.Price,
		Gross:  f.Gross,
		Fee:    f.Fee,
		Total:  f.Total,
	}
}

func toState(sessionID string, s *session.State, pl float64) StateResponse {
	resp := StateResponse{
		SessionID:  sessionID,
		Day:        s.Day,
		Price:      s.LatestClose,
		Cash:       s.Ledger.Cash,
		Shares:     s.Ledger.Shares,
		Equity:     s.Equity(),
		ProfitLoss: pl,
		Indicators: map[string]float64{},
		History:    toBars(s.History),
		Log:        s.Log,
	}
	for _, r := range indicators.Readings(s.History) {
		resp.Indicators[r.Name] = r.Value
	}
	if s.Log == nil {
		resp.Log = []string{}
	}
	if ev := s.CurrentNews; ev != nil {
		resp.News = &NewsResponse{
			Title:     ev.Title,
			Impact:    ev.Impact,
			Sentiment: ev.Sentiment.String(),
		}
	}
	return resp
}
