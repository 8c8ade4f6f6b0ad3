// Package api exposes the prediction engine over HTTP. It is a thin
// boundary: all validation beyond query-string plumbing lives in the
// predictor.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockSeer/internal/metrics"
	"StockSeer/internal/model"
	"StockSeer/internal/predictor"
	"StockSeer/internal/symbols"
)

// Server holds the HTTP handlers for the API.
type Server struct {
	predictor *predictor.Service
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewServer creates a Server.
func NewServer(p *predictor.Service, m *metrics.Metrics) *Server {
	return &Server{
		predictor: p,
		metrics:   m,
		logger:    log.With().Str("component", "api").Logger(),
	}
}

// Router sets up all HTTP routes.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/predict", s.handlePredict)
	mux.HandleFunc("/api/v1/symbols/search", s.handleSearch)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())
	return mux
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	symbol := r.URL.Query().Get("symbol")
	timeframe := model.Timeframe(r.URL.Query().Get("timeframe"))

	result, err := s.predictor.Predict(r.Context(), symbol, timeframe)
	if err != nil {
		switch {
		case predictor.IsValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, predictor.ErrEmptySeries):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			s.logger.Error().Err(err).Str("symbol", symbol).Msg("predict failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	results := symbols.Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []model.SymbolInfo{} // empty array, not null
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
