package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/gemini"
	"stock-screener-backend/internal/usecase"
)

type StockHandler struct {
	uc      *usecase.ScreenerUsecase
	analyst *gemini.Analyst
	history domain.HistoryRepository // optional
}

func NewStockHandler(uc *usecase.ScreenerUsecase, analyst *gemini.Analyst, history domain.HistoryRepository) *StockHandler {
	return &StockHandler{
		uc:      uc,
		analyst: analyst,
		history: history,
	}
}

// HandleStock returns the detailed scored record for one symbol.
func (h *StockHandler) HandleStock(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.PathValue("symbol"))
	if symbol == "" {
		http.Error(w, "Symbol is required", http.StatusBadRequest)
		return
	}

	stock, err := h.uc.ProcessSymbol(r.Context(), symbol)
	if err != nil {
		http.Error(w, "Stock "+symbol+" not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stock)
}

// HandleAnalyze returns an AI generated analysis for one symbol.
func (h *StockHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.PathValue("symbol"))
	if symbol == "" {
		http.Error(w, "Symbol is required", http.StatusBadRequest)
		return
	}

	stock, err := h.uc.ProcessSymbol(r.Context(), symbol)
	if err != nil {
		http.Error(w, "Stock "+symbol+" not found", http.StatusNotFound)
		return
	}

	analysis, err := h.analyst.Analyze(r.Context(), stock)
	if err != nil {
		if errors.Is(err, gemini.ErrDisabled) {
			http.Error(w, "AI analysis is not configured", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "Failed to generate analysis", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

type HistoryResponse struct {
	Symbol    string                 `json:"symbol"`
	Snapshots []domain.ScoreSnapshot `json:"snapshots"`
}

// HandleHistory returns the persisted score snapshots for one symbol,
// newest first.
func (h *StockHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "Score history is not configured", http.StatusServiceUnavailable)
		return
	}

	symbol := strings.ToUpper(r.PathValue("symbol"))
	if symbol == "" {
		http.Error(w, "Symbol is required", http.StatusBadRequest)
		return
	}

	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	snaps, err := h.history.GetHistory(r.Context(), symbol, limit)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistoryResponse{Symbol: symbol, Snapshots: snaps})
}
