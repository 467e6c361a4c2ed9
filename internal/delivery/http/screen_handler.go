package http

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/usecase"
)

type ScreenerHandler struct {
	uc *usecase.ScreenerUsecase
}

func NewScreenerHandler(uc *usecase.ScreenerUsecase) *ScreenerHandler {
	return &ScreenerHandler{uc: uc}
}

type ScreenResponse struct {
	Status        string             `json:"status"`
	TotalScreened int                `json:"total_screened"`
	TotalMatched  int                `json:"total_matched"`
	ExecutionTime float64            `json:"execution_time"`
	Results       []domain.StockData `json:"results"`
}

// HandleScreen runs a scan over the configured universe and returns the
// filtered, score-sorted results. Symbols with a fresh cache entry are not
// refetched, so repeat calls within the TTL are cheap.
func (h *ScreenerHandler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var filters domain.ScreeningFilters
	if r.Body != nil {
		// An empty or absent body means no filters.
		if err := json.NewDecoder(r.Body).Decode(&filters); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	start := time.Now()
	scanned := h.uc.ScanUniverse(r.Context())
	matched := usecase.ApplyFilters(scanned, filters)

	response := ScreenResponse{
		Status:        "success",
		TotalScreened: len(scanned),
		TotalMatched:  len(matched),
		ExecutionTime: math.Round(time.Since(start).Seconds()*100) / 100,
		Results:       matched,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
