package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/usecase"
)

// MetaHandler serves the static metadata endpoints: API root, sector list,
// screening presets and health.
type MetaHandler struct {
	uc *usecase.ScreenerUsecase
}

func NewMetaHandler(uc *usecase.ScreenerUsecase) *MetaHandler {
	return &MetaHandler{uc: uc}
}

func (h *MetaHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	response := map[string]any{
		"message": "Enhanced NSE Stock Screener API",
		"version": "2.0.0",
		"endpoints": map[string]string{
			"screen":       "/api/v2/stocks/screen",
			"stock_detail": "/api/v2/stock/{symbol}",
			"ai_analysis":  "/api/v2/stock/{symbol}/analyze",
			"history":      "/api/v2/stock/{symbol}/history",
			"sectors":      "/api/v2/sectors",
			"presets":      "/api/v2/presets",
			"websocket":    "/ws",
		},
		"features": map[string]string{
			"technical_analysis": "120-point scoring system with comprehensive indicators",
			"ai_analysis":        "Gemini powered stock analysis with fundamental and technical insights",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *MetaHandler) HandleSectors(w http.ResponseWriter, r *http.Request) {
	seen := map[string]bool{}
	for _, sector := range domain.SectorMapping {
		seen[sector] = true
	}
	sectors := make([]string, 0, len(seen))
	for sector := range seen {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"sectors": sectors})
}

type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Filters     map[string]any `json:"filters"`
}

func (h *MetaHandler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	presets := map[string]Preset{
		"strong_momentum": {
			Name:        "Strong Momentum",
			Description: "Stocks with strong upward momentum and high trend strength",
			Filters: map[string]any{
				"minAdx":   30,
				"rsiMin":   60,
				"rsiMax":   75,
				"minScore": 80,
			},
		},
		"fresh_breakouts": {
			Name:        "Fresh Breakouts",
			Description: "Stocks breaking out to new highs with strong volume",
			Filters: map[string]any{
				"minScore": 75,
			},
		},
		"smart_recovery": {
			Name:        "Smart Recovery",
			Description: "Stocks showing recovery signs after a pullback",
			Filters: map[string]any{
				"rsiMin":   45,
				"rsiMax":   60,
				"minScore": 65,
			},
		},
		"high_quality": {
			Name:        "High Quality Trends",
			Description: "Stocks with strong overall technical health",
			Filters: map[string]any{
				"minScore": 85,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"presets": presets})
}

func (h *MetaHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":     "healthy",
		"timestamp":  time.Now().Format(time.RFC3339),
		"cache_size": h.uc.CacheSize(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
