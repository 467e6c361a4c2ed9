package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-screener-backend/internal/infrastructure/marketdata"
	"stock-screener-backend/internal/repository"
	"stock-screener-backend/internal/usecase"
)

const chartFixture = `{
	"chart": {
		"result": [{
			"timestamp": [1704153600, 1704240000, 1704326400],
			"indicators": {
				"quote": [{
					"open":   [100.0, 101.0, 103.0],
					"high":   [105.0, 106.0, 108.0],
					"low":    [99.0,  100.0, 102.0],
					"close":  [104.0, 105.0, 107.0],
					"volume": [1000,  1100,  1200]
				}]
			}
		}],
		"error": null
	}
}`

func newTestUsecase(t *testing.T) (*usecase.ScreenerUsecase, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartFixture))
	}))

	repo := repository.NewInMemoryScreenerRepository()
	market := marketdata.NewClient(server.URL, ".NS", 5*time.Second)
	uc := usecase.NewScreenerUsecase(repo, nil, market, nil, 2, 2, time.Hour)
	return uc, server.Close
}

func TestHandleScreen(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewScreenerHandler(uc)
	req := httptest.NewRequest(http.MethodPost, "/api/v2/stocks/screen", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.HandleScreen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScreenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.TotalScreened)
	assert.Equal(t, 2, resp.TotalMatched)
	assert.Len(t, resp.Results, 2)
}

func TestHandleScreenWithFilters(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewScreenerHandler(uc)
	// Three bars of history score low; a high floor filters everything out.
	req := httptest.NewRequest(http.MethodPost, "/api/v2/stocks/screen", strings.NewReader(`{"minScore": 110}`))
	rec := httptest.NewRecorder()

	handler.HandleScreen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScreenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalScreened)
	assert.Zero(t, resp.TotalMatched)
}

func TestHandleScreenRejectsGet(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewScreenerHandler(uc)
	rec := httptest.NewRecorder()
	handler.HandleScreen(rec, httptest.NewRequest(http.MethodGet, "/api/v2/stocks/screen", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleScreenBadBody(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewScreenerHandler(uc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v2/stocks/screen", strings.NewReader(`{broken`))
	handler.HandleScreen(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStock(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewStockHandler(uc, nil, nil)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/stock/{symbol}", handler.HandleStock)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/stock/reliance", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RELIANCE", body["symbol"], "symbols are uppercased")
	assert.EqualValues(t, 107, body["price"])
}

func TestHandleHistoryUnconfigured(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewStockHandler(uc, nil, nil)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/stock/{symbol}/history", handler.HandleHistory)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/stock/TCS/history", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleSectors(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewMetaHandler(uc)
	rec := httptest.NewRecorder()
	handler.HandleSectors(rec, httptest.NewRequest(http.MethodGet, "/api/v2/sectors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	sectors := body["sectors"]
	assert.Contains(t, sectors, "IT")
	assert.Contains(t, sectors, "Banking")
	assert.IsIncreasing(t, sectors)
}

func TestHandlePresets(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewMetaHandler(uc)
	rec := httptest.NewRecorder()
	handler.HandlePresets(rec, httptest.NewRequest(http.MethodGet, "/api/v2/presets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Presets map[string]Preset `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Presets, 4)
	assert.Equal(t, "Strong Momentum", body.Presets["strong_momentum"].Name)
}

func TestHandleHealth(t *testing.T) {
	uc, cleanup := newTestUsecase(t)
	defer cleanup()

	handler := NewMetaHandler(uc)
	rec := httptest.NewRecorder()
	handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/v2/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestTokenHandlers(t *testing.T) {
	tokenRepo := repository.NewTokenRepository()
	handler := NewTokenHandler(tokenRepo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v2/tokens/register", strings.NewReader(`{"token":"abc"}`))
	handler.HandleRegisterToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v2/tokens/unregister", strings.NewReader(`{"token":"abc"}`))
	handler.HandleUnregisterToken(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, tokenRepo.GetTokenCount())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v2/tokens/register", strings.NewReader(`{}`))
	handler.HandleRegisterToken(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing token is rejected")
}

func TestWithCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	wrapped := WithCORS(inner)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code, "preflight short-circuits")
}
