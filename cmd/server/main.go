package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"stock-screener-backend/internal/config"
	httpdelivery "stock-screener-backend/internal/delivery/http"
	"stock-screener-backend/internal/delivery/websocket"
	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/db"
	"stock-screener-backend/internal/infrastructure/fcm"
	"stock-screener-backend/internal/infrastructure/gemini"
	"stock-screener-backend/internal/infrastructure/marketdata"
	"stock-screener-backend/internal/repository"
	"stock-screener-backend/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Persistence is optional; without a database URL the screener runs
	// fully in memory.
	var history domain.HistoryRepository
	if cfg.Database.URL != "" {
		pool, err := db.NewPool(ctx, cfg.Database.URL, db.PoolConfigFromEnv())
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		history = repository.NewPostgresHistoryRepository(pool)
		log.Println("Score history persistence enabled")
	}

	repo := repository.NewInMemoryScreenerRepository()
	tokenRepo := repository.NewTokenRepository()

	fcmClient, err := fcm.NewClient(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		log.Fatalf("FCM init failed: %v", err)
	}
	var notifier *usecase.NotificationUsecase
	if fcmClient.IsEnabled() {
		notifier = usecase.NewNotificationUsecase(fcmClient, tokenRepo)
		log.Println("Push notifications enabled")
	}

	analyst, err := gemini.NewAnalyst(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Gemini init failed: %v", err)
	}

	market := marketdata.NewClient(cfg.MarketData.BaseURL, cfg.MarketData.Suffix, cfg.MarketData.Timeout.Std())
	uc := usecase.NewScreenerUsecase(repo, history, market, notifier,
		cfg.Screener.MaxSymbols, cfg.Screener.Concurrency, cfg.Screener.CacheTTL.Std())

	// Warm the cache once at startup, then rescan daily after market close.
	go uc.ScanUniverse(ctx)
	scheduler := cron.New(cron.WithSeconds())
	if _, err := scheduler.AddFunc(cfg.Screener.DailyCron, func() {
		uc.ScanUniverse(ctx)
	}); err != nil {
		log.Fatalf("Invalid daily cron spec %q: %v", cfg.Screener.DailyCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	screenerHandler := httpdelivery.NewScreenerHandler(uc)
	stockHandler := httpdelivery.NewStockHandler(uc, analyst, history)
	metaHandler := httpdelivery.NewMetaHandler(uc)
	tokenHandler := httpdelivery.NewTokenHandler(tokenRepo)
	wsHandler := websocket.NewHandler(repo, 30*time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/", metaHandler.HandleRoot)
	mux.HandleFunc("/api/v2/stocks/screen", screenerHandler.HandleScreen)
	mux.HandleFunc("GET /api/v2/stock/{symbol}", stockHandler.HandleStock)
	mux.HandleFunc("GET /api/v2/stock/{symbol}/analyze", stockHandler.HandleAnalyze)
	mux.HandleFunc("GET /api/v2/stock/{symbol}/history", stockHandler.HandleHistory)
	mux.HandleFunc("/api/v2/sectors", metaHandler.HandleSectors)
	mux.HandleFunc("/api/v2/presets", metaHandler.HandlePresets)
	mux.HandleFunc("/api/v2/health", metaHandler.HandleHealth)
	mux.HandleFunc("/api/v2/tokens/register", tokenHandler.HandleRegisterToken)
	mux.HandleFunc("/api/v2/tokens/unregister", tokenHandler.HandleUnregisterToken)
	mux.HandleFunc("/api/v2/tokens/count", tokenHandler.HandleGetTokenCount)
	mux.HandleFunc("/ws", wsHandler.Handle)

	log.Println("Server listening on " + cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, httpdelivery.WithCORS(mux)); err != nil {
		log.Fatal(err)
	}
}
