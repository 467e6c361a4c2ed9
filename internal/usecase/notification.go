package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/fcm"
	"stock-screener-backend/internal/repository"
)

// NotificationUsecase pushes FCM alerts for stocks that screen at the top
// classifications. A per-symbol cooldown suppresses repeats across scans.
type NotificationUsecase struct {
	fcmClient *fcm.Client
	tokenRepo *repository.TokenRepository
	cooldown  time.Duration

	mu       sync.Mutex
	notified map[string]time.Time
}

func NewNotificationUsecase(fcmClient *fcm.Client, tokenRepo *repository.TokenRepository) *NotificationUsecase {
	return &NotificationUsecase{
		fcmClient: fcmClient,
		tokenRepo: tokenRepo,
		cooldown:  12 * time.Hour,
		notified:  make(map[string]time.Time),
	}
}

// NotifyExceptional alerts registered devices about stocks classified
// Exceptional or Very High in the latest scan.
func (uc *NotificationUsecase) NotifyExceptional(ctx context.Context, stocks []domain.StockData) {
	if uc.fcmClient == nil || !uc.fcmClient.IsEnabled() {
		return
	}
	tokens := uc.tokenRepo.GetAllTokens()
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	for _, stock := range stocks {
		if stock.Classification != "Exceptional" && stock.Classification != "Very High" {
			continue
		}

		uc.mu.Lock()
		last, seen := uc.notified[stock.Symbol]
		uc.mu.Unlock()
		if seen && now.Sub(last) < uc.cooldown {
			continue
		}

		title := fmt.Sprintf("%s - %s (%d/120)", stock.Symbol, stock.Classification, stock.TotalScore)
		body := fmt.Sprintf("Price: ₹%.2f | Change: %+.2f%% | Trend: %s",
			stock.Price, stock.ChangePct, stock.TrendStrength)
		data := map[string]string{
			"symbol":         stock.Symbol,
			"score":          fmt.Sprintf("%d", stock.TotalScore),
			"classification": stock.Classification,
		}

		if err := uc.fcmClient.SendMulticast(ctx, tokens, title, body, data); err != nil {
			log.Printf("Notification for %s failed: %v", stock.Symbol, err)
			continue
		}
		uc.mu.Lock()
		uc.notified[stock.Symbol] = now
		uc.mu.Unlock()
	}

	// Drop stale cooldown entries.
	uc.mu.Lock()
	for symbol, ts := range uc.notified {
		if now.Sub(ts) > uc.cooldown*2 {
			delete(uc.notified, symbol)
		}
	}
	uc.mu.Unlock()
}
