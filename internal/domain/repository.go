package domain

import (
	"context"
	"time"
)

// ScreenerRepository holds the latest scan results.
type ScreenerRepository interface {
	SaveStocks(stocks []StockData)
	GetStocks() []StockData
	GetStock(symbol string) (StockData, bool)
}

// ScoreSnapshot is one persisted per-symbol scoring row.
type ScoreSnapshot struct {
	Symbol         string
	ScannedAt      time.Time
	Price          float64
	TotalScore     int
	Classification string
	CategoryScores map[string]CategoryScore
}

// HistoryRepository persists score snapshots across scans.
type HistoryRepository interface {
	SaveSnapshots(ctx context.Context, snaps []ScoreSnapshot) error
	GetHistory(ctx context.Context, symbol string, limit int) ([]ScoreSnapshot, error)
}
