package repository

import (
	"sync"

	"stock-screener-backend/internal/domain"
)

type InMemoryScreenerRepository struct {
	stocks []domain.StockData
	bySym  map[string]int
	mu     sync.RWMutex
}

func NewInMemoryScreenerRepository() *InMemoryScreenerRepository {
	return &InMemoryScreenerRepository{
		stocks: []domain.StockData{},
		bySym:  map[string]int{},
	}
}

func (r *InMemoryScreenerRepository) SaveStocks(stocks []domain.StockData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Replace the entire list, scans always produce a full set.
	r.stocks = stocks
	r.bySym = make(map[string]int, len(stocks))
	for i, s := range stocks {
		r.bySym[s.Symbol] = i
	}
}

func (r *InMemoryScreenerRepository) GetStocks() []domain.StockData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Return a copy so callers can sort or filter without racing the next scan.
	result := make([]domain.StockData, len(r.stocks))
	copy(result, r.stocks)
	return result
}

func (r *InMemoryScreenerRepository) GetStock(symbol string) (domain.StockData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.bySym[symbol]
	if !ok {
		return domain.StockData{}, false
	}
	return r.stocks[i], true
}
