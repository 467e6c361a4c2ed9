package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/indicators"
	"stock-screener-backend/internal/infrastructure/marketdata"
)

// ScreenerUsecase orchestrates batch scans: fetch bars per symbol, run the
// indicator pipeline and scoring, cache the results, and hand the sorted
// list to the repository. Pipelines are independent per symbol, so the scan
// is a bounded-concurrency parallel map.
type ScreenerUsecase struct {
	repo        domain.ScreenerRepository
	history     domain.HistoryRepository // optional
	market      *marketdata.Client
	notifier    *NotificationUsecase // optional
	maxSymbols  int
	concurrency int
	cacheTTL    time.Duration

	mu    sync.RWMutex
	cache map[string]cachedStock
}

type cachedStock struct {
	data     domain.StockData
	cachedAt time.Time
}

// NewScreenerUsecase wires the screener. history and notifier may be nil.
func NewScreenerUsecase(repo domain.ScreenerRepository, history domain.HistoryRepository,
	market *marketdata.Client, notifier *NotificationUsecase,
	maxSymbols, concurrency int, cacheTTL time.Duration) *ScreenerUsecase {
	return &ScreenerUsecase{
		repo:        repo,
		history:     history,
		market:      market,
		notifier:    notifier,
		maxSymbols:  maxSymbols,
		concurrency: concurrency,
		cacheTTL:    cacheTTL,
		cache:       make(map[string]cachedStock),
	}
}

// ScanUniverse screens the configured slice of the NSE universe and stores
// the sorted results. Failed symbols are skipped, not fatal.
func (uc *ScreenerUsecase) ScanUniverse(ctx context.Context) []domain.StockData {
	start := time.Now()
	symbols := uniqueSymbols(domain.Nifty500Universe, uc.maxSymbols)
	log.Printf("Scanning %d stocks from NIFTY universe", len(symbols))

	var (
		results []domain.StockData
		wg      sync.WaitGroup
		mu      sync.Mutex
	)
	sem := make(chan struct{}, uc.concurrency)

	for _, sym := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			stock, err := uc.ProcessSymbol(ctx, symbol)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Printf("Skipping %s: %v", symbol, err)
				}
				return
			}
			mu.Lock()
			results = append(results, stock)
			mu.Unlock()
		}(sym)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	uc.repo.SaveStocks(results)
	uc.persistHistory(ctx, results)
	if uc.notifier != nil {
		uc.notifier.NotifyExceptional(ctx, results)
	}

	log.Printf("Scan completed in %v: %d/%d stocks scored", time.Since(start), len(results), len(symbols))
	return results
}

// ProcessSymbol runs the full pipeline for one symbol, serving from cache
// when fresh.
func (uc *ScreenerUsecase) ProcessSymbol(ctx context.Context, symbol string) (domain.StockData, error) {
	uc.mu.RLock()
	entry, ok := uc.cache[symbol]
	uc.mu.RUnlock()
	if ok && time.Since(entry.cachedAt) < uc.cacheTTL {
		return entry.data, nil
	}

	bars, err := uc.market.FetchDailyBars(ctx, symbol)
	if err != nil {
		return domain.StockData{}, err
	}

	stock, err := ScoreStock(symbol, bars)
	if err != nil {
		return domain.StockData{}, err
	}

	uc.mu.Lock()
	uc.cache[symbol] = cachedStock{data: stock, cachedAt: time.Now()}
	uc.mu.Unlock()
	return stock, nil
}

// CacheSize reports how many symbols currently have a cached result.
func (uc *ScreenerUsecase) CacheSize() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.cache)
}

// ScoreStock is the pure per-symbol pipeline: bars in, scored record out.
func ScoreStock(symbol string, bars domain.PriceSeries) (domain.StockData, error) {
	aug, err := indicators.Compute(bars)
	if err != nil {
		return domain.StockData{}, err
	}
	result, err := CalculateScore(aug)
	if err != nil {
		return domain.StockData{}, err
	}

	li := len(bars) - 1
	last := bars[li]
	change, changePct := 0.0, 0.0
	if li >= 1 && bars[li-1].Close != 0 {
		change = last.Close - bars[li-1].Close
		changePct = change / bars[li-1].Close * 100
	}

	return domain.StockData{
		Symbol:         symbol,
		Name:           symbol,
		Sector:         domain.SectorOf(symbol),
		Price:          last.Close,
		Change:         change,
		ChangePct:      changePct,
		Volume:         last.Volume,
		TotalScore:     result.TotalScore,
		Classification: result.Classification,
		CategoryScores: result.CategoryScores,
		Indicators:     SnapshotIndicators(aug),
		Signals:        GenerateSignals(aug),
		Insights:       GenerateInsights(aug, result, symbol),
		TrendStrength:  TrendStrength(aug),
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (uc *ScreenerUsecase) persistHistory(ctx context.Context, stocks []domain.StockData) {
	if uc.history == nil || len(stocks) == 0 {
		return
	}
	snaps := make([]domain.ScoreSnapshot, len(stocks))
	for i, s := range stocks {
		snaps[i] = domain.ScoreSnapshot{
			Symbol:         s.Symbol,
			ScannedAt:      s.Timestamp,
			Price:          s.Price,
			TotalScore:     s.TotalScore,
			Classification: s.Classification,
			CategoryScores: s.CategoryScores,
		}
	}
	if err := uc.history.SaveSnapshots(ctx, snaps); err != nil {
		log.Printf("Persisting scan history failed: %v", err)
	}
}

// ApplyFilters narrows scan results by the user-supplied thresholds and
// keeps the score-descending order.
func ApplyFilters(stocks []domain.StockData, f domain.ScreeningFilters) []domain.StockData {
	out := make([]domain.StockData, 0, len(stocks))
	for _, s := range stocks {
		if f.MinScore != nil && s.TotalScore < *f.MinScore {
			continue
		}
		if f.MaxScore != nil && s.TotalScore > *f.MaxScore {
			continue
		}
		if len(f.StrengthLevels) > 0 && !contains(f.StrengthLevels, s.Classification) {
			continue
		}
		if f.MinADX != nil && (s.Indicators.ADX == nil || *s.Indicators.ADX < *f.MinADX) {
			continue
		}
		if f.RSIMin != nil || f.RSIMax != nil {
			if s.Indicators.RSI == nil {
				continue
			}
			if f.RSIMin != nil && *s.Indicators.RSI < *f.RSIMin {
				continue
			}
			if f.RSIMax != nil && *s.Indicators.RSI > *f.RSIMax {
				continue
			}
		}
		if len(f.Sectors) > 0 && !contains(f.Sectors, s.Sector) {
			continue
		}
		if f.MinPrice != nil && s.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && s.Price > *f.MaxPrice {
			continue
		}
		out = append(out, s)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func uniqueSymbols(universe []string, limit int) []string {
	seen := make(map[string]struct{}, len(universe))
	var out []string
	for _, s := range universe {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
