package domain

import "time"

// Category names for the six scoring groups. Caps sum to 120.
const (
	CategoryTrend       = "Trend Alignment"
	CategoryMomentum    = "Momentum & Strength"
	CategoryVolume      = "Volume & Liquidity"
	CategoryPriceAction = "Price Action & Breakouts"
	CategoryVolatility  = "Volatility & Risk"
	CategoryIchimoku    = "Ichimoku Cloud"
)

// CategoryScore is one category's awarded points plus its cap.
type CategoryScore struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Cap   int    `json:"cap"`
}

// ScoreResult is the outcome of one scoring run over an augmented series.
type ScoreResult struct {
	TotalScore     int                      `json:"totalScore"`
	Classification string                   `json:"classification"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
}

// Classify maps a 0-120 total to its qualitative label. Tier lower bounds
// are inclusive: a total of exactly 100 is Exceptional.
func Classify(total int) string {
	switch {
	case total >= 100:
		return "Exceptional"
	case total >= 85:
		return "Very High"
	case total >= 70:
		return "High"
	case total >= 55:
		return "Medium"
	case total >= 40:
		return "Low"
	default:
		return "Weak"
	}
}

// IndicatorSnapshot holds the last-row indicator values surfaced to API
// consumers and filters. Pointers are nil where the value is undefined for
// the series length.
type IndicatorSnapshot struct {
	RSI            *float64 `json:"rsi"`
	ADX            *float64 `json:"adx"`
	MACD           *float64 `json:"macd"`
	VolumeRatio    *float64 `json:"volumeRatio"`
	Distance50SMA  *float64 `json:"distance50Sma"`
	Distance200SMA *float64 `json:"distance200Sma"`
	ATRPercent     *float64 `json:"atrPercent"`
	BBPosition     *float64 `json:"bbPosition"`
}

// StockData is the full screening record for one symbol.
type StockData struct {
	Symbol         string                   `json:"symbol"`
	Name           string                   `json:"name"`
	Sector         string                   `json:"sector"`
	Price          float64                  `json:"price"`
	Change         float64                  `json:"change"`
	ChangePct      float64                  `json:"changePct"`
	Volume         int64                    `json:"volume"`
	TotalScore     int                      `json:"totalScore"`
	Classification string                   `json:"classification"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
	Indicators     IndicatorSnapshot        `json:"indicators"`
	Signals        []string                 `json:"signals"`
	Insights       []string                 `json:"insights"`
	TrendStrength  string                   `json:"trendStrength"`
	Timestamp      time.Time                `json:"timestamp"`
}

// ScreeningFilters narrows a scan result set. Nil pointer fields mean
// "no filter".
type ScreeningFilters struct {
	StrengthLevels []string `json:"strengthLevels,omitempty"`
	MinScore       *int     `json:"minScore,omitempty"`
	MaxScore       *int     `json:"maxScore,omitempty"`
	MinADX         *float64 `json:"minAdx,omitempty"`
	RSIMin         *float64 `json:"rsiMin,omitempty"`
	RSIMax         *float64 `json:"rsiMax,omitempty"`
	Sectors        []string `json:"sectors,omitempty"`
	MinPrice       *float64 `json:"minPrice,omitempty"`
	MaxPrice       *float64 `json:"maxPrice,omitempty"`
}
