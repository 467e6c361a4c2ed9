package usecase

import (
	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/indicators"
)

// Category point caps. They sum to 120.
const (
	capTrend       = 25
	capMomentum    = 35
	capVolume      = 20
	capPriceAction = 25
	capVolatility  = 10
	capIchimoku    = 5
)

// CalculateScore maps the latest row of an augmented series to a total
// score, per-category breakdown, and classification. Categories are
// independent: each reads only indicator columns, never another category's
// points. A sub-rule whose inputs are undefined contributes 0; the only
// error is a structurally broken augmented series.
func CalculateScore(a *indicators.Augmented) (domain.ScoreResult, error) {
	if err := a.CheckAligned(); err != nil {
		return domain.ScoreResult{}, err
	}

	categories := []domain.CategoryScore{
		ScoreTrendAlignment(a),
		ScoreMomentumStrength(a),
		ScoreVolumeLiquidity(a),
		ScorePriceAction(a),
		ScoreVolatilityRisk(a),
		ScoreIchimoku(a),
	}

	total := 0
	byName := make(map[string]domain.CategoryScore, len(categories))
	for _, c := range categories {
		total += c.Value
		byName[c.Name] = c
	}

	return domain.ScoreResult{
		TotalScore:     total,
		Classification: domain.Classify(total),
		CategoryScores: byName,
	}, nil
}

// ScoreTrendAlignment awards up to 25 points for moving-average ordering,
// slopes, and spacing.
func ScoreTrendAlignment(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	close, cok := a.Close.At(li)
	ema20, eok := a.EMA20.At(li)
	sma50, s50ok := a.SMA50.At(li)
	sma200, s200ok := a.SMA200.At(li)

	// Price position: 12 points.
	if cok && eok && s50ok && s200ok {
		switch {
		case close > ema20 && ema20 > sma50 && sma50 > sma200:
			score += 12
		case close > sma50 && sma50 > sma200:
			score += 10
		case close > sma50:
			score += 7
		case close > sma50*0.97:
			score += 4
		}
	}

	// MA slopes: 8 points. Thresholds are percent change over 5 samples.
	s20, s20ok2 := a.EMA20Slope.At(li)
	s50, s50ok2 := a.SMA50Slope.At(li)
	s200, s200ok2 := a.SMA200Slope.At(li)
	switch {
	case s20ok2 && s50ok2 && s200ok2 && s20 > 2 && s50 > 2 && s200 > 2:
		score += 8
	case s20ok2 && s50ok2 && s20 > 2 && s50 > 2:
		score += 6
	case s20ok2 && s20 > 2:
		score += 3
	}

	// MA spacing: 5 points when the averages fan out in bull order.
	if eok && s50ok && s200ok && ema20 > sma50 && sma50 > sma200 {
		spacing := (ema20 - sma50) / sma50 * 100
		if spacing > 2 {
			score += 5
		} else if spacing > 0 {
			score += 3
		}
	}

	return domain.CategoryScore{Name: domain.CategoryTrend, Value: score, Cap: capTrend}
}

// ScoreMomentumStrength awards up to 35 points for ADX, DI spread, RSI, ROC,
// and MACD state.
func ScoreMomentumStrength(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	// ADX strength tiers: 10 points.
	if adx, ok := a.ADX.At(li); ok {
		switch {
		case adx > 40:
			score += 10
		case adx > 30:
			score += 8
		case adx > 25:
			score += 6
		case adx > 20:
			score += 4
		}
	}

	// DI spread plus ADX direction: 5 points. "Rising" compares ADX against
	// its value 3 samples prior.
	if spread, ok := a.DISpread.At(li); ok {
		switch {
		case spread > 10 && adxRising(a, li):
			score += 5
		case spread > 5:
			score += 3
		case spread > 0:
			score += 1
		}
	}

	// RSI bands: 8 points. Bands overlap; first match wins.
	if rsi, ok := a.RSI.At(li); ok {
		switch {
		case rsi >= 60 && rsi <= 70:
			score += 8
		case rsi >= 55 && rsi <= 65:
			score += 6
		case rsi >= 50 && rsi <= 60:
			score += 4
		case rsi >= 45 && rsi <= 55:
			score += 2
		}
	}

	// ROC tiers: 4 points.
	if roc, ok := a.ROC.At(li); ok {
		switch {
		case roc > 8:
			score += 4
		case roc > 4:
			score += 3
		case roc > 2:
			score += 2
		case roc > 0:
			score += 1
		}
	}

	// MACD state: 8 points.
	macd, mok := a.MACD.At(li)
	signal, sok := a.MACDSignal.At(li)
	if mok && sok {
		hist, hok := a.MACDHist.At(li)
		mom, momok := a.HistMomentum.At(li)
		switch {
		case macd > signal && hok && hist > 0 && momok && mom > 0:
			score += 8
		case macd > signal && hok && hist > 0:
			score += 6
		case macd > signal:
			score += 4
		}
	}

	return domain.CategoryScore{Name: domain.CategoryMomentum, Value: score, Cap: capMomentum}
}

func adxRising(a *indicators.Augmented, li int) bool {
	cur, ok := a.ADX.At(li)
	if !ok {
		return false
	}
	prev, ok := a.ADX.At(li - 3)
	return ok && cur > prev
}

// ScoreVolumeLiquidity awards up to 20 points for volume surge, OBV
// position, and volume/price co-trend.
func ScoreVolumeLiquidity(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	// Volume surge tiers: 8 points.
	if ratio, ok := a.VolRatio.At(li); ok {
		switch {
		case ratio > 200:
			score += 8
		case ratio > 150:
			score += 6
		case ratio > 120:
			score += 4
		case ratio > 100:
			score += 2
		}
	}

	// OBV position: 6 points. The trailing max runs over however many of the
	// last 50 samples exist.
	obv, ook := a.OBV.At(li)
	obvEMA, eok := a.OBVEMA.At(li)
	if ook && eok {
		switch {
		case obv >= trailingMax(a.OBV, li, 50):
			score += 6
		case obv > obvEMA:
			score += 4
		default:
			score += 2
		}
	}

	// Volume/price co-trend: 6 points when the last 10-day means exceed the
	// prior 10-day means.
	if a.Len() >= 20 {
		volUp := meanRatioAbove1(a.Volume, li)
		priceUp := meanRatioAbove1(a.Close, li)
		if volUp && priceUp {
			score += 6
		} else if volUp || priceUp {
			score += 3
		}
	}

	return domain.CategoryScore{Name: domain.CategoryVolume, Value: score, Cap: capVolume}
}

func trailingMax(s indicators.Series, li, window int) float64 {
	start := li - window + 1
	if start < 0 {
		start = 0
	}
	max := s[start]
	for i := start + 1; i <= li; i++ {
		if s[i] > max {
			max = s[i]
		}
	}
	return max
}

// meanRatioAbove1 reports whether the mean of the last 10 samples exceeds
// the mean of the 10 before them. Callers guarantee li >= 19.
func meanRatioAbove1(s indicators.Series, li int) bool {
	var recent, prior float64
	for i := li - 9; i <= li; i++ {
		recent += s[i]
	}
	for i := li - 19; i <= li-10; i++ {
		prior += s[i]
	}
	return prior > 0 && recent/prior > 1
}

// ScorePriceAction awards up to 25 points for the weekly-sampled rise
// streak, breakout proximity, and the trend of recent lows.
func ScorePriceAction(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	// Consecutive-rise streak over closes sampled every 5 days from the last
	// 35 bars: 10 points.
	streak := riseStreak(sampleEvery5(a.Close, 35))
	switch {
	case streak >= 5:
		score += 10
	case streak >= 3:
		score += 7
	case streak >= 2:
		score += 4
	case streak >= 1:
		score += 2
	}

	// Breakout proximity: 8 points. References are the PRIOR bar's rolling
	// highs so a fresh breakout bar is compared against levels it did not
	// itself set.
	if close, ok := a.Close.At(li); ok && li >= 1 {
		h52, h52ok := a.High52W.At(li - 1)
		h4, h4ok := a.High4W.At(li - 1)
		h2, h2ok := a.High2W.At(li - 1)
		ratio, rok := a.VolRatio.At(li)
		switch {
		case h52ok && close >= h52*0.995 && rok && ratio > 150:
			score += 8
		case h4ok && close >= h4*0.995:
			score += 7
		case h2ok && close >= h2*0.995:
			score += 5
		}
	}

	// Trend of the trailing 20 lows via linear fit: 7 points ascending,
	// 3 otherwise. A single bar cannot anchor a line, so it scores 0.
	if a.Len() >= 2 {
		start := a.Len() - 20
		if start < 0 {
			start = 0
		}
		if indicators.LinearSlope(a.Low[start:]) > 0 {
			score += 7
		} else {
			score += 3
		}
	}

	return domain.CategoryScore{Name: domain.CategoryPriceAction, Value: score, Cap: capPriceAction}
}

// sampleEvery5 takes closes at indices n-35, n-30, ... n-5 (clamped at 0 for
// short series), the daily approximation of weekly closes.
func sampleEvery5(closes indicators.Series, lookback int) []float64 {
	start := len(closes) - lookback
	if start < 0 {
		start = 0
	}
	var out []float64
	for i := start; i < len(closes); i += 5 {
		out = append(out, closes[i])
	}
	return out
}

// riseStreak counts consecutive increases walking back from the end of the
// sampled subsequence.
func riseStreak(samples []float64) int {
	streak := 0
	for i := len(samples) - 1; i > 0; i-- {
		if samples[i] > samples[i-1] {
			streak++
		} else {
			break
		}
	}
	return streak
}

// ScoreVolatilityRisk awards up to 10 points for Bollinger position and the
// 10-day change in ATR%.
func ScoreVolatilityRisk(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	// Bollinger position tiers: 6 points.
	if pos, ok := a.BBPosition.At(li); ok {
		switch {
		case pos > 80:
			score += 6
		case pos > 60:
			score += 4
		case pos > 50:
			score += 2
		}
	}

	// ATR% change vs 10 samples ago: 4 points. Mild expansion scores
	// highest; a volatility collapse or spike scores nothing.
	cur, cok := a.ATRPercent.At(li)
	past, pok := a.ATRPercent.At(li - 9)
	if cok && pok && past != 0 {
		change := (cur - past) / past * 100
		switch {
		case change >= 10 && change <= 20:
			score += 4
		case change >= -5 && change <= 10:
			score += 3
		case change >= -10 && change < -5:
			score += 2
		}
	}

	return domain.CategoryScore{Name: domain.CategoryVolatility, Value: score, Cap: capVolatility}
}

// ScoreIchimoku awards up to 5 points using 9/26-day SMAs as Tenkan/Kijun
// proxies.
func ScoreIchimoku(a *indicators.Augmented) domain.CategoryScore {
	li := a.Len() - 1
	score := 0

	close, cok := a.Close.At(li)
	tenkan, tok := a.Tenkan.At(li)
	kijun, kok := a.Kijun.At(li)
	if cok && tok && kok && close > kijun && tenkan > kijun {
		distance := (close - kijun) / kijun * 100
		switch {
		case distance > 10:
			score += 5
		case distance > 5:
			score += 4
		default:
			score += 2
		}
	}

	return domain.CategoryScore{Name: domain.CategoryIchimoku, Value: score, Cap: capIchimoku}
}
