package usecase

import (
	"fmt"

	"stock-screener-backend/internal/domain"
	"stock-screener-backend/internal/infrastructure/indicators"
)

// GenerateSignals derives human-readable trading signals from the last
// indicator row.
func GenerateSignals(a *indicators.Augmented) []string {
	li := a.Len() - 1
	var signals []string

	macd, mok := a.MACD.At(li)
	signal, sok := a.MACDSignal.At(li)
	hist, hok := a.MACDHist.At(li)
	if mok && sok && hok && macd > signal && hist > 0 {
		signals = append(signals, "Bullish MACD crossover")
	}

	if rsi, ok := a.RSI.At(li); ok {
		if rsi >= 60 && rsi <= 70 {
			signals = append(signals, "RSI in strong momentum zone")
		} else if rsi > 80 {
			signals = append(signals, "RSI overbought - potential pullback")
		}
	}

	close, cok := a.Close.At(li)
	sma50, s50ok := a.SMA50.At(li)
	sma200, s200ok := a.SMA200.At(li)
	if cok && s50ok && s200ok && close > sma50 && sma50 > sma200 {
		signals = append(signals, "Strong uptrend - all MAs aligned")
	}

	ratio, rok := a.VolRatio.At(li)
	if rok && ratio > 150 {
		signals = append(signals, "High volume surge detected")
	}

	if h52, ok := a.High52W.At(li); ok && cok && close >= h52*0.995 {
		signals = append(signals, "Near 52-week high breakout")
	}

	if len(signals) == 0 {
		signals = append(signals, "No strong signals detected")
	}
	return signals
}

// GenerateInsights produces a short narrative summary of the score result.
func GenerateInsights(a *indicators.Augmented, result domain.ScoreResult, symbol string) []string {
	li := a.Len() - 1
	var insights []string

	if trend, ok := result.CategoryScores[domain.CategoryTrend]; ok {
		if trend.Value >= 20 {
			insights = append(insights, fmt.Sprintf("%s is in a strong uptrend with well-aligned moving averages", symbol))
		} else if trend.Value >= 15 {
			insights = append(insights, fmt.Sprintf("%s shows positive trend alignment", symbol))
		}
	}

	if adx, ok := a.ADX.At(li); ok && adx > 30 {
		insights = append(insights, fmt.Sprintf("Strong trend strength with ADX at %.1f", adx))
	}

	if ratio, ok := a.VolRatio.At(li); ok && ratio > 150 {
		insights = append(insights, fmt.Sprintf("Exceptional volume activity at %.0f%% of average", ratio))
	}

	if result.TotalScore >= 85 {
		insights = append(insights, "This stock demonstrates exceptional technical strength across all metrics")
	} else if result.TotalScore >= 70 {
		insights = append(insights, "Strong technical setup with multiple positive indicators")
	}

	if len(insights) == 0 {
		insights = append(insights, "Limited insights available")
	}
	return insights
}

// TrendStrength grades the overall trend on a five-level scale from MA
// alignment, ADX, RSI, and volume confirmation.
func TrendStrength(a *indicators.Augmented) string {
	li := a.Len() - 1
	factors := 0.0
	const maxFactors = 5.0

	close, cok := a.Close.At(li)
	ema20, eok := a.EMA20.At(li)
	sma50, s50ok := a.SMA50.At(li)
	sma200, s200ok := a.SMA200.At(li)
	if cok && eok && s50ok && s200ok {
		if close > ema20 && ema20 > sma50 && sma50 > sma200 {
			factors += 2
		} else if close > sma50 && sma50 > sma200 {
			factors += 1
		}
	}

	if adx, ok := a.ADX.At(li); ok {
		if adx > 30 {
			factors += 1
		} else if adx > 25 {
			factors += 0.5
		}
	}

	if rsi, ok := a.RSI.At(li); ok && rsi >= 55 && rsi <= 75 {
		factors += 1
	}

	if ratio, ok := a.VolRatio.At(li); ok && ratio > 120 {
		factors += 0.5
	}

	switch ratio := factors / maxFactors; {
	case ratio >= 0.8:
		return "Very Strong"
	case ratio >= 0.6:
		return "Strong"
	case ratio >= 0.4:
		return "Moderate"
	case ratio >= 0.2:
		return "Weak"
	default:
		return "Very Weak"
	}
}

// SnapshotIndicators extracts the last-row values exposed to API consumers
// and threshold filters. Undefined values stay nil.
func SnapshotIndicators(a *indicators.Augmented) domain.IndicatorSnapshot {
	li := a.Len() - 1
	snap := domain.IndicatorSnapshot{
		RSI:         optional(a.RSI, li),
		ADX:         optional(a.ADX, li),
		MACD:        optional(a.MACD, li),
		VolumeRatio: optional(a.VolRatio, li),
		ATRPercent:  optional(a.ATRPercent, li),
		BBPosition:  optional(a.BBPosition, li),
	}

	close, cok := a.Close.At(li)
	if sma50, ok := a.SMA50.At(li); ok && cok && sma50 != 0 {
		v := (close - sma50) / sma50 * 100
		snap.Distance50SMA = &v
	}
	if sma200, ok := a.SMA200.At(li); ok && cok && sma200 != 0 {
		v := (close - sma200) / sma200 * 100
		snap.Distance200SMA = &v
	}
	return snap
}

func optional(s indicators.Series, i int) *float64 {
	if v, ok := s.At(i); ok {
		return &v
	}
	return nil
}
