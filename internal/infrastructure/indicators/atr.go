package indicators

import "math"

// TrueRange computes per-bar true range:
// max(high-low, |high-prevClose|, |low-prevClose|). The first bar has no
// previous close, so its entry is undefined.
func TrueRange(highs, lows, closes Series) Series {
	n := len(closes)
	out := newSeries(n)
	for i := 1; i < n; i++ {
		if !Defined(highs[i]) || !Defined(lows[i]) || !Defined(closes[i-1]) {
			continue
		}
		tr := highs[i] - lows[i]
		if hc := math.Abs(highs[i] - closes[i-1]); hc > tr {
			tr = hc
		}
		if lc := math.Abs(lows[i] - closes[i-1]); lc > tr {
			tr = lc
		}
		out[i] = tr
	}
	return out
}

// ATR computes the Average True Range as a trailing simple mean of true
// range over period samples.
func ATR(highs, lows, closes Series, period int) Series {
	return RollingMean(TrueRange(highs, lows, closes), period)
}

// ATRPercent expresses ATR as a percentage of the close.
func ATRPercent(atr, closes Series) Series {
	out := newSeries(len(closes))
	for i := range out {
		a, aok := atr.At(i)
		c, cok := closes.At(i)
		if aok && cok && c != 0 {
			out[i] = a / c * 100
		}
	}
	return out
}
