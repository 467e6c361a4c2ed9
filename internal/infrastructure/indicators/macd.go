package indicators

// MACDResult bundles the MACD line, its signal line, the histogram, and the
// 3-sample histogram momentum.
type MACDResult struct {
	Line         Series
	Signal       Series
	Histogram    Series
	HistMomentum Series
}

// MACD computes EMA(fast) - EMA(slow) on closes, an EMA(signalPeriod) of
// that line as the signal, their difference as the histogram, and the
// 3-sample difference of the histogram as momentum.
func MACD(closes Series, fast, slow, signalPeriod int) MACDResult {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	line := newSeries(len(closes))
	for i := range line {
		f, fok := emaFast.At(i)
		s, sok := emaSlow.At(i)
		if fok && sok {
			line[i] = f - s
		}
	}

	signal := EMA(line, signalPeriod)

	hist := newSeries(len(closes))
	for i := range hist {
		l, lok := line.At(i)
		s, sok := signal.At(i)
		if lok && sok {
			hist[i] = l - s
		}
	}

	return MACDResult{
		Line:         line,
		Signal:       signal,
		Histogram:    hist,
		HistMomentum: Diff(hist, 3),
	}
}
