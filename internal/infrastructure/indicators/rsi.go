package indicators

// RSI computes the Relative Strength Index from trailing simple means of
// gains and losses over the close-delta series. The first bar has no delta,
// so RSI is undefined until index period.
//
// When the average loss is zero but gains are present the RS ratio is
// unbounded and RSI saturates at 100. A completely flat window has no
// gains or losses either, so RSI stays undefined there.
func RSI(closes Series, period int) Series {
	n := len(closes)
	gains := newSeries(n)
	losses := newSeries(n)
	for i := 1; i < n; i++ {
		if !Defined(closes[i]) || !Defined(closes[i-1]) {
			continue
		}
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
			losses[i] = 0
		} else {
			gains[i] = 0
			losses[i] = -change
		}
	}

	avgGain := RollingMean(gains, period)
	avgLoss := RollingMean(losses, period)

	out := newSeries(n)
	for i := range out {
		g, gok := avgGain.At(i)
		l, lok := avgLoss.At(i)
		if !gok || !lok {
			continue
		}
		switch {
		case l == 0 && g == 0:
			// flat window, stays undefined
		case l == 0:
			out[i] = 100
		default:
			rs := g / l
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out
}
