package indicators

import "math"

// DMIResult holds the directional movement system: +DI, -DI, their spread,
// and ADX.
type DMIResult struct {
	PlusDI  Series
	MinusDI Series
	Spread  Series
	ADX     Series
}

// DMI computes the directional movement index family with trailing
// simple-mean smoothing.
//
// Per bar, +DM is the up-move (high minus previous high) when it is positive
// and exceeds the down-move, else zero; -DM symmetrically. DM and TR are
// undefined on the first bar. +DI/-DI divide period-smoothed DM by the
// smoothed true range, so they are undefined while the smoothed TR is zero
// (a perfectly flat window). DX is undefined when +DI + -DI is zero, and ADX
// is the trailing period-mean of DX.
func DMI(highs, lows, closes Series, period int) DMIResult {
	n := len(closes)
	plusDM := newSeries(n)
	minusDM := newSeries(n)
	for i := 1; i < n; i++ {
		if !Defined(highs[i]) || !Defined(highs[i-1]) || !Defined(lows[i]) || !Defined(lows[i-1]) {
			continue
		}
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		plusDM[i] = 0
		minusDM[i] = 0
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	tr := TrueRange(highs, lows, closes)
	smoothTR := RollingMean(tr, period)
	smoothPlus := RollingMean(plusDM, period)
	smoothMinus := RollingMean(minusDM, period)

	plusDI := newSeries(n)
	minusDI := newSeries(n)
	spread := newSeries(n)
	dx := newSeries(n)
	for i := range dx {
		atr, aok := smoothTR.At(i)
		p, pok := smoothPlus.At(i)
		m, mok := smoothMinus.At(i)
		if !aok || !pok || !mok || atr == 0 {
			continue
		}
		pdi := 100 * p / atr
		mdi := 100 * m / atr
		plusDI[i] = pdi
		minusDI[i] = mdi
		spread[i] = pdi - mdi
		if pdi+mdi != 0 {
			dx[i] = 100 * math.Abs(pdi-mdi) / (pdi + mdi)
		}
	}

	return DMIResult{
		PlusDI:  plusDI,
		MinusDI: minusDI,
		Spread:  spread,
		ADX:     RollingMean(dx, period),
	}
}
