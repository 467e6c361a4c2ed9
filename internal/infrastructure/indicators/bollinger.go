package indicators

// BollingerBands holds the standard-deviation band system plus the close's
// position inside the band, scaled to 0-100.
type BollingerBands struct {
	Upper    Series
	Middle   Series
	Lower    Series
	Position Series
}

// Bollinger computes bands at middle +/- multiplier standard deviations
// (population std-dev over the same trailing window as the middle SMA).
// Position is (close-lower)/(upper-lower)*100, undefined when the band
// width is zero.
func Bollinger(closes Series, period int, multiplier float64) BollingerBands {
	middle := SMA(closes, period)
	std := RollingStd(closes, period)

	n := len(closes)
	upper := newSeries(n)
	lower := newSeries(n)
	position := newSeries(n)
	for i := range closes {
		m, mok := middle.At(i)
		sd, sok := std.At(i)
		if !mok || !sok {
			continue
		}
		upper[i] = m + multiplier*sd
		lower[i] = m - multiplier*sd
		if width := upper[i] - lower[i]; width != 0 && Defined(closes[i]) {
			position[i] = (closes[i] - lower[i]) / width * 100
		}
	}

	return BollingerBands{Upper: upper, Middle: middle, Lower: lower, Position: position}
}
