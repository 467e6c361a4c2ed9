package indicators

import (
	"fmt"

	"stock-screener-backend/internal/domain"
)

// Augmented is a PriceSeries plus every derived indicator column, all
// aligned one entry per input bar. It is produced once per pipeline
// invocation and read-only afterwards.
type Augmented struct {
	Bars domain.PriceSeries

	Close  Series
	High   Series
	Low    Series
	Volume Series

	EMA20  Series
	SMA50  Series
	SMA200 Series

	EMA20Slope  Series
	SMA50Slope  Series
	SMA200Slope Series

	RSI Series
	ROC Series

	MACD         Series
	MACDSignal   Series
	MACDHist     Series
	HistMomentum Series

	ADX      Series
	PlusDI   Series
	MinusDI  Series
	DISpread Series

	VolSMA20 Series
	VolSMA50 Series
	VolRatio Series

	OBV    Series
	OBVEMA Series

	BBUpper    Series
	BBMiddle   Series
	BBLower    Series
	BBPosition Series

	ATR        Series
	ATRPercent Series

	High52W Series
	High4W  Series
	High2W  Series

	Tenkan Series
	Kijun  Series
}

// Len returns the number of bars in the series.
func (a *Augmented) Len() int { return len(a.Bars) }

// Compute validates the series and runs the full indicator battery. It never
// fails on short input; columns simply stay undefined where lookback is
// insufficient.
func Compute(bars domain.PriceSeries) (*Augmented, error) {
	if err := bars.Validate(); err != nil {
		return nil, err
	}

	closes := Series(bars.Closes())
	highs := Series(bars.Highs())
	lows := Series(bars.Lows())
	volumes := Series(bars.Volumes())

	a := &Augmented{
		Bars:   bars,
		Close:  closes,
		High:   highs,
		Low:    lows,
		Volume: volumes,
	}

	a.EMA20 = EMA(closes, 20)
	a.SMA50 = SMA(closes, 50)
	a.SMA200 = SMA(closes, 200)

	a.EMA20Slope = Slope(a.EMA20)
	a.SMA50Slope = Slope(a.SMA50)
	a.SMA200Slope = Slope(a.SMA200)

	a.RSI = RSI(closes, 14)
	a.ROC = ROC(closes, 10)

	macd := MACD(closes, 12, 26, 9)
	a.MACD = macd.Line
	a.MACDSignal = macd.Signal
	a.MACDHist = macd.Histogram
	a.HistMomentum = macd.HistMomentum

	dmi := DMI(highs, lows, closes, 14)
	a.ADX = dmi.ADX
	a.PlusDI = dmi.PlusDI
	a.MinusDI = dmi.MinusDI
	a.DISpread = dmi.Spread

	a.VolSMA20 = SMA(volumes, 20)
	a.VolSMA50 = SMA(volumes, 50)
	a.VolRatio = volumeRatio(volumes, a.VolSMA20)

	a.OBV = OBV(closes, volumes)
	a.OBVEMA = EMA(a.OBV, 20)

	bb := Bollinger(closes, 20, 2.0)
	a.BBUpper = bb.Upper
	a.BBMiddle = bb.Middle
	a.BBLower = bb.Lower
	a.BBPosition = bb.Position

	a.ATR = ATR(highs, lows, closes, 14)
	a.ATRPercent = ATRPercent(a.ATR, closes)

	a.High52W = RollingHigh(highs, Window52Week)
	a.High4W = RollingHigh(highs, Window4Week)
	a.High2W = RollingHigh(highs, Window2Week)

	a.Tenkan = SMA(closes, 9)
	a.Kijun = SMA(closes, 26)

	return a, nil
}

// volumeRatio is the close volume over its 20-day mean, as a percentage.
// Undefined while the mean is undefined or zero.
func volumeRatio(volumes, volSMA Series) Series {
	out := newSeries(len(volumes))
	for i := range out {
		v, vok := volumes.At(i)
		m, mok := volSMA.At(i)
		if vok && mok && m != 0 {
			out[i] = v / m * 100
		}
	}
	return out
}

// CheckAligned verifies the structural sanity the Scoring Engine relies on:
// a non-empty series with every column the same length as the bars.
func (a *Augmented) CheckAligned() error {
	n := a.Len()
	if n == 0 {
		return fmt.Errorf("%w: empty augmented series", domain.ErrInvalidInput)
	}
	cols := []Series{
		a.Close, a.High, a.Low, a.Volume,
		a.EMA20, a.SMA50, a.SMA200,
		a.EMA20Slope, a.SMA50Slope, a.SMA200Slope,
		a.RSI, a.ROC,
		a.MACD, a.MACDSignal, a.MACDHist, a.HistMomentum,
		a.ADX, a.PlusDI, a.MinusDI, a.DISpread,
		a.VolSMA20, a.VolSMA50, a.VolRatio,
		a.OBV, a.OBVEMA,
		a.BBUpper, a.BBMiddle, a.BBLower, a.BBPosition,
		a.ATR, a.ATRPercent,
		a.High52W, a.High4W, a.High2W,
		a.Tenkan, a.Kijun,
	}
	for i, c := range cols {
		if len(c) != n {
			return fmt.Errorf("%w: column %d length %d, want %d", domain.ErrInvalidInput, i, len(c), n)
		}
	}
	return nil
}
