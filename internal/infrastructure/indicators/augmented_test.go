package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-screener-backend/internal/domain"
)

// growthBars builds n valid daily bars where the close compounds by
// dailyPct each day.
func growthBars(n int, start, dailyPct float64) domain.PriceSeries {
	bars := make(domain.PriceSeries, n)
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	close := start
	for i := 0; i < n; i++ {
		bars[i] = domain.PriceBar{
			Date:   date,
			Open:   close * 0.999,
			High:   close * 1.001,
			Low:    close * 0.998,
			Close:  close,
			Volume: 1000,
		}
		date = date.AddDate(0, 0, 1)
		close *= 1 + dailyPct/100
	}
	return bars
}

func TestComputeRejectsInvalidSeries(t *testing.T) {
	_, err := Compute(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := growthBars(5, 100, 1)
	bad[2].Low = bad[2].High + 1
	_, err = Compute(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeFullHistoryDefinesEveryColumn(t *testing.T) {
	a, err := Compute(growthBars(300, 100, 1))
	require.NoError(t, err)

	li := a.Len() - 1
	cols := map[string]Series{
		"EMA20":       a.EMA20,
		"SMA50":       a.SMA50,
		"SMA200":      a.SMA200,
		"EMA20Slope":  a.EMA20Slope,
		"SMA50Slope":  a.SMA50Slope,
		"SMA200Slope": a.SMA200Slope,
		"RSI":         a.RSI,
		"ROC":         a.ROC,
		"MACD":        a.MACD,
		"MACDSignal":  a.MACDSignal,
		"MACDHist":    a.MACDHist,
		"HistMom":     a.HistMomentum,
		"ADX":         a.ADX,
		"PlusDI":      a.PlusDI,
		"MinusDI":     a.MinusDI,
		"DISpread":    a.DISpread,
		"VolSMA20":    a.VolSMA20,
		"VolSMA50":    a.VolSMA50,
		"VolRatio":    a.VolRatio,
		"OBV":         a.OBV,
		"OBVEMA":      a.OBVEMA,
		"BBUpper":     a.BBUpper,
		"BBMiddle":    a.BBMiddle,
		"BBLower":     a.BBLower,
		"BBPosition":  a.BBPosition,
		"ATR":         a.ATR,
		"ATRPercent":  a.ATRPercent,
		"High52W":     a.High52W,
		"High4W":      a.High4W,
		"High2W":      a.High2W,
		"Tenkan":      a.Tenkan,
		"Kijun":       a.Kijun,
	}
	for name, col := range cols {
		require.Len(t, col, a.Len(), name)
		_, ok := col.At(li)
		assert.True(t, ok, "%s undefined at last index", name)
	}
}

func TestComputeShortHistoryStaysUndefined(t *testing.T) {
	a, err := Compute(growthBars(10, 100, 1))
	require.NoError(t, err)

	li := a.Len() - 1
	_, ok := a.SMA200.At(li)
	assert.False(t, ok, "SMA200 needs 200 bars")
	_, ok = a.SMA50.At(li)
	assert.False(t, ok, "SMA50 needs 50 bars")
	_, ok = a.RSI.At(li)
	assert.False(t, ok, "RSI needs period+1 bars")
	_, ok = a.High52W.At(li)
	assert.False(t, ok)

	// Short lookbacks are already live.
	_, ok = a.Close.At(li)
	assert.True(t, ok)
	_, ok = a.Tenkan.At(li)
	assert.True(t, ok, "SMA9 defined from index 8")
	_, ok = a.OBV.At(li)
	assert.True(t, ok)
}

func TestComputeRollingHighsUseHighColumn(t *testing.T) {
	bars := growthBars(30, 100, 0)
	bars[20].High = 250
	bars[20].Close = 240
	bars[20].Open = 235
	bars[20].Low = 230

	a, err := Compute(bars)
	require.NoError(t, err)

	v, ok := a.High2W.At(a.Len() - 1)
	require.True(t, ok)
	assert.InDelta(t, 250.0, v, 1e-9)
}

func TestCheckAligned(t *testing.T) {
	a, err := Compute(growthBars(60, 100, 1))
	require.NoError(t, err)
	assert.NoError(t, a.CheckAligned())

	a.RSI = a.RSI[:10]
	err = a.CheckAligned()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	empty := &Augmented{}
	assert.ErrorIs(t, empty.CheckAligned(), domain.ErrInvalidInput)
}

func TestVolumeRatio(t *testing.T) {
	bars := growthBars(25, 100, 0)
	for i := range bars {
		bars[i].Volume = 1000
	}
	bars[24].Volume = 2000

	a, err := Compute(bars)
	require.NoError(t, err)

	v, ok := a.VolRatio.At(24)
	require.True(t, ok)
	// 2000 against a 20-day mean of (19*1000+2000)/20 = 1050.
	assert.InDelta(t, 2000.0/1050.0*100.0, v, 1e-9)

	_, ok = a.VolRatio.At(10)
	assert.False(t, ok, "undefined while the volume mean is")
}

func TestComputeFlatSeriesSentinels(t *testing.T) {
	a, err := Compute(growthBars(300, 100, 0))
	require.NoError(t, err)
	li := a.Len() - 1

	// No gains and no losses to average, RSI never defines.
	_, ok := a.RSI.At(li)
	assert.False(t, ok)

	roc, ok := a.ROC.At(li)
	require.True(t, ok)
	assert.InDelta(t, 0.0, roc, 1e-9)

	macd, ok := a.MACD.At(li)
	require.True(t, ok)
	assert.InDelta(t, 0.0, macd, 1e-9)

	// Flat closes still carry a high-low range, so ATR is positive.
	atr, ok := a.ATR.At(li)
	require.True(t, ok)
	assert.Greater(t, atr, 0.0)

	_, ok = a.BBPosition.At(li)
	assert.False(t, ok, "zero band width leaves position undefined")
}
