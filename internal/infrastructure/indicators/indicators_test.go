package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	got := SMA(Series{10, 20, 30, 40}, 2)

	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, 15.0, got[1], 1e-9)
	assert.InDelta(t, 25.0, got[2], 1e-9)
	assert.InDelta(t, 35.0, got[3], 1e-9)
}

func TestEMA(t *testing.T) {
	// period 3 gives k = 0.5, seeded at the first value.
	got := EMA(Series{1, 2, 3, 4, 5}, 3)

	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 1.5, got[1], 1e-9)
	assert.InDelta(t, 2.25, got[2], 1e-9)
	assert.InDelta(t, 3.125, got[3], 1e-9)
	assert.InDelta(t, 4.0625, got[4], 1e-9)
}

func TestEMAConstantSeries(t *testing.T) {
	got := EMA(Series{7, 7, 7, 7, 7, 7}, 4)
	for i, v := range got {
		assert.InDelta(t, 7.0, v, 1e-9, "index %d", i)
	}
}

func TestEMASeedsAtFirstDefinedValue(t *testing.T) {
	data := Series{Undefined(), Undefined(), 10, 12}
	got := EMA(data, 3)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 10.0, got[2], 1e-9)
	assert.InDelta(t, 11.0, got[3], 1e-9)
}

func TestRSISaturation(t *testing.T) {
	n := 40
	rising := make(Series, n)
	falling := make(Series, n)
	flat := make(Series, n)
	for i := 0; i < n; i++ {
		rising[i] = 100 + float64(i)
		falling[i] = 100 - float64(i)
		flat[i] = 100
	}

	up := RSI(rising, 14)
	down := RSI(falling, 14)
	level := RSI(flat, 14)

	// Deltas start at index 1, so the first 14-delta window closes at 14.
	for i := 0; i < 14; i++ {
		assert.True(t, math.IsNaN(up[i]), "index %d", i)
	}
	assert.InDelta(t, 100.0, up[n-1], 1e-9)
	assert.InDelta(t, 0.0, down[n-1], 1e-9)
	// A flat window has neither gains nor losses, so RSI never defines.
	assert.True(t, math.IsNaN(level[n-1]))
}

func TestRSIMixedSeries(t *testing.T) {
	// One loss among gains keeps RSI below 100 but far above 50.
	data := make(Series, 20)
	for i := range data {
		data[i] = 100 + float64(i)
	}
	data[10] = data[9] - 1 // single down day
	data[11] = data[10] + 2

	got := RSI(data, 14)
	last := got[len(got)-1]
	require.False(t, math.IsNaN(last))
	assert.Greater(t, last, 50.0)
	assert.Less(t, last, 100.0)
}

func TestTrueRange(t *testing.T) {
	highs := Series{11, 13}
	lows := Series{9, 11}
	closes := Series{10, 12}

	got := TrueRange(highs, lows, closes)

	assert.True(t, math.IsNaN(got[0]))
	// max(13-11, |13-10|, |11-10|) = 3, the gap dominates.
	assert.InDelta(t, 3.0, got[1], 1e-9)
}

func TestATRConstantRange(t *testing.T) {
	n := 20
	highs := make(Series, n)
	lows := make(Series, n)
	closes := make(Series, n)
	for i := 0; i < n; i++ {
		highs[i] = 102
		lows[i] = 100
		closes[i] = 101
	}

	atr := ATR(highs, lows, closes, 14)
	assert.InDelta(t, 2.0, atr[n-1], 1e-9)

	atrPct := ATRPercent(atr, closes)
	assert.InDelta(t, 2.0/101.0*100.0, atrPct[n-1], 1e-9)
}

func TestBollinger(t *testing.T) {
	closes := make(Series, 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}

	bb := Bollinger(closes, 20, 2.0)
	last := len(closes) - 1

	// Population std of 1..20 has variance (20*20-1)/12.
	std := math.Sqrt(399.0 / 12.0)
	assert.InDelta(t, 10.5, bb.Middle[last], 1e-9)
	assert.InDelta(t, 10.5+2*std, bb.Upper[last], 1e-9)
	assert.InDelta(t, 10.5-2*std, bb.Lower[last], 1e-9)

	wantPos := (20.0 - bb.Lower[last]) / (bb.Upper[last] - bb.Lower[last]) * 100
	assert.InDelta(t, wantPos, bb.Position[last], 1e-9)
	assert.Greater(t, bb.Position[last], 80.0)
}

func TestBollingerZeroWidth(t *testing.T) {
	closes := make(Series, 25)
	for i := range closes {
		closes[i] = 50
	}

	bb := Bollinger(closes, 20, 2.0)
	last := len(closes) - 1

	assert.InDelta(t, 50.0, bb.Upper[last], 1e-9)
	assert.InDelta(t, 50.0, bb.Lower[last], 1e-9)
	assert.True(t, math.IsNaN(bb.Position[last]), "position undefined at zero width")
}

func TestOBV(t *testing.T) {
	closes := Series{10, 11, 11, 10, 12}
	volumes := Series{100, 200, 300, 400, 500}

	got := OBV(closes, volumes)

	want := []float64{0, 200, 200, -200, 300}
	for i, w := range want {
		assert.InDelta(t, w, got[i], 1e-9, "index %d", i)
	}
}

func TestROC(t *testing.T) {
	closes := make(Series, 15)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	got := ROC(closes, 10)

	assert.True(t, math.IsNaN(got[9]))
	// (110-100)/100 * 100
	assert.InDelta(t, 10.0, got[10], 1e-9)
}

func TestDMIStrongUptrend(t *testing.T) {
	// Every bar gaps up: -DM is always zero, so DX saturates at 100 and
	// ADX converges there too.
	n := 40
	highs := make(Series, n)
	lows := make(Series, n)
	closes := make(Series, n)
	for i := 0; i < n; i++ {
		lows[i] = 100 + 2*float64(i)
		highs[i] = lows[i] + 1
		closes[i] = lows[i] + 0.5
	}

	dmi := DMI(highs, lows, closes, 14)
	last := n - 1

	// TR = |high - prevClose| = 2.5 every bar, +DM = 2.
	assert.InDelta(t, 80.0, dmi.PlusDI[last], 1e-9)
	assert.InDelta(t, 0.0, dmi.MinusDI[last], 1e-9)
	assert.InDelta(t, 80.0, dmi.Spread[last], 1e-9)
	assert.InDelta(t, 100.0, dmi.ADX[last], 1e-9)

	// DX needs 14 defined directional bars, ADX another 14 on top.
	assert.True(t, math.IsNaN(dmi.ADX[26]))
	assert.False(t, math.IsNaN(dmi.ADX[27]))
}

func TestLinearSlope(t *testing.T) {
	assert.InDelta(t, 2.0, LinearSlope([]float64{1, 3, 5, 7}), 1e-9)
	assert.InDelta(t, 0.0, LinearSlope([]float64{4, 4, 4, 4}), 1e-9)
	assert.Equal(t, 0.0, LinearSlope([]float64{5}))
	assert.Equal(t, 0.0, LinearSlope(nil))
}
