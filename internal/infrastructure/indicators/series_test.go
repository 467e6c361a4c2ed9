package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingMean(t *testing.T) {
	got := RollingMean(Series{1, 2, 3, 4, 5}, 3)

	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2.0, got[2], 1e-9)
	assert.InDelta(t, 3.0, got[3], 1e-9)
	assert.InDelta(t, 4.0, got[4], 1e-9)
}

func TestRollingMeanPropagatesUndefined(t *testing.T) {
	data := Series{1, Undefined(), 3, 4, 5}
	got := RollingMean(data, 3)

	// Windows touching the gap stay undefined; later windows recover.
	assert.True(t, math.IsNaN(got[2]))
	assert.True(t, math.IsNaN(got[3]))
	assert.InDelta(t, 4.0, got[4], 1e-9)
}

func TestRollingMax(t *testing.T) {
	got := RollingMax(Series{1, 3, 2, 5, 4}, 2)

	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, 3.0, got[1], 1e-9)
	assert.InDelta(t, 3.0, got[2], 1e-9)
	assert.InDelta(t, 5.0, got[3], 1e-9)
	assert.InDelta(t, 5.0, got[4], 1e-9)
}

func TestRollingStdIsPopulation(t *testing.T) {
	data := Series{2, 4, 4, 4, 5, 5, 7, 9}
	got := RollingStd(data, 8)

	// Mean 5, population variance 4.
	assert.InDelta(t, 2.0, got[7], 1e-9)
	for i := 0; i < 7; i++ {
		assert.True(t, math.IsNaN(got[i]), "index %d", i)
	}
}

func TestDiff(t *testing.T) {
	got := Diff(Series{1, 2, 4, 8}, 1)

	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, 1.0, got[1], 1e-9)
	assert.InDelta(t, 2.0, got[2], 1e-9)
	assert.InDelta(t, 4.0, got[3], 1e-9)
}

func TestPctChange(t *testing.T) {
	got := PctChange(Series{100, 110, 121}, 1)

	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, 10.0, got[1], 1e-9)
	assert.InDelta(t, 10.0, got[2], 1e-9)
}

func TestPctChangeZeroBase(t *testing.T) {
	got := PctChange(Series{0, 5}, 1)
	assert.True(t, math.IsNaN(got[1]))
}

func TestSeriesAtAndLast(t *testing.T) {
	s := Series{1, Undefined(), 3}

	v, ok := s.At(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = s.At(1)
	assert.False(t, ok)

	_, ok = s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(3)
	assert.False(t, ok)

	v, ok = s.Last()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = Series{}.Last()
	assert.False(t, ok)
}
