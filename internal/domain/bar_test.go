package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBar(day int, close float64) PriceBar {
	return PriceBar{
		Date:   time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Open:   close - 1,
		High:   close + 2,
		Low:    close - 2,
		Close:  close,
		Volume: 1000,
	}
}

func TestValidate(t *testing.T) {
	s := PriceSeries{validBar(1, 100), validBar(2, 101), validBar(3, 99)}
	assert.NoError(t, s.Validate())
}

func TestValidateEmpty(t *testing.T) {
	assert.ErrorIs(t, PriceSeries{}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, PriceSeries(nil).Validate(), ErrInvalidInput)
}

func TestValidateNegativeVolume(t *testing.T) {
	b := validBar(1, 100)
	b.Volume = -1
	err := PriceSeries{b}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateOHLCOrdering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PriceBar)
	}{
		{"low above open", func(b *PriceBar) { b.Low = b.Open + 1 }},
		{"high below close", func(b *PriceBar) { b.High = b.Close - 1 }},
		{"high below open", func(b *PriceBar) { b.High = b.Open - 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBar(1, 100)
			tt.mutate(&b)
			assert.ErrorIs(t, PriceSeries{b}.Validate(), ErrInvalidInput)
		})
	}
}

func TestValidateEqualOHLCIsFine(t *testing.T) {
	b := PriceBar{
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Open: 100, High: 100, Low: 100, Close: 100, Volume: 0,
	}
	assert.NoError(t, PriceSeries{b}.Validate())
}

func TestValidateDateOrdering(t *testing.T) {
	dup := PriceSeries{validBar(1, 100), validBar(1, 101)}
	assert.ErrorIs(t, dup.Validate(), ErrInvalidInput)

	reversed := PriceSeries{validBar(2, 100), validBar(1, 101)}
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidInput)
}

func TestColumnExtractors(t *testing.T) {
	s := PriceSeries{validBar(1, 100), validBar(2, 110)}

	assert.Equal(t, []float64{100, 110}, s.Closes())
	assert.Equal(t, []float64{102, 112}, s.Highs())
	assert.Equal(t, []float64{98, 108}, s.Lows())
	assert.Equal(t, []float64{1000, 1000}, s.Volumes())
}
