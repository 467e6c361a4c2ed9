package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is returned when a PriceSeries violates its structural
// invariants. Short history is not an invalid input; indicators simply stay
// undefined until enough bars exist.
var ErrInvalidInput = errors.New("invalid price series")

// PriceBar is one trading day of OHLCV data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is an ordered sequence of daily bars, ascending by date.
// Calendar gaps (holidays, weekends) are fine; duplicate or out-of-order
// dates are not.
type PriceSeries []PriceBar

// Validate checks the series invariants: non-empty, strictly increasing
// dates, non-negative volume, and low <= min(open,close) <= max(open,close)
// <= high on every bar.
func (s PriceSeries) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	for i, b := range s {
		if b.Volume < 0 {
			return fmt.Errorf("%w: bar %d has negative volume %d", ErrInvalidInput, i, b.Volume)
		}
		lo, hi := b.Open, b.Close
		if lo > hi {
			lo, hi = hi, lo
		}
		if b.Low > lo || hi > b.High {
			return fmt.Errorf("%w: bar %d violates OHLC ordering (o=%g h=%g l=%g c=%g)",
				ErrInvalidInput, i, b.Open, b.High, b.Low, b.Close)
		}
		if i > 0 && !s[i-1].Date.Before(b.Date) {
			return fmt.Errorf("%w: bar %d date %s not after previous %s",
				ErrInvalidInput, i, b.Date.Format("2006-01-02"), s[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes extracts the close column.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high column.
func (s PriceSeries) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low column.
func (s PriceSeries) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the volume column as floats.
func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = float64(b.Volume)
	}
	return out
}
