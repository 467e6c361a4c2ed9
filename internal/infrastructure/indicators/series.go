package indicators

import "math"

// Series is one aligned indicator column: one entry per input bar, NaN where
// insufficient history leaves the value undefined.
type Series []float64

// Undefined returns the sentinel for a missing value.
func Undefined() float64 { return math.NaN() }

// Defined reports whether v carries a real value.
func Defined(v float64) bool { return !math.IsNaN(v) }

// newSeries allocates a fully undefined column of length n.
func newSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// At returns the value at index i, reporting whether it is defined.
// Out-of-range indices read as undefined.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	if !Defined(s[i]) {
		return 0, false
	}
	return s[i], true
}

// Last returns the most recent value, reporting whether it is defined.
func (s Series) Last() (float64, bool) {
	return s.At(len(s) - 1)
}

// RollingMean computes the trailing arithmetic mean over windows of size
// period. A window is undefined until index period-1 and whenever any entry
// inside it is undefined.
func RollingMean(data Series, period int) Series {
	out := newSeries(len(data))
	if period < 1 {
		return out
	}
	sum := 0.0
	undef := 0
	for i := range data {
		if Defined(data[i]) {
			sum += data[i]
		} else {
			undef++
		}
		if i >= period {
			if Defined(data[i-period]) {
				sum -= data[i-period]
			} else {
				undef--
			}
		}
		if i >= period-1 && undef == 0 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// RollingMax computes the trailing maximum over windows of size period, with
// the same undefined semantics as RollingMean.
func RollingMax(data Series, period int) Series {
	out := newSeries(len(data))
	if period < 1 {
		return out
	}
	for i := period - 1; i < len(data); i++ {
		max := math.Inf(-1)
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if !Defined(data[j]) {
				ok = false
				break
			}
			if data[j] > max {
				max = data[j]
			}
		}
		if ok {
			out[i] = max
		}
	}
	return out
}

// RollingStd computes the trailing population standard deviation over
// windows of size period.
func RollingStd(data Series, period int) Series {
	out := newSeries(len(data))
	if period < 1 {
		return out
	}
	for i := period - 1; i < len(data); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if !Defined(data[j]) {
				ok = false
				break
			}
			sum += data[j]
		}
		if !ok {
			continue
		}
		mean := sum / float64(period)
		sq := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := data[j] - mean
			sq += d * d
		}
		out[i] = math.Sqrt(sq / float64(period))
	}
	return out
}

// Diff returns data[i] - data[i-lag]; undefined where either operand is.
func Diff(data Series, lag int) Series {
	out := newSeries(len(data))
	for i := lag; i < len(data); i++ {
		if Defined(data[i]) && Defined(data[i-lag]) {
			out[i] = data[i] - data[i-lag]
		}
	}
	return out
}

// PctChange returns the percent change over lag samples:
// (data[i] - data[i-lag]) / data[i-lag] * 100. Undefined where either
// operand is undefined or the base is zero.
func PctChange(data Series, lag int) Series {
	out := newSeries(len(data))
	for i := lag; i < len(data); i++ {
		if Defined(data[i]) && Defined(data[i-lag]) && data[i-lag] != 0 {
			out[i] = (data[i] - data[i-lag]) / data[i-lag] * 100
		}
	}
	return out
}
