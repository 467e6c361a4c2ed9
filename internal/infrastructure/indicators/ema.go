package indicators

// EMA computes the exponential moving average with smoothing factor
// k = 2/(period+1). The recursion is seeded at the first defined input
// (no-adjust convention), so output is defined from that index onward and
// converges numerically over roughly one period of samples.
func EMA(data Series, period int) Series {
	out := newSeries(len(data))
	if period < 1 {
		return out
	}
	k := 2.0 / (float64(period) + 1.0)

	seeded := false
	prev := 0.0
	for i := range data {
		if !Defined(data[i]) {
			if seeded {
				// A gap after seeding would desynchronize the recursion;
				// inputs here are contiguous once defined, so stop instead.
				break
			}
			continue
		}
		if !seeded {
			prev = data[i]
			seeded = true
		} else {
			prev = data[i]*k + prev*(1-k)
		}
		out[i] = prev
	}
	return out
}
