package indicators

// OBV computes On-Balance Volume: a running sum where each bar adds its
// volume if the close rose, subtracts it if the close fell, and adds nothing
// if unchanged. The first bar contributes zero, so OBV is defined from
// index 0.
func OBV(closes, volumes Series) Series {
	out := newSeries(len(closes))
	if len(closes) == 0 {
		return out
	}
	running := 0.0
	out[0] = 0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			running += volumes[i]
		case closes[i] < closes[i-1]:
			running -= volumes[i]
		}
		out[i] = running
	}
	return out
}
