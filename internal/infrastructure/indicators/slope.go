package indicators

// Slope returns the 5-sample percent change of a moving-average series, the
// trend-direction proxy used by the scoring rules.
func Slope(ma Series) Series {
	return PctChange(ma, 5)
}

// LinearSlope fits a least-squares line through data (x = 0..n-1) and
// returns its slope. Returns 0 for fewer than two points or a degenerate
// fit.
func LinearSlope(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range data {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := float64(n)*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (float64(n)*sumXY - sumX*sumY) / denom
}
