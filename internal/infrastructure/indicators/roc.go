package indicators

// ROC computes the Rate of Change over period samples:
// (close - close[period ago]) / close[period ago] * 100.
func ROC(closes Series, period int) Series {
	return PctChange(closes, period)
}
