package indicators

// SMA computes the simple moving average over trailing windows of size
// period; undefined for the first period-1 indices.
func SMA(data Series, period int) Series {
	return RollingMean(data, period)
}
