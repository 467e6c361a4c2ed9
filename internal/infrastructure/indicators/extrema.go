package indicators

// Windows for the breakout reference highs, in trading days.
const (
	Window52Week = 252
	Window4Week  = 20
	Window2Week  = 10
)

// RollingHigh computes the trailing maximum of the high column over the
// given window, used as the breakout reference level.
func RollingHigh(highs Series, window int) Series {
	return RollingMax(highs, window)
}
