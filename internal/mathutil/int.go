package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to [lo, hi]. hi wins when the range is empty.
func IntClamp(x, lo, hi int) int {
	return IntMin(IntMax(x, lo), hi)
}
