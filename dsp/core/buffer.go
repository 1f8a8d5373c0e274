package core

// EnsureLen returns a slice of length n, reslicing buf when its capacity
// suffices and allocating otherwise. Grown regions keep whatever values the
// underlying array held; callers that need zeros follow up with Zero.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets every element of buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
