package core

// CircularShift rotates y in place by shift samples. Positive shifts move
// samples toward higher indices with wrap-around. The shift is reduced modulo
// len(y) and replaced by the shorter opposite-direction rotation when that
// moves fewer samples.
func CircularShift(y []float64, shift int) {
	n := len(y)
	if n == 0 {
		return
	}

	s := shift % n
	if s > 0 && n-s < s {
		s -= n
	} else if s < 0 && n+s < -s {
		s += n
	}
	if s == 0 {
		return
	}

	if s > 0 {
		tmp := make([]float64, s)
		copy(tmp, y[n-s:])
		copy(y[s:], y[:n-s])
		copy(y[:s], tmp)
		return
	}

	tmp := make([]float64, -s)
	copy(tmp, y[:-s])
	copy(y[:n+s], y[-s:])
	copy(y[n+s:], tmp)
}

// ZeroShift shifts y in place by shift samples (positive toward higher
// indices), discarding samples shifted off the end and zero-filling the
// vacated positions.
func ZeroShift(y []float64, shift int) {
	n := len(y)

	switch {
	case shift >= n || -shift >= n:
		Zero(y)
	case shift > 0:
		copy(y[shift:], y[:n-shift])
		Zero(y[:shift])
	case shift < 0:
		copy(y[:n+shift], y[-shift:])
		Zero(y[n+shift:])
	}
}

// Reverse reverses y in place.
func Reverse(y []float64) {
	i := 0
	j := len(y) - 1
	for i < j {
		y[i], y[j] = y[j], y[i]
		i++
		j--
	}
}

// Alias wraps src into dst modulo len(dst): dst[i mod len(dst)] accumulates
// every src sample that lands on it. dst is zeroed first.
func Alias(src, dst []float64) {
	Zero(dst)
	if len(dst) == 0 {
		return
	}

	for i, v := range src {
		dst[i%len(dst)] += v
	}
}

// RemoveMean subtracts the arithmetic mean from every sample of y.
func RemoveMean(y []float64) {
	if len(y) == 0 {
		return
	}

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	for i := range y {
		y[i] -= mean
	}
}
