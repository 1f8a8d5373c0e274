package core

import "math"

// Clamp limits value to the inclusive range [lo, hi]. A reversed range is
// accepted and treated as [hi, lo].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	}
	return value
}

// FlushDenormals rounds values below 1e-30 in magnitude to exact zero.
// Denormal arithmetic is orders of magnitude slower on some CPUs, and decaying
// recursive filter state is the usual way such values arise.
func FlushDenormals(x float64) float64 {
	const tiny = 1e-30
	if x > -tiny && x < tiny {
		return 0
	}
	return x
}

// LinearToDB converts linear amplitude to decibels (20*log10 convention).
// Zero maps to -Inf, negative amplitudes to NaN.
func LinearToDB(amplitude float64) float64 {
	if amplitude < 0 {
		return math.NaN()
	}
	if amplitude == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(amplitude)
}

// LinearPowerToDB converts linear power to decibels (10*log10 convention).
// Zero maps to -Inf, negative powers to NaN.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}
	if power == 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
