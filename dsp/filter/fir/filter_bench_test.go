package fir

import (
	"fmt"
	"testing"
)

func benchCoeffs(taps int) []float64 {
	c := make([]float64, taps)
	for i := range c {
		c[i] = 1 / float64(taps)
	}
	return c
}

func BenchmarkFilterProcessBlock(b *testing.B) {
	for _, taps := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			f := New(benchCoeffs(taps))
			buf := make([]float64, 4096)
			for i := range buf {
				buf[i] = float64(i%100) * 0.01
			}

			b.SetBytes(4096 * 8)
			b.ResetTimer()
			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}
