package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 5)
	for _, v := range w {
		fmt.Printf("%.3f ", v)
	}
	fmt.Println()
	// Output:
	// 0.000 0.500 1.000 0.500 0.000
}

func ExampleEquivalentNoiseBandwidth() {
	w := window.Generate(window.TypeHann, 1024, window.WithPeriodic())
	enbw, _ := window.EquivalentNoiseBandwidth(w)
	fmt.Printf("%.2f bins\n", enbw)
	// Output:
	// 1.50 bins
}
