// Command firdesign designs equiripple FIR filters and prints the resulting
// coefficients together with exchange diagnostics.
//
// Usage:
//
//	firdesign [flags] <type>
//
// Types: lowpass, highpass, bandpass, halfband, hilbert, differentiator.
// All frequencies are normalized so 1.0 is the Nyquist rate.
//
// Examples:
//
//	firdesign -order 20 -pass 0.3 -stop 0.4 lowpass
//	firdesign -order 16 -pass 0.2 -stop 0.1 -wstop 10 highpass
//	firdesign -order 24 -stop 0.15 -pass 0.25 -pass2 0.6 -stop2 0.7 bandpass
//	firdesign -order 12 -pass 0.45 halfband
//	firdesign -order 15 -pass 0.05 -pass2 0.95 hilbert
//	firdesign -order 16 -dt 0.5 -staggered differentiator
//	firdesign -order 20 -pass 0.3 -stop 0.4 -response 16 lowpass
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-sigproc/dsp/filter/equiripple"
)

func main() {
	order := flag.Int("order", 10, "design order N; the tap count follows from the filter type")
	pass := flag.Float64("pass", 0.3, "passband edge")
	pass2 := flag.Float64("pass2", 0.6, "second passband edge (bandpass, hilbert)")
	stop := flag.Float64("stop", 0.5, "stopband edge")
	stop2 := flag.Float64("stop2", 0.7, "second stopband edge (bandpass)")
	wpass := flag.Float64("wpass", 1, "passband weight")
	wstop := flag.Float64("wstop", 1, "stopband weight")
	dt := flag.Float64("dt", 1, "sampling interval for differentiators")
	staggered := flag.Bool("staggered", false, "half-sample (staggered) hilbert or differentiator variant")
	response := flag.Int("response", 0, "also print the magnitude response at this many frequencies")
	maxIter := flag.Int("maxiter", 0, "cap on exchange iterations (0 uses the default)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	var opts []equiripple.Option
	if *maxIter > 0 {
		opts = append(opts, equiripple.WithMaxIterations(*maxIter))
	}

	var (
		f   *equiripple.Filter
		err error
	)
	switch flag.Arg(0) {
	case "lowpass":
		f, err = equiripple.NewLowpass(*order, *pass, *wpass, *stop, *wstop, opts...)
	case "highpass":
		f, err = equiripple.NewHighpass(*order, *stop, *wstop, *pass, *wpass, opts...)
	case "bandpass":
		f, err = equiripple.NewBandpass(*order, *stop, *wstop, *pass, *pass2, *wpass, *stop2, *wstop, opts...)
	case "halfband":
		f, err = equiripple.NewHalfBand(*order, *pass, opts...)
	case "hilbert":
		if *staggered {
			f, err = equiripple.NewStaggeredHilbert(*order, *pass, opts...)
		} else {
			f, err = equiripple.NewCenteredHilbert(*order, *pass, *pass2, opts...)
		}
	case "differentiator":
		if *staggered {
			f, err = equiripple.NewStaggeredDifferentiator(*order, *dt, opts...)
		} else {
			f, err = equiripple.NewCenteredDifferentiator(*order, *dt, opts...)
		}
	default:
		fmt.Fprintf(os.Stderr, "error: unknown filter type %q\n", flag.Arg(0))
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rep := f.Report()
	fmt.Printf("# %s, order %d, %d taps\n", flag.Arg(0), *order, f.Len())
	fmt.Printf("# iterations %d, converged %v, deviation %.6g\n",
		rep.Iterations, rep.Converged, rep.Deviation)
	for i, c := range f.Coefficients() {
		fmt.Printf("h[%3d] = %+.12e\n", i, c)
	}

	if *response > 0 {
		printResponse(f, *response)
	}
}

func printResponse(f *equiripple.Filter, n int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nOmega\t|H|\t")
	for i := 0; i <= n; i++ {
		omega := float64(i) / float64(n)
		fmt.Fprintf(tw, "%.4f\t%.6f\t\n", omega, cmplx.Abs(f.Response(omega)))
	}
	tw.Flush()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: firdesign [flags] <type>\n\n")
	fmt.Fprintf(os.Stderr, "Designs equiripple FIR filters. Types: lowpass, highpass,\n")
	fmt.Fprintf(os.Stderr, "bandpass, halfband, hilbert, differentiator.\n")
	fmt.Fprintf(os.Stderr, "Frequencies are normalized; 1.0 is the Nyquist rate.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
