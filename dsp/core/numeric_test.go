package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		lo, hi float64
		want   float64
	}{
		{name: "interior", value: 0.25, lo: 0, hi: 1, want: 0.25},
		{name: "at lower edge", value: 0, lo: 0, hi: 1, want: 0},
		{name: "below", value: -3, lo: 0, hi: 1, want: 0},
		{name: "above", value: 1.5, lo: -1, hi: 1, want: 1},
		{name: "reversed range", value: 5, lo: 1, hi: -1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-31); got != 0 {
		t.Fatalf("FlushDenormals(1e-31) = %v, want 0", got)
	}
	if got := FlushDenormals(-1e-31); got != 0 {
		t.Fatalf("FlushDenormals(-1e-31) = %v, want 0", got)
	}
	for _, v := range []float64{1e-29, -1e-29, 0.5, -2} {
		if got := FlushDenormals(v); got != v {
			t.Fatalf("FlushDenormals(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", got)
	}
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	// Half amplitude is very close to -6 dB.
	if got := LinearToDB(0.5); math.Abs(got+6.0206) > 1e-3 {
		t.Fatalf("LinearToDB(0.5) = %v, want ~-6.02", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0): want -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1): want NaN")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(1); got != 0 {
		t.Fatalf("LinearPowerToDB(1) = %v, want 0", got)
	}
	// Doubled power is very close to +3 dB.
	if got := LinearPowerToDB(2); math.Abs(got-3.0103) > 1e-3 {
		t.Fatalf("LinearPowerToDB(2) = %v, want ~3.01", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0): want -Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1): want NaN")
	}
}
