package ctrig

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	inf    = stdmath.Inf(1)
	nan    = stdmath.NaN()
	eps    = stdmath.SmallestNonzeroFloat64
	maxF   = stdmath.MaxFloat64
	pi     = stdmath.Pi
	negZ   = stdmath.Copysign(0, -1)
	nanNaN = complex(nan, nan)
)

// approxEqual treats NaNs as equal, requires infinities to match exactly and
// otherwise allows a relative error of 1e-12 with a small absolute floor.
func approxEqual(a, b float64) bool {
	switch {
	case stdmath.IsNaN(a) || stdmath.IsNaN(b):
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	case stdmath.IsInf(a, 0) || stdmath.IsInf(b, 0):
		return a == b
	}
	diff := stdmath.Abs(a - b)
	return diff <= 1e-15 || diff <= 1e-12*stdmath.Max(stdmath.Abs(a), stdmath.Abs(b))
}

var approx = cmp.Comparer(func(a, b complex128) bool {
	return approxEqual(real(a), real(b)) && approxEqual(imag(a), imag(b))
})

// bitsEqual compares both components bit for bit, so -0 differs from +0.
// Any two NaNs compare equal.
func bitsEqual(a, b complex128) bool {
	eq := func(x, y float64) bool {
		if stdmath.IsNaN(x) || stdmath.IsNaN(y) {
			return stdmath.IsNaN(x) && stdmath.IsNaN(y)
		}
		return stdmath.Float64bits(x) == stdmath.Float64bits(y)
	}
	return eq(real(a), real(b)) && eq(imag(a), imag(b))
}

type testCase struct {
	in   complex128
	want complex128
}

func runCases(t *testing.T, name string, fn func(complex128) complex128, cases []testCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(fmt.Sprintf("%s%v", name, tt.in), func(t *testing.T) {
			got := fn(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("%s(%v) = %v, want %v", name, tt.in, got, tt.want)
			}
		})
	}
}
