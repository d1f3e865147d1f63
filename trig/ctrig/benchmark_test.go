package ctrig_test

import (
	"math/cmplx"
	"testing"

	"github.com/ajroetker/go-trig/trig/ctrig"
)

// ============================================================================
// Complex function benchmarks, with math/cmplx as a baseline where it exists
// ============================================================================

func benchInput(size int) []complex128 {
	input := make([]complex128, size)
	for i := range input {
		input[i] = complex(float64(i%100)*0.1-5, float64(i%37)*0.2-3.7)
	}
	return input
}

func benchmarkPair(b *testing.B, fn, baseline func(complex128) complex128) {
	input := benchInput(4096)
	output := make([]complex128, len(input))

	b.Run("ctrig", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, z := range input {
				output[j] = fn(z)
			}
		}
	})

	if baseline == nil {
		return
	}
	b.Run("cmplx", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, z := range input {
				output[j] = baseline(z)
			}
		}
	})
}

func BenchmarkSin(b *testing.B)   { benchmarkPair(b, ctrig.Sin, cmplx.Sin) }
func BenchmarkTan(b *testing.B)   { benchmarkPair(b, ctrig.Tan, cmplx.Tan) }
func BenchmarkCot(b *testing.B)   { benchmarkPair(b, ctrig.Cot, cmplx.Cot) }
func BenchmarkTanh(b *testing.B)  { benchmarkPair(b, ctrig.Tanh, cmplx.Tanh) }
func BenchmarkCsch(b *testing.B)  { benchmarkPair(b, ctrig.Csch, nil) }
func BenchmarkAsin(b *testing.B)  { benchmarkPair(b, ctrig.Asin, cmplx.Asin) }
func BenchmarkAtan(b *testing.B)  { benchmarkPair(b, ctrig.Atan, cmplx.Atan) }
func BenchmarkAcot(b *testing.B)  { benchmarkPair(b, ctrig.Acot, nil) }
func BenchmarkAcosh(b *testing.B) { benchmarkPair(b, ctrig.Acosh, cmplx.Acosh) }
func BenchmarkAsech(b *testing.B) { benchmarkPair(b, ctrig.Asech, nil) }
func BenchmarkAcoth(b *testing.B) { benchmarkPair(b, ctrig.Acoth, nil) }
