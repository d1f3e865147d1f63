package trig_test

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-trig/trig"
)

func BenchmarkCot(b *testing.B) {
	size := 4096
	input := make([]float64, size)
	output := make([]float64, size)
	for i := range input {
		input[i] = float64(i%100)*0.1 + 0.05
	}

	b.Run("Float64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, x := range input {
				output[j] = trig.Cot(x)
			}
		}
	})

	input32 := make([]float32, size)
	output32 := make([]float32, size)
	for i := range input32 {
		input32[i] = float32(input[i])
	}

	b.Run("Float32", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, x := range input32 {
				output32[j] = trig.Cot(x)
			}
		}
	})

	b.Run("Stdlib", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, x := range input {
				output[j] = 1 / stdmath.Tan(x)
			}
		}
	})
}

func BenchmarkAcoth(b *testing.B) {
	size := 4096
	input := make([]float64, size)
	output := make([]float64, size)
	for i := range input {
		input[i] = float64(i%100)*0.1 + 1.05
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, x := range input {
			output[j] = trig.Acoth(x)
		}
	}
}
