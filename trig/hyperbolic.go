// Copyright 2025 go-trig Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trig

import (
	stdmath "math"

	"golang.org/x/exp/constraints"
)

// Sinh computes sinh(x).
//
// Formula: sinh(x) = (e^x - e^(-x)) / 2
func Sinh[T constraints.Float](x T) T {
	return T(stdmath.Sinh(float64(x)))
}

// Cosh computes cosh(x).
//
// Formula: cosh(x) = (e^x + e^(-x)) / 2
func Cosh[T constraints.Float](x T) T {
	return T(stdmath.Cosh(float64(x)))
}

// Tanh computes tanh(x).
func Tanh[T constraints.Float](x T) T {
	return T(stdmath.Tanh(float64(x)))
}

// Csch computes the hyperbolic cosecant 1/sinh(x).
//
// Special cases:
//   - Csch(±0) = NaN
//   - Csch(±Inf) = ±0
func Csch[T constraints.Float](x T) T {
	s := stdmath.Sinh(float64(x))
	if s == 0 {
		return T(stdmath.NaN())
	}
	return T(1 / s)
}

// Sech computes the hyperbolic secant 1/cosh(x). It has no real poles.
//
// Special cases:
//   - Sech(0) = 1
//   - Sech(±Inf) = 0
func Sech[T constraints.Float](x T) T {
	return T(1 / stdmath.Cosh(float64(x)))
}

// Coth computes the hyperbolic cotangent 1/tanh(x).
//
// Special cases:
//   - Coth(±0) = NaN
//   - Coth(±Inf) = ±1
func Coth[T constraints.Float](x T) T {
	if x == 0 {
		return T(stdmath.NaN())
	}
	return T(1 / stdmath.Tanh(float64(x)))
}
