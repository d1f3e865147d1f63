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

// Asinh computes the inverse hyperbolic sine of x.
func Asinh[T constraints.Float](x T) T {
	return T(stdmath.Asinh(float64(x)))
}

// Acosh computes the inverse hyperbolic cosine of x.
//
// Special cases:
//   - Acosh(x) = NaN if x < 1
//   - Acosh(+Inf) = +Inf
func Acosh[T constraints.Float](x T) T {
	return T(stdmath.Acosh(float64(x)))
}

// Atanh computes the inverse hyperbolic tangent of x.
//
// Special cases:
//   - Atanh(±1) = ±Inf
//   - Atanh(x) = NaN if |x| > 1
func Atanh[T constraints.Float](x T) T {
	return T(stdmath.Atanh(float64(x)))
}

// Acsch computes the inverse hyperbolic cosecant asinh(1/x).
//
// Special cases:
//   - Acsch(±0) = NaN
//   - Acsch(±Inf) = ±0
func Acsch[T constraints.Float](x T) T {
	d := float64(x)
	if d == 0 {
		return T(stdmath.NaN())
	}
	return T(stdmath.Asinh(1 / d))
}

// Asech computes the inverse hyperbolic secant acosh(1/x).
//
// Special cases:
//   - Asech(±0) = NaN
//   - Asech(1) = 0
//   - Asech(x) = NaN if x < 0 or x > 1
func Asech[T constraints.Float](x T) T {
	d := float64(x)
	if d == 0 {
		return T(stdmath.NaN())
	}
	return T(stdmath.Acosh(1 / d))
}

// Acoth computes the inverse hyperbolic cotangent atanh(1/x).
//
// Special cases:
//   - Acoth(±Inf) = 0
//   - Acoth(x) = NaN if |x| <= 1
func Acoth[T constraints.Float](x T) T {
	d := float64(x)
	if stdmath.IsInf(d, 0) {
		return 0
	}
	if stdmath.Abs(d) <= 1 {
		return T(stdmath.NaN())
	}
	return T(stdmath.Atanh(1 / d))
}
