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

// Asin computes the arc sine of x.
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(x) = NaN if |x| > 1
func Asin[T constraints.Float](x T) T {
	return T(stdmath.Asin(float64(x)))
}

// Acos computes the arc cosine of x.
//
// Special cases:
//   - Acos(x) = NaN if |x| > 1
func Acos[T constraints.Float](x T) T {
	return T(stdmath.Acos(float64(x)))
}

// Atan computes the arc tangent of x.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±pi/2
func Atan[T constraints.Float](x T) T {
	return T(stdmath.Atan(float64(x)))
}

// Acsc computes the arc cosecant asin(1/x).
//
// Special cases:
//   - Acsc(±0) = NaN
//   - Acsc(x) = NaN if |x| < 1
//   - Acsc(±Inf) = ±0
func Acsc[T constraints.Float](x T) T {
	d := float64(x)
	if d == 0 {
		return T(stdmath.NaN())
	}
	return T(stdmath.Asin(1 / d))
}

// Asec computes the arc secant acos(1/x).
//
// Special cases:
//   - Asec(±0) = NaN
//   - Asec(x) = NaN if |x| < 1
//   - Asec(±Inf) = pi/2
func Asec[T constraints.Float](x T) T {
	d := float64(x)
	if d == 0 {
		return T(stdmath.NaN())
	}
	return T(stdmath.Acos(1 / d))
}

// Acot computes the arc cotangent of x with range (0, pi].
//
// Negative arguments, -0 included, are reflected through acot(-x) = pi - acot(x)
// so the result never jumps below zero.
//
// Special cases:
//   - Acot(±0) = pi/2
//   - Acot(+Inf) = 0
//   - Acot(-Inf) = pi
func Acot[T constraints.Float](x T) T {
	d := float64(x)
	if d == 0 {
		return T(stdmath.Pi / 2)
	}
	if IsNegative(d) {
		return T(stdmath.Pi - stdmath.Atan(1/-d))
	}
	return T(stdmath.Atan(1 / d))
}
