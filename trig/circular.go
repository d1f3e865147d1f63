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

// Sin computes sin(x).
//
// Algorithm: Applies stdmath.Sin in float64.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T constraints.Float](x T) T {
	return T(stdmath.Sin(float64(x)))
}

// Cos computes cos(x).
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T constraints.Float](x T) T {
	return T(stdmath.Cos(float64(x)))
}

// Tan computes tan(x) as sin(x)/cos(x).
//
// Special cases:
//   - Tan(x) = NaN if cos(x) == 0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
//
// cos(x) is never exactly zero for a finite float64 x, so the pole guard only
// fires for arguments whose cosine rounds to zero.
func Tan[T constraints.Float](x T) T {
	s, c := stdmath.Sincos(float64(x))
	if c == 0 {
		return T(stdmath.NaN())
	}
	return T(s / c)
}

// Csc computes the cosecant 1/sin(x).
//
// Special cases:
//   - Csc(±0) = NaN
//   - Csc(±Inf) = NaN
func Csc[T constraints.Float](x T) T {
	s := stdmath.Sin(float64(x))
	if s == 0 {
		return T(stdmath.NaN())
	}
	return T(1 / s)
}

// Sec computes the secant 1/cos(x).
//
// Special cases:
//   - Sec(0) = 1
//   - Sec(x) = NaN if cos(x) == 0
func Sec[T constraints.Float](x T) T {
	c := stdmath.Cos(float64(x))
	if c == 0 {
		return T(stdmath.NaN())
	}
	return T(1 / c)
}

// Cot computes the cotangent cos(x)/sin(x).
//
// Special cases:
//   - Cot(±0) = NaN
//   - Cot(±Inf) = NaN
func Cot[T constraints.Float](x T) T {
	s, c := stdmath.Sincos(float64(x))
	if s == 0 {
		return T(stdmath.NaN())
	}
	return T(c / s)
}
