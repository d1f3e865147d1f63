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

package ctrig

import (
	stdmath "math"
)

// Sinh returns the hyperbolic sine of z.
//
// Algorithm: sinh(z) = -i sin(iz). The argument is rotated a quarter turn,
// passed to Sin, and the result rotated back.
//
// Special cases:
//   - Sinh(±Inf + i0) = ±Inf + i0
func Sinh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && stdmath.IsInf(x, 0) {
		return complex(x, 0)
	}
	s := Sin(complex(-y, x))
	return complex(imag(s), -real(s))
}

// Cosh returns the hyperbolic cosine of z, computed as cos(iz).
//
// Special cases:
//   - Cosh(±Inf + i0) = +Inf + i0
func Cosh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && stdmath.IsInf(x, 0) {
		return infComplex
	}
	return Cos(complex(-y, x))
}

// Tanh returns the hyperbolic tangent of z, computed as -i tan(iz).
//
// Special cases:
//   - Tanh(±Inf + iy) = ±1 for finite y
func Tanh(z complex128) complex128 {
	t := Tan(complex(-imag(z), real(z)))
	return complex(imag(t), -real(t))
}

// Csch returns the hyperbolic cosecant 1/sinh(z).
//
// Special cases:
//   - Csch(0) = NaN + iNaN
//   - Csch(z) = 0 if Sinh(z) is infinite in both components
func Csch(z complex128) complex128 {
	w := Sinh(z)
	if stdmath.IsInf(real(w), 0) && stdmath.IsInf(imag(w), 0) {
		return 0
	}
	return inv(w)
}

// Sech returns the hyperbolic secant 1/cosh(z).
func Sech(z complex128) complex128 {
	w := Cosh(z)
	if stdmath.IsInf(real(w), 0) && stdmath.IsInf(imag(w), 0) {
		return 0
	}
	return inv(w)
}

// Coth returns the hyperbolic cotangent 1/tanh(z).
//
// Special cases:
//   - Coth(0) = NaN + iNaN
//   - Coth(±Inf + iy) = ±1 for finite y
func Coth(z complex128) complex128 {
	return inv(Tanh(z))
}
