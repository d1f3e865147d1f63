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

// Sin returns the sine of z.
//
// Formula: sin(x+iy) = sin(x)cosh(y) + i cos(x)sinh(y)
//
// Special cases:
//   - Sin(±Inf + iy) = NaN + iNaN
//   - Sin(x + iInf) = Inf·sin(x) + iInf·cos(x) for finite nonzero x
//   - Sin(NaN + iy) = NaN + iNaN
func Sin(z complex128) complex128 {
	x, y := real(z), imag(z)
	s, c := stdmath.Sincos(x)
	return complex(s*stdmath.Cosh(y), c*stdmath.Sinh(y))
}

// Cos returns the cosine of z.
//
// Formula: cos(x+iy) = cos(x)cosh(y) - i sin(x)sinh(y)
func Cos(z complex128) complex128 {
	x, y := real(z), imag(z)
	s, c := stdmath.Sincos(x)
	return complex(c*stdmath.Cosh(y), -(s * stdmath.Sinh(y)))
}

// Tan returns the tangent of z.
//
// Algorithm: Uses the double-angle form
//
//	tan(x+iy) = (sin 2x + i sinh 2y) / (cos 2x + cosh 2y)
//
// For |y| > 4 numerator and denominator are both divided by cosh 2y, which
// keeps the result finite where cosh 2y and sinh 2y overflow.
//
// Special cases:
//   - Tan(x ± iInf) = 0 ± i for finite x
//   - Tan(±pi/2) = ±Inf + iNaN
func Tan(z complex128) complex128 {
	x2, y2 := 2*real(z), 2*imag(z)
	s, c := stdmath.Sincos(x2)
	ch := stdmath.Cosh(y2)
	if stdmath.Abs(imag(z)) <= tanLargeImag {
		d := c + ch
		return complex(s/d, stdmath.Sinh(y2)/d)
	}
	d := 1 + c/ch
	return complex(s/ch/d, stdmath.Tanh(y2)/d)
}

// Csc returns the cosecant 1/sin(z).
//
// Special cases:
//   - Csc(0) = NaN + iNaN
//   - Csc(z) = 0 if Sin(z) is infinite in either component
func Csc(z complex128) complex128 {
	w := Sin(z)
	if isInf(w) {
		return 0
	}
	return inv(w)
}

// Sec returns the secant 1/cos(z).
//
// Special cases:
//   - Sec(z) = 0 if Cos(z) is infinite in either component
func Sec(z complex128) complex128 {
	w := Cos(z)
	if isInf(w) {
		return 0
	}
	return inv(w)
}

// Cot returns the cotangent of z.
//
// It is computed as one complex division
//
//	(cos x cosh y - i sin x sinh y) / (sin x cosh y + i cos x sinh y)
//
// rather than as Cos(z)/Sin(z).
//
// Special cases:
//   - Cot(±Inf + iy) = Cot(NaN + iy) = NaN + iNaN
//   - Cot(x - iInf) = i
//   - Cot(x + iInf) = -i
//   - Cot(0) = NaN + iNaN
func Cot(z complex128) complex128 {
	x, y := real(z), imag(z)
	if stdmath.IsInf(x, 0) || stdmath.IsNaN(x) {
		return nanComplex
	}
	if stdmath.IsInf(y, -1) {
		return complex(0, 1)
	}
	if stdmath.IsInf(y, 1) {
		return complex(0, -1)
	}

	s, c := stdmath.Sincos(x)
	ch, sh := stdmath.Cosh(y), stdmath.Sinh(y)
	return quo(complex(c*ch, -(s*sh)), complex(s*ch, c*sh))
}
