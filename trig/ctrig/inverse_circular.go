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

// Asin returns the principal arc sine of z.
//
// Algorithm: Hull, Fairgrieve and Tang. The kernel works on |Re z| and
// |Im z| and the signs are restored afterwards, so the result is exact in
// sign for every quadrant and finite for infinite inputs on either axis.
//
// Special cases:
//   - Asin(±Inf + iy) = ±pi/2 + iInf for finite y >= 0
//   - Asin(x ± iInf) = 0 ± iInf for finite x >= 0
//   - Asin(±Inf ∓ iInf) = NaN + iNaN
//   - Asin(-0 + iy) = -0 + iv; a zero imaginary part keeps v = +0
func Asin(z complex128) complex128 {
	b, bPrime, v := asinParts(stdmath.Abs(real(z)), stdmath.Abs(imag(z)))

	var u float64
	if bPrime < 0 {
		u = stdmath.Asin(b)
	} else {
		u = stdmath.Atan(bPrime)
	}

	if isNegative(real(z)) {
		u = -u
	}
	if imag(z) < 0 {
		v = -v
	}
	return complex(u, v)
}

// Acos returns the principal arc cosine of z.
//
// Special cases:
//   - Acos(+Inf + i0) = 0 + iInf
//   - Acos(-Inf + i0) = pi + iInf
//   - Acos(x ± iInf) = pi/2 ∓ iInf for finite x
func Acos(z complex128) complex128 {
	b, bPrime, v := asinParts(stdmath.Abs(real(z)), stdmath.Abs(imag(z)))

	var u float64
	if bPrime < 0 {
		u = stdmath.Acos(b)
	} else {
		u = stdmath.Atan(1 / bPrime)
	}

	if isNegative(real(z)) {
		u = stdmath.Pi - u
	}
	if imag(z) > 0 {
		v = -v
	}
	return complex(u, v)
}

// Atan returns the principal arc tangent of z.
//
// Formula: atan(z) = (i/2) (log(1 - iz) - log(1 + iz))
//
// Special cases:
//   - Atan(z) = ±pi/2 + i0 if exactly one component of z is infinite and
//     the other finite; the sign is negative when either component has its
//     sign bit set.
func Atan(z complex128) complex128 {
	x, y := real(z), imag(z)
	if isInfOnly(x, y) || isInfOnly(y, x) {
		if isNegative(x) || isNegative(y) {
			return complex(-halfPi, 0)
		}
		return complex(halfPi, 0)
	}

	iz := 1i * z
	return 0.5i * (log(1-iz) - log(1+iz))
}

// Acsc returns the arc cosecant asin(1/z).
//
// Special cases:
//   - Acsc(0) = NaN + iNaN
//   - Acsc(z) = 0 if exactly one component of z is infinite
func Acsc(z complex128) complex128 {
	return Asin(inv(z))
}

// Asec returns the arc secant acos(1/z).
//
// Special cases:
//   - Asec(0) = NaN + iNaN
//   - Asec(z) = pi/2 if exactly one component of z is infinite
func Asec(z complex128) complex128 {
	return Acos(inv(z))
}

// Acot returns the arc cotangent of z.
//
// Arguments whose real part has the sign bit set are reflected through
// acot(-z) = pi - acot(z), which places the real part of the result in
// [0, pi].
//
// Special cases:
//   - Acot(0) = pi/2
//   - Acot(z) = pi/2 if 1/z overflows
//   - Acot(+Inf + iy) = 0 and Acot(-Inf + iy) = pi for finite y
func Acot(z complex128) complex128 {
	if isZero(z) {
		return complex(halfPi, 0)
	}
	w := inv(z)
	if isInf(w) {
		return complex(halfPi, 0)
	}
	if isNegative(real(z)) {
		r := Atan(inv(neg(z)))
		return complex(stdmath.Pi-real(r), -imag(r))
	}
	return Atan(w)
}
