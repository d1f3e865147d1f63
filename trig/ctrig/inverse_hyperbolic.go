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

// Asinh returns the principal inverse hyperbolic sine of z.
//
// Formula: asinh(z) = log(z + sqrt(z² + 1))
//
// Arguments whose real part has the sign bit set use asinh(z) = -asinh(-z).
//
// Special cases:
//   - Asinh(±Inf + iy) = ±Inf ± i0 for finite y
//   - Asinh(x ± iInf) = +Inf ± i pi/4 for finite x >= 0
func Asinh(z complex128) complex128 {
	if isNegative(real(z)) {
		return neg(Asinh(neg(z)))
	}
	x, y := real(z), imag(z)
	if stdmath.IsInf(x, 1) && !stdmath.IsInf(y, 0) && !stdmath.IsNaN(y) {
		return complex(stdmath.Inf(1), stdmath.Copysign(0, y))
	}

	z2 := z * z
	return log(z + sqrt(complex(real(z2)+1, imag(z2))))
}

// Acosh returns the principal inverse hyperbolic cosine of z.
//
// Formula: acosh(z) = log(z + sqrt(z² - 1))
//
// Special cases:
//   - Acosh(0) = i pi/2
//   - Acosh(+Inf + i0) = +Inf + i0
//   - Acosh(-Inf + i0) = +Inf + iNaN
func Acosh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		switch {
		case stdmath.IsInf(x, 1):
			return infComplex
		case stdmath.IsInf(x, -1):
			return complex(stdmath.Inf(1), stdmath.NaN())
		}
	}

	z2 := z * z
	return log(z + sqrt(complex(real(z2)-1, imag(z2))))
}

// Atanh returns the principal inverse hyperbolic tangent of z.
//
// Formula: atanh(z) = log((1 + z) / (1 - z)) / 2
//
// Arguments whose real part has the sign bit set use atanh(z) = -atanh(-z).
//
// Special cases:
//   - Atanh(±1) = ±Inf + i0
//   - Atanh(±Inf + iy) = ±0 ∓ i pi/2 for finite y
//   - Atanh(x ± iInf) = 0 ± i pi/2 for finite x
func Atanh(z complex128) complex128 {
	if isNegative(real(z)) {
		return neg(Atanh(neg(z)))
	}
	x, y := real(z), imag(z)
	if z == 1 {
		return infComplex
	}
	if isInfOnly(x, y) {
		return complex(0, -halfPi)
	}
	if isInfOnly(y, x) {
		if isNegative(y) {
			return complex(0, -halfPi)
		}
		return complex(0, halfPi)
	}

	return half(log(quo(complex(1+x, y), complex(1-x, -y))))
}

// Acsch returns the principal inverse hyperbolic cosecant of z.
//
// Formula: acsch(z) = log(1/z + sqrt(1/z² + 1))
//
// Arguments whose real part has the sign bit set use acsch(z) = -acsch(-z).
//
// Special cases:
//   - Acsch(0) = NaN + iNaN
//   - Acsch(z) = 0 if either component of z is infinite
//   - Acsch(z) = ±Inf + i0 if z² underflows to zero
func Acsch(z complex128) complex128 {
	if isZero(z) {
		return nanComplex
	}
	if isInf(z) {
		return 0
	}
	if isNegative(real(z)) {
		return neg(Acsch(neg(z)))
	}

	z2 := z * z
	if isZero(z2) {
		return infComplex
	}
	r := inv(z2)
	return log(inv(z) + sqrt(complex(real(r)+1, imag(r))))
}

// Asech returns the principal inverse hyperbolic secant of z.
//
// Formula: asech(z) = log(1/z + sqrt(1/z² - 1))
//
// Special cases:
//   - Asech(0) = NaN + iNaN
//   - Asech(±Inf + iy) = i pi/2 for finite y
//   - Asech(x + iInf) = -i pi/2 and Asech(x - iInf) = i pi/2 for finite x
//   - Asech(z) = +Inf + i0 (or +Inf + i pi for Re z < 0) if z² underflows
func Asech(z complex128) complex128 {
	if isZero(z) {
		return nanComplex
	}
	x, y := real(z), imag(z)
	if isInfOnly(x, y) {
		return complex(0, halfPi)
	}
	if isInfOnly(y, x) {
		if isNegative(y) {
			return complex(0, halfPi)
		}
		return complex(0, -halfPi)
	}

	z2 := z * z
	if isZero(z2) {
		if isNegative(x) {
			return complex(stdmath.Inf(1), stdmath.Pi)
		}
		return infComplex
	}
	r := inv(z2)
	return log(inv(z) + sqrt(complex(real(r)-1, imag(r))))
}

// Acoth returns the principal inverse hyperbolic cotangent of z.
//
// Formula: acoth(z) = log((z + 1) / (z - 1)) / 2
//
// Arguments whose real part has the sign bit set use acoth(z) = -acoth(-z).
//
// Special cases:
//   - Acoth(±1) = ±Inf + i0
//   - Acoth(z) = 0 if exactly one component of z is infinite
//   - Acoth(±Inf ± iInf) = NaN + iNaN
func Acoth(z complex128) complex128 {
	if isNegative(real(z)) {
		return neg(Acoth(neg(z)))
	}
	x, y := real(z), imag(z)
	if z == 1 {
		return infComplex
	}
	if isInfOnly(x, y) || isInfOnly(y, x) {
		return 0
	}

	return half(log(quo(complex(x+1, y), complex(x-1, y))))
}
