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
	"math/cmplx"

	"github.com/ajroetker/go-trig/trig"
)

// isNegative reports whether the sign bit of x is set.
func isNegative(x float64) bool {
	return trig.IsNegative(x)
}

// isInfOnly reports whether x is infinite while y is finite.
func isInfOnly(x, y float64) bool {
	return stdmath.IsInf(x, 0) && !stdmath.IsInf(y, 0) && !stdmath.IsNaN(y)
}

// hypot returns sqrt(a*a + b*b) without intermediate overflow.
//
// Unlike stdmath.Hypot, an infinite side paired with NaN gives NaN.
func hypot(a, b float64) float64 {
	a, b = stdmath.Abs(a), stdmath.Abs(b)
	small, large := a, b
	if a > b {
		small, large = b, a
	}
	if small == 0 {
		return large
	}
	if stdmath.IsInf(large, 1) && !stdmath.IsNaN(small) {
		return stdmath.Inf(1)
	}
	r := small / large
	return large * stdmath.Sqrt(1+r*r)
}

// log returns the principal natural logarithm of z.
func log(z complex128) complex128 {
	re, im := real(z), imag(z)
	return complex(stdmath.Log(hypot(re, im)), stdmath.Atan2(im, re))
}

// sqrt returns the principal square root of z.
//
// On the real axis the result's zero component is always +0, whatever the
// sign of the input's zero imaginary part.
func sqrt(z complex128) complex128 {
	re, im := real(z), imag(z)
	if im == 0 {
		if re < 0 {
			return complex(0, stdmath.Sqrt(-re))
		}
		return complex(stdmath.Sqrt(re), 0)
	}

	rescale := false
	if stdmath.Abs(re) >= sqrtRescaleThreshold || stdmath.Abs(im) >= sqrtRescaleThreshold {
		if stdmath.IsInf(im, 0) && !stdmath.IsNaN(re) {
			return complex(stdmath.Inf(1), im)
		}
		re *= 0.25
		im *= 0.25
		rescale = true
	}

	var x, y float64
	if re >= 0 {
		x = stdmath.Sqrt((hypot(re, im) + re) * 0.5)
		y = im / (2 * x)
	} else {
		y = stdmath.Sqrt((hypot(re, im) - re) * 0.5)
		if im < 0 {
			y = -y
		}
		x = im / (2 * y)
	}

	if rescale {
		x *= 2
		y *= 2
	}
	return complex(x, y)
}

// quo returns n/m using Smith's algorithm.
//
// Division by a complex zero yields NaN components.
func quo(n, m complex128) complex128 {
	a, b := real(n), imag(n)
	c, d := real(m), imag(m)
	if stdmath.Abs(d) < stdmath.Abs(c) {
		doc := d / c
		den := c + d*doc
		return complex((a+b*doc)/den, (b-a*doc)/den)
	}
	cod := c / d
	den := d + c*cod
	return complex((b+a*cod)/den, (-a+b*cod)/den)
}

// inv returns 1/m. It is quo with a real numerator, which keeps the signed
// zeros that a full complex numerator would disturb.
func inv(m complex128) complex128 {
	c, d := real(m), imag(m)
	if stdmath.Abs(d) < stdmath.Abs(c) {
		doc := d / c
		den := c + d*doc
		return complex(1/den, -doc/den)
	}
	cod := c / d
	den := d + c*cod
	return complex(cod/den, -1/den)
}

// neg negates both components of z.
func neg(z complex128) complex128 {
	return complex(-real(z), -imag(z))
}

// half divides both components of z by two.
func half(z complex128) complex128 {
	return complex(real(z)*0.5, imag(z)*0.5)
}

// isZero reports whether both components of z are zero of either sign.
func isZero(z complex128) bool {
	return real(z) == 0 && imag(z) == 0
}

// isInf reports whether either component of z is infinite.
func isInf(z complex128) bool {
	return cmplx.IsInf(z)
}

// asinParts is the kernel shared by Asin and Acos, after Hull, Fairgrieve and
// Tang, "Implementing the complex arcsine and arccosine functions using
// exception handling" (ACM TOMS, 1997). x and y are |Re z| and |Im z|.
//
// The real part of the result is asin(b) when bPrime < 0 and atan(bPrime)
// otherwise. v is the magnitude of the imaginary part.
func asinParts(x, y float64) (b, bPrime, v float64) {
	if stdmath.IsNaN(x) || stdmath.IsNaN(y) {
		nan := stdmath.NaN()
		return nan, nan, nan
	}

	if x > asinOverflowThreshold || y > asinOverflowThreshold {
		b = -1
		bPrime = x / y

		small, big := y, x
		if x < y {
			small, big = x, y
		}
		ratio := small / big
		v = stdmath.Ln2 + stdmath.Log(big) + 0.5*stdmath.Log1p(ratio*ratio)
		return b, bPrime, v
	}

	r := hypot(x+1, y)
	s := hypot(x-1, y)

	a := (r + s) * 0.5
	b = x / a

	switch {
	case b <= 0.75:
		bPrime = -1
	case x <= 1:
		amx := (y*y/(r+(x+1)) + (s + (1 - x))) * 0.5
		bPrime = x / stdmath.Sqrt((a+x)*amx)
	default:
		// amx is about y*y here; keep y outside the square root so an
		// underflowing y*y still contributes.
		t := (1/(r+(x+1)) + 1/(s+(x-1))) * 0.5
		bPrime = x / y / stdmath.Sqrt((a+x)*t)
	}

	switch {
	case a >= 1.5:
		v = stdmath.Log(a + stdmath.Sqrt((a-1)*(a+1)))
	case x < 1:
		t := (1/(r+(x+1)) + 1/(s+(1-x))) * 0.5
		am1 := y * y * t
		v = stdmath.Log1p(am1 + y*stdmath.Sqrt(t*(a+1)))
	default:
		am1 := (y*y/(r+(x+1)) + (s + (x - 1))) * 0.5
		v = stdmath.Log1p(am1 + stdmath.Sqrt(am1*(a+1)))
	}
	return b, bPrime, v
}
