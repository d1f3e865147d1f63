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

// IsNegative reports whether the sign bit of x is set.
//
// Unlike x < 0 this distinguishes -0 from +0, and it reports true for a NaN
// whose sign bit is set.
func IsNegative(x float64) bool {
	return stdmath.Float64bits(x)>>63 != 0
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians[T constraints.Float](deg T) T {
	return T(float64(deg) * degToRad)
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees[T constraints.Float](rad T) T {
	return T(float64(rad) * radToDeg)
}

const (
	degToRad = stdmath.Pi / 180
	radToDeg = 180 / stdmath.Pi
)
