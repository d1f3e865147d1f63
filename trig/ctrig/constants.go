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

// =============================================================================
// Constants for complex elementary functions
// =============================================================================

const (
	halfPi = stdmath.Pi / 2

	// Tan switches to the tanh form once |Im z| exceeds this.
	tanLargeImag = 4.0
)

var (
	// sqrt rescales its operands by 1/4 at or above this magnitude so that
	// hypot(re, im) + |re| cannot overflow.
	sqrtRescaleThreshold = stdmath.MaxFloat64 / (stdmath.Sqrt2 + 1)

	// asinParts switches to its asymptotic form above this.
	asinOverflowThreshold = stdmath.Sqrt(stdmath.MaxFloat64) / 2

	nanComplex = complex(stdmath.NaN(), stdmath.NaN())
	infComplex = complex(stdmath.Inf(1), 0)
)
