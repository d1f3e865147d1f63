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

// Package ctrig provides the circular and hyperbolic functions and their
// inverses over complex128 arguments.
//
// Unlike math/cmplx, the package covers the reciprocal families (Csc, Sec,
// Cot, Csch, Sech, Coth and their inverses) and follows one consistent policy
// for NaN, infinities and signed zero:
//
//   - No function panics. Domain errors surface as NaN components.
//   - A reciprocal whose base value is infinite collapses to exact zero
//     instead of producing NaN from 1/Inf componentwise.
//   - Odd functions reduce negative arguments by the sign bit of the real
//     part, so -0 and +0 take distinct, fixed branches and f(-z) == -f(z)
//     holds bit for bit.
//   - Division by a complex zero yields NaN components (no C99-style infinity
//     recovery). Functions with a pole at zero override that case explicitly.
//
// # Functions
//
// Circular: Sin, Cos, Tan, Csc, Sec, Cot.
//
// Hyperbolic: Sinh, Cosh, Tanh, Csch, Sech, Coth. These rotate the argument a
// quarter turn, evaluate the circular function, and rotate back.
//
// Inverse circular: Asin, Acos, Atan, Acsc, Asec, Acot.
//
// Inverse hyperbolic: Asinh, Acosh, Atanh, Acsch, Asech, Acoth.
//
// Every function is pure and safe for concurrent use.
package ctrig
