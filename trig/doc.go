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

// Package trig provides the circular and hyperbolic functions and their
// inverses over real scalars, including the reciprocal families (csc, sec,
// cot and friends) that the standard math package omits.
//
// Every function is generic over float32 and float64. Evaluation always
// happens in float64 and the result is converted back to the argument type.
//
// # Functions
//
// Circular:
//   - Sin, Cos, Tan
//   - Csc, Sec, Cot
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh
//   - Csch, Sech, Coth
//
// Inverse circular:
//   - Asin, Acos, Atan
//   - Acsc, Asec, Acot
//
// Inverse hyperbolic:
//   - Asinh, Acosh, Atanh
//   - Acsch, Asech, Acoth
//
// # Poles
//
// Functions never panic. An argument that lands exactly on a pole yields NaN,
// e.g. Cot(0) and Csc(0). The comparison is against exact zero: an argument
// merely close to a pole produces a large finite result.
//
// The complex-domain counterparts live in package
// github.com/ajroetker/go-trig/trig/ctrig and agree with this package on the
// real axis wherever the real function is defined.
package trig
