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

// Package catalog lists the function families provided by trig and ctrig so
// that tools can select them by name.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-trig/trig"
	"github.com/ajroetker/go-trig/trig/ctrig"
)

// ErrUnknownFunction is returned by Lookup for a name outside the catalog.
var ErrUnknownFunction = errors.New("unknown function")

// ErrUnknownGroup is returned by ParseGroup for an unrecognized group name.
var ErrUnknownGroup = errors.New("unknown group")

// Group classifies a function family.
type Group int

const (
	Circular Group = iota
	Hyperbolic
	InverseCircular
	InverseHyperbolic
)

var groupNames = map[Group]string{
	Circular:          "circular",
	Hyperbolic:        "hyperbolic",
	InverseCircular:   "inverse-circular",
	InverseHyperbolic: "inverse-hyperbolic",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// ParseGroup returns the group whose String form is name, ignoring case.
func ParseGroup(name string) (Group, error) {
	for g, s := range groupNames {
		if strings.EqualFold(s, name) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Function is one family with its real and complex entry points.
type Function struct {
	Name    string
	Group   Group
	Odd     bool // f(-z) == -f(z)
	Real    func(float64) float64
	Complex func(complex128) complex128
}

var functions = []Function{
	{"Sin", Circular, true, trig.Sin[float64], ctrig.Sin},
	{"Cos", Circular, false, trig.Cos[float64], ctrig.Cos},
	{"Tan", Circular, true, trig.Tan[float64], ctrig.Tan},
	{"Csc", Circular, true, trig.Csc[float64], ctrig.Csc},
	{"Sec", Circular, false, trig.Sec[float64], ctrig.Sec},
	{"Cot", Circular, true, trig.Cot[float64], ctrig.Cot},

	{"Sinh", Hyperbolic, true, trig.Sinh[float64], ctrig.Sinh},
	{"Cosh", Hyperbolic, false, trig.Cosh[float64], ctrig.Cosh},
	{"Tanh", Hyperbolic, true, trig.Tanh[float64], ctrig.Tanh},
	{"Csch", Hyperbolic, true, trig.Csch[float64], ctrig.Csch},
	{"Sech", Hyperbolic, false, trig.Sech[float64], ctrig.Sech},
	{"Coth", Hyperbolic, true, trig.Coth[float64], ctrig.Coth},

	{"Asin", InverseCircular, true, trig.Asin[float64], ctrig.Asin},
	{"Acos", InverseCircular, false, trig.Acos[float64], ctrig.Acos},
	{"Atan", InverseCircular, true, trig.Atan[float64], ctrig.Atan},
	{"Acsc", InverseCircular, true, trig.Acsc[float64], ctrig.Acsc},
	{"Asec", InverseCircular, false, trig.Asec[float64], ctrig.Asec},
	{"Acot", InverseCircular, false, trig.Acot[float64], ctrig.Acot},

	{"Asinh", InverseHyperbolic, true, trig.Asinh[float64], ctrig.Asinh},
	{"Acosh", InverseHyperbolic, false, trig.Acosh[float64], ctrig.Acosh},
	{"Atanh", InverseHyperbolic, true, trig.Atanh[float64], ctrig.Atanh},
	{"Acsch", InverseHyperbolic, true, trig.Acsch[float64], ctrig.Acsch},
	{"Asech", InverseHyperbolic, false, trig.Asech[float64], ctrig.Asech},
	{"Acoth", InverseHyperbolic, true, trig.Acoth[float64], ctrig.Acoth},
}

// All returns every function family in canonical order.
func All() []Function {
	return append([]Function(nil), functions...)
}

// Names returns the names of every function family in canonical order.
func Names() []string {
	return lo.Map(functions, func(f Function, _ int) string {
		return f.Name
	})
}

// ByGroup returns the families in g, in canonical order.
func ByGroup(g Group) []Function {
	return lo.Filter(functions, func(f Function, _ int) bool {
		return f.Group == g
	})
}

// Lookup finds a family by name, ignoring case.
func Lookup(name string) (Function, error) {
	f, ok := lo.Find(functions, func(f Function) bool {
		return strings.EqualFold(f.Name, name)
	})
	if !ok {
		return Function{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return f, nil
}
