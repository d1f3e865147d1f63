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

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-trig/internal/catalog"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Complex bool
}

// Result is one evaluated point. Numbers are carried as strings so that NaN
// and infinities round-trip through every output format.
type Result struct {
	Function string `json:"function" yaml:"function"`
	Domain   string `json:"domain" yaml:"domain"` // "real" | "complex"
	Input    string `json:"input" yaml:"input"`
	Real     string `json:"real" yaml:"real"`
	Imag     string `json:"imag,omitempty" yaml:"imag,omitempty"`

	value string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <function> <value>...",
		Short: "Evaluate a function at one or more points",
		Long: `Evaluate a function at one or more points.

Values that parse as real numbers use the real-scalar function unless
--complex is given. Anything else is parsed as a complex number such as
2+3i, -1.5i or (0.5-2i). Put negative values after "--".

Example:
  trigcalc eval acoth 2 2+3i
  trigcalc eval cot --complex 0 1
  trigcalc eval asech -- -0.5`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Complex, "complex", "c", false, "evaluate real-valued inputs over the complex plane")

	return cmd
}

func runEval(opts *EvalOptions, name string, values []string, cmd *cobra.Command) error {
	f, err := catalog.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "eval", err)
	}

	results := make([]Result, 0, len(values))
	for _, v := range values {
		r, err := evaluate(f, v, opts.Complex)
		if err != nil {
			return err
		}
		opts.Logger().Debug("evaluated", "function", f.Name, "domain", r.Domain, "input", r.Input, "result", r.value)
		results = append(results, r)
	}

	return opts.formatter(cmd).Success(results, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s(%s) = %s\n", r.Function, r.Input, r.value); err != nil {
				return err
			}
		}
		return nil
	})
}

// evaluate parses arg and applies f to it.
func evaluate(f catalog.Function, arg string, forceComplex bool) (Result, error) {
	if !forceComplex {
		if x, err := strconv.ParseFloat(arg, 64); err == nil {
			return realResult(f, x), nil
		}
	}
	z, err := strconv.ParseComplex(arg, 128)
	if err != nil {
		return Result{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %q", arg), err)
	}
	return complexResult(f, z), nil
}

func realResult(f catalog.Function, x float64) Result {
	y := f.Real(x)
	return Result{
		Function: f.Name,
		Domain:   "real",
		Input:    formatFloat(x),
		Real:     formatFloat(y),
		value:    formatFloat(y),
	}
}

func complexResult(f catalog.Function, z complex128) Result {
	w := f.Complex(z)
	return Result{
		Function: f.Name,
		Domain:   "complex",
		Input:    formatComplex(z),
		Real:     formatFloat(real(w)),
		Imag:     formatFloat(imag(w)),
		value:    formatComplex(w),
	}
}
