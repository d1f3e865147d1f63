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

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-trig/internal/catalog"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	From  float64
	To    float64
	Steps int
	Imag  float64
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table <function>",
		Short: "Tabulate a function over evenly spaced points",
		Long: `Tabulate a function over evenly spaced points from --from to --to.

Without --imag the real-scalar function is used. With --imag the points
lie on the horizontal line Im z = imag and the complex function is used.

Example:
  trigcalc table acot --from -2 --to 2 --steps 5
  trigcalc table tanh --from 0 --to 3 --steps 4 --imag 0.5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, args[0], cmd.Flags().Changed("imag"), cmd)
		},
	}

	addGridFlags(cmd.Flags(), opts)

	return cmd
}

func addGridFlags(fs *pflag.FlagSet, opts *TableOptions) {
	fs.Float64Var(&opts.From, "from", -1, "first point")
	fs.Float64Var(&opts.To, "to", 1, "last point")
	fs.IntVarP(&opts.Steps, "steps", "n", 5, "number of points (at least 2)")
	fs.Float64Var(&opts.Imag, "imag", 0, "imaginary part of every point; selects complex evaluation")
}

func runTable(opts *TableOptions, name string, isComplex bool, cmd *cobra.Command) error {
	f, err := catalog.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "table", err)
	}
	if opts.Steps < 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--steps must be at least 2, got %d", opts.Steps))
	}

	results := lo.Map(gridPoints(opts.From, opts.To, opts.Steps), func(x float64, _ int) Result {
		if isComplex {
			return complexResult(f, complex(x, opts.Imag))
		}
		return realResult(f, x)
	})
	opts.Logger().Debug("tabulated", "function", f.Name, "from", opts.From, "to", opts.To, "steps", opts.Steps, "complex", isComplex)

	return opts.formatter(cmd).Success(results, func(w io.Writer) error {
		arg := "x"
		if isComplex {
			arg = "z"
		}
		rows := lo.Map(results, func(r Result, _ int) []string {
			return []string{r.Input, r.value}
		})
		renderTable(w, []string{arg, fmt.Sprintf("%s(%s)", f.Name, arg)}, rows)
		return nil
	})
}

// gridPoints returns n evenly spaced points from a to b inclusive.
func gridPoints(a, b float64, n int) []float64 {
	step := (b - a) / float64(n-1)
	points := make([]float64, n)
	for i := range points {
		points[i] = a + float64(i)*step
	}
	points[n-1] = b
	return points
}
