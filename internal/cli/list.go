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
	"io"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-trig/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Group string
}

// Entry describes one function family in list output.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Group string `json:"group" yaml:"group"`
	Odd   bool   `json:"odd" yaml:"odd"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Long: `List the available functions.

Groups: circular, hyperbolic, inverse-circular, inverse-hyperbolic.

Example:
  trigcalc list --group hyperbolic`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "only list functions in this group")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	fns := catalog.All()
	if opts.Group != "" {
		g, err := catalog.ParseGroup(opts.Group)
		if err != nil {
			return WrapExitError(ExitCommandError, "list", err)
		}
		fns = catalog.ByGroup(g)
	}

	entries := lo.Map(fns, func(f catalog.Function, _ int) Entry {
		return Entry{Name: f.Name, Group: f.Group.String(), Odd: f.Odd}
	})
	opts.Logger().Debug("listing functions", "group", opts.Group, "count", len(entries))

	return opts.formatter(cmd).Success(entries, func(w io.Writer) error {
		rows := lo.Map(entries, func(e Entry, _ int) []string {
			return []string{e.Name, e.Group, strconv.FormatBool(e.Odd)}
		})
		renderTable(w, []string{"NAME", "GROUP", "ODD"}, rows)
		return nil
	})
}
