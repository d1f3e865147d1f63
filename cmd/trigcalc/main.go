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

// Command trigcalc evaluates circular and hyperbolic functions and their
// inverses from the command line.
//
// Usage:
//
//	trigcalc eval acoth 2 2+3i
//	trigcalc eval cot --complex 0 1 --format json
//	trigcalc list --group inverse-hyperbolic
//	trigcalc table acot --from -2 --to 2 --steps 5
//
// Exit status is 0 on success, 2 for an unknown function, an unparsable value
// or a bad flag, and 1 for any other failure.
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/go-trig/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
