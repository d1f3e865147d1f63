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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure (output could not be written, etc.)
	ExitCommandError = 2 // Command error (unknown function, unparsable value, bad flag)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the envelope for JSON and YAML output.
type CLIResponse struct {
	Status string `json:"status" yaml:"status"`
	Data   any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// Success writes data in the configured format. For text output it calls
// text instead of serializing data.
func (f *OutputFormatter) Success(data any, text func(w io.Writer) error) error {
	resp := CLIResponse{Status: "ok", Data: data}
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(f.Writer)
}

// renderTable writes rows under header as a borderless, left-aligned table.
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// formatFloat renders x in its shortest exact form; NaN and infinities come
// out as "NaN", "+Inf" and "-Inf" so they survive JSON and YAML.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatComplex renders z as "a+bi" without the surrounding parentheses.
func formatComplex(z complex128) string {
	return strings.Trim(strconv.FormatComplex(z, 'g', -1, 128), "()")
}
