// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for the termfolio command line.
//
// Commands return errors and let main decide how to display them.

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a bad config file or command table
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError is a bad command-line argument.
type UsageError struct {
	Arg    string // Argument as typed
	Reason string // Why it was rejected
}

func (e *UsageError) Error() string {
	if e.Arg == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Arg)
}

// IsUsageError reports whether err is a command-line usage error.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// =============================================================================
// DISPLAY
// =============================================================================

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if IsUsageError(err) {
		return ExitUsageError
	}

	var validateErrs config.ValidateErrors
	var validateErr config.ValidationError
	var tableErr *commands.TableError
	switch {
	case errors.As(err, &validateErrs),
		errors.As(err, &validateErr),
		errors.As(err, &tableErr),
		errors.Is(err, fs.ErrNotExist):
		return ExitConfigError
	}

	return ExitGeneralError
}

// DisplayError writes err to w in the "Error: ..." form.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if IsUsageError(err) {
		fmt.Fprintln(w, "Run 'termfolio help' for usage.")
	}
}
