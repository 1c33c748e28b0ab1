// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for choosing between the full-screen
// terminal and line mode.

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Interactive reports whether the full-screen terminal can run: both stdin
// and stdout must be terminals.
func Interactive() bool {
	return IsTTY() && IsStdoutTTY()
}

// UsePlain decides between line mode and the full-screen terminal.
func UsePlain(forcePlain bool) bool {
	return forcePlain || !Interactive()
}

// =============================================================================
// OUTPUT
// =============================================================================

// NewOutput wraps w for line-mode printing. The color profile follows the
// environment (NO_COLOR, CLICOLOR_FORCE) and whether w is a terminal.
func NewOutput(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return termenv.NewOutput(w, opts...)
}
