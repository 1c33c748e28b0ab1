// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
package commands

import (
	"strings"
)

// Fixed user-facing strings.
const (
	HelpHeader       = "Available commands:"
	ColorUsage       = "Usage: color [any CSS color]"
	NotFoundPrefix   = "Command not found: "
	RestartedMessage = "Session restarted."
	ExitingMessage   = "Exiting..."
	ThemeMessage     = "Theme toggled."

	// DefaultGoodbye replaces the scrollback after quit.
	DefaultGoodbye = "Goodbye! You can close the tab or refresh to start again."
)

// builtins are handled by the interpreter itself and cannot be given a
// canned response.
var builtins = map[string]bool{
	"help":    true,
	"color":   true,
	"clear":   true,
	"cls":     true,
	"restart": true,
	"quit":    true,
	"theme":   true,
}

// IsBuiltin reports whether verb is handled by the interpreter directly.
func IsBuiltin(verb string) bool {
	return builtins[Fold(verb)]
}

// DefaultResponses returns the canned portfolio responses.
func DefaultResponses() map[string]string {
	return map[string]string{
		"whoami":     "I'm Udoka, a Software Engineer!",
		"projects":   "- Portfolio Terminal\n- E-commerce App\n- Blog Platform",
		"experience": "3+ years in web development, React, Next.js, Node.js, and more.",
		"about":      "This is a portfolio terminal for Udoka. Type 'help' to see what you can do!",
		"contact":    "Email: udoka@example.com\nPhone: +1234567890",
		"social":     "Twitter: @udoka\nGitHub: github.com/udoka",
		"skills":     "JavaScript, TypeScript, React, Next.js, Node.js, CSS, HTML, UI/UX",
	}
}

// NotFoundMessage formats the error line for an unknown command.
func NotFoundMessage(input string) string {
	return NotFoundPrefix + input
}

// IsNotFound reports whether a scrollback line is a not-found error.
func IsNotFound(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, NotFoundPrefix) && len(line) > len(NotFoundPrefix)
}

// =============================================================================
// RESULT
// =============================================================================

// ScrollbackOp says what happens to the scrollback after a command.
type ScrollbackOp int

const (
	ScrollbackKeep    ScrollbackOp = iota // append echo and output only
	ScrollbackClear                       // empty it
	ScrollbackReset                       // back to the welcome lines
	ScrollbackReplace                     // replace with Patch.Lines
)

// String returns the op name, used in logs.
func (op ScrollbackOp) String() string {
	switch op {
	case ScrollbackKeep:
		return "keep"
	case ScrollbackClear:
		return "clear"
	case ScrollbackReset:
		return "reset"
	case ScrollbackReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Patch is the state change a command asks the session to apply.
type Patch struct {
	Scrollback ScrollbackOp
	Lines      []string // for ScrollbackReplace

	// SetAccent requests Accent as the new accent color.
	SetAccent bool
	Accent    string

	ResetAccent bool
	ToggleTheme bool
	ClearInput  bool

	// Relogin reopens the login prompt.
	Relogin bool
}

// Result is what the interpreter returns for one input line.
type Result struct {
	// Input is the trimmed line as typed
	Input string

	// Verb is the folded verb that was matched (or not)
	Verb string

	// Output lines to append after the echo
	Output []string

	// Patch to apply to the session
	Patch Patch

	// NoEcho suppresses the "{prompt}{input}" line
	NoEcho bool

	// NotFound is set when no command matched
	NotFound bool
}

// =============================================================================
// INTERPRETER
// =============================================================================

// Interpreter maps input lines to results. It holds no mutable state and is
// safe to share.
type Interpreter struct {
	registry  *Registry
	responses map[string]string // folded verb -> canned text
	goodbye   string
}

// NewInterpreter creates an interpreter over the given table.
// Every table entry must be a builtin or have a canned response, so that no
// listed command ever answers "Command not found".
func NewInterpreter(registry *Registry, responses map[string]string, goodbye string) (*Interpreter, error) {
	in := &Interpreter{
		registry:  registry,
		responses: make(map[string]string, len(responses)),
		goodbye:   goodbye,
	}
	if in.goodbye == "" {
		in.goodbye = DefaultGoodbye
	}

	for name, text := range responses {
		key := Fold(strings.TrimSpace(name))
		if key == "" {
			return nil, &TableError{Index: -1, Reason: "response with empty name"}
		}
		if IsBuiltin(key) {
			return nil, &TableError{Index: -1, Name: name, Reason: "builtin command cannot have a canned response"}
		}
		in.responses[key] = text
	}

	for i, entry := range registry.All() {
		key := Fold(entry.Name)
		if IsBuiltin(key) {
			continue
		}
		if _, ok := in.responses[key]; !ok {
			return nil, &TableError{Index: i, Name: entry.Name, Reason: "no response defined"}
		}
	}

	return in, nil
}

// Registry returns the command table the interpreter serves.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Execute interprets one input line. It is total: every string yields a
// Result. Blank input yields an empty result with NoEcho set.
func (in *Interpreter) Execute(input string) Result {
	p := Parse(input)

	result := Result{
		Input: p.RawInput,
		Verb:  p.Verb,
	}

	if p.RawInput == "" {
		result.NoEcho = true
		return result
	}

	switch p.Verb {
	case "help":
		result.Output = []string{in.helpText()}

	case "color":
		if !p.HasArgs() {
			result.Output = []string{ColorUsage}
			return result
		}
		result.Patch.SetAccent = true
		result.Patch.Accent = p.Args
		result.Output = []string{"Changed color to " + p.Args}

	case "clear", "cls":
		result.NoEcho = true
		result.Patch.Scrollback = ScrollbackClear
		result.Patch.ClearInput = true

	case "restart":
		result.Patch.Scrollback = ScrollbackReset
		result.Patch.ResetAccent = true
		result.Patch.ClearInput = true
		result.Patch.Relogin = true
		result.Output = []string{RestartedMessage}

	case "quit":
		result.Patch.Scrollback = ScrollbackReplace
		result.Patch.Lines = []string{in.goodbye}
		result.Patch.ClearInput = true
		result.Output = []string{ExitingMessage}

	case "theme":
		result.Patch.ToggleTheme = true
		result.Output = []string{ThemeMessage}

	default:
		if text, ok := in.responses[p.Verb]; ok {
			result.Output = []string{text}
			return result
		}
		result.NotFound = true
		result.Output = []string{NotFoundMessage(p.RawInput)}
	}

	return result
}

// helpText lists every table entry under the help header.
func (in *Interpreter) helpText() string {
	specs := in.registry.All()
	lines := make([]string, 0, len(specs)+1)
	lines = append(lines, HelpHeader)
	for _, entry := range specs {
		lines = append(lines, "- "+entry.Name+": "+entry.Description)
	}
	return strings.Join(lines, "\n")
}
