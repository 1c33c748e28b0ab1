// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// PARSE RESULT
// =============================================================================

// ParseResult contains the result of splitting an input line.
type ParseResult struct {
	// Verb is the case-folded first token, used for matching
	Verb string

	// RawVerb is the first token as typed
	RawVerb string

	// Args is everything after the first whitespace run, trimmed
	Args string

	// RawInput is the trimmed input line
	RawInput string
}

// HasArgs reports whether anything followed the verb.
func (p ParseResult) HasArgs() bool {
	return p.Args != ""
}

// =============================================================================
// PARSER
// =============================================================================

// Parse splits input on its first whitespace run into verb and arguments.
// Leading and trailing whitespace is ignored.
func Parse(input string) ParseResult {
	input = strings.TrimSpace(input)

	result := ParseResult{
		RawInput: input,
	}

	if input == "" {
		return result
	}

	end := strings.IndexFunc(input, unicode.IsSpace)
	if end == -1 {
		result.RawVerb = input
	} else {
		result.RawVerb = input[:end]
		result.Args = strings.TrimSpace(input[end:])
	}
	result.Verb = Fold(result.RawVerb)

	return result
}
