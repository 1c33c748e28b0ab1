// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
package commands

import (
	"strings"
)

// =============================================================================
// COMPLETION TYPE
// =============================================================================

// Completion represents a completion suggestion.
type Completion struct {
	// Value to insert
	Value string

	// Description shown alongside
	Description string

	// Category of the command
	Category string
}

// Insert returns the text that replaces the input when the completion is
// accepted: the command name and a trailing separator.
func (c Completion) Insert() string {
	return c.Value + " "
}

// =============================================================================
// COMPLETER
// =============================================================================

// Completer filters the command table for autocomplete.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a new completer with the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{
		registry: registry,
	}
}

// Complete returns every table entry whose name contains the trimmed input,
// ignoring case, in table order. Blank input returns nil.
func (c *Completer) Complete(input string) []Completion {
	needle := Fold(strings.TrimSpace(input))
	if needle == "" || c.registry == nil {
		return nil
	}

	var completions []Completion
	for _, entry := range c.registry.All() {
		if !strings.Contains(Fold(entry.Name), needle) {
			continue
		}
		completions = append(completions, Completion{
			Value:       entry.Name,
			Description: entry.Description,
			Category:    entry.Category,
		})
	}

	return completions
}

// CompleteLine adapts Complete for line editors that replace the whole line.
func (c *Completer) CompleteLine(line string) []string {
	completions := c.Complete(line)
	if len(completions) == 0 {
		return nil
	}

	out := make([]string, len(completions))
	for i, comp := range completions {
		out[i] = comp.Insert()
	}
	return out
}
