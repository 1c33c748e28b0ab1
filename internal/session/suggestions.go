// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one visitor's terminal session.
package session

import (
	"github.com/jeranaias/termfolio/internal/commands"
)

// =============================================================================
// SUGGESTIONS
// =============================================================================

// Suggestions is the autocomplete list shown under the input.
type Suggestions struct {
	items    []commands.Completion
	selected int
}

// Set replaces the list and moves the selection to the first item.
func (s *Suggestions) Set(items []commands.Completion) {
	s.items = items
	s.selected = 0
}

// Hide empties the list.
func (s *Suggestions) Hide() {
	s.items = nil
	s.selected = 0
}

// Visible reports whether there is anything to show.
func (s *Suggestions) Visible() bool {
	return len(s.items) > 0
}

// Items returns the current suggestions.
func (s *Suggestions) Items() []commands.Completion {
	return s.items
}

// Index returns the selected position.
func (s *Suggestions) Index() int {
	return s.selected
}

// Selected returns the highlighted suggestion.
func (s *Suggestions) Selected() (commands.Completion, bool) {
	if s.selected < 0 || s.selected >= len(s.items) {
		return commands.Completion{}, false
	}
	return s.items[s.selected], true
}

// Prev moves the selection up, stopping at the first item.
func (s *Suggestions) Prev() {
	if s.selected > 0 {
		s.selected--
	}
}

// Next moves the selection down, stopping at the last item.
func (s *Suggestions) Next() {
	if s.selected < len(s.items)-1 {
		s.selected++
	}
}
