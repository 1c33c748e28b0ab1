// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one visitor's terminal session.
package session

// =============================================================================
// RECALL BUFFER
// =============================================================================

// idle is the cursor value when not browsing.
const idle = -1

// Recall is the history of submitted commands with shell-style navigation.
// The cursor is either idle or a valid index into entries.
type Recall struct {
	entries []string
	cursor  int
}

// NewRecall creates an empty recall buffer.
func NewRecall() *Recall {
	return &Recall{cursor: idle}
}

// Push records a submitted command and stops browsing.
// Empty commands are ignored; duplicates are kept.
func (r *Recall) Push(cmd string) {
	r.cursor = idle
	if cmd == "" {
		return
	}
	r.entries = append(r.entries, cmd)
}

// Prev moves to the previous (older) entry and returns it.
// Returns ("", false) when the buffer is empty.
func (r *Recall) Prev() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.cursor == idle {
		r.cursor = len(r.entries) - 1
	} else if r.cursor > 0 {
		r.cursor--
	}
	return r.entries[r.cursor], true
}

// Next moves to the next (newer) entry.
// When idle it does nothing and returns ("", false). Moving past the newest
// entry returns to idle and yields ("", true) so the caller clears the input.
func (r *Recall) Next() (string, bool) {
	if r.cursor == idle {
		return "", false
	}
	r.cursor++
	if r.cursor >= len(r.entries) {
		r.cursor = idle
		return "", true
	}
	return r.entries[r.cursor], true
}

// Reset stops browsing without touching the entries.
func (r *Recall) Reset() {
	r.cursor = idle
}

// Cursor returns the browsing index, or false when idle.
func (r *Recall) Cursor() (int, bool) {
	if r.cursor == idle {
		return 0, false
	}
	return r.cursor, true
}

// Len returns the number of recorded commands.
func (r *Recall) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the recorded commands, oldest first.
func (r *Recall) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
