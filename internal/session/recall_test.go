// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
)

func TestRecallEmpty(t *testing.T) {
	r := NewRecall()

	if _, ok := r.Prev(); ok {
		t.Error("Prev() on empty buffer returned ok")
	}
	if _, ok := r.Next(); ok {
		t.Error("Next() on empty buffer returned ok")
	}
	if _, browsing := r.Cursor(); browsing {
		t.Error("empty buffer is browsing")
	}
}

func TestRecallPushIgnoresEmpty(t *testing.T) {
	r := NewRecall()
	r.Push("")
	r.Push("about")
	r.Push("about")

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates kept, empty dropped)", r.Len())
	}
}

func TestRecallStateMachine(t *testing.T) {
	r := NewRecall()
	for _, cmd := range []string{"one", "two", "three"} {
		r.Push(cmd)
	}

	steps := []struct {
		action     string
		want       string
		wantOK     bool
		wantCursor int // -1 for idle
	}{
		{"next", "", false, -1}, // idle next is a no-op
		{"prev", "three", true, 2},
		{"prev", "two", true, 1},
		{"prev", "one", true, 0},
		{"prev", "one", true, 0}, // clamped at the oldest
		{"next", "two", true, 1},
		{"next", "three", true, 2},
		{"next", "", true, -1}, // past the newest: idle, clear input
		{"next", "", false, -1},
	}

	for i, step := range steps {
		var got string
		var ok bool
		if step.action == "prev" {
			got, ok = r.Prev()
		} else {
			got, ok = r.Next()
		}

		if got != step.want || ok != step.wantOK {
			t.Errorf("step %d %s = (%q, %v), want (%q, %v)", i, step.action, got, ok, step.want, step.wantOK)
		}

		cursor, browsing := r.Cursor()
		if step.wantCursor == -1 {
			if browsing {
				t.Errorf("step %d: browsing at %d, want idle", i, cursor)
			}
		} else if !browsing || cursor != step.wantCursor {
			t.Errorf("step %d: cursor = (%d, %v), want %d", i, cursor, browsing, step.wantCursor)
		}
	}
}

func TestRecallPushResetsCursor(t *testing.T) {
	r := NewRecall()
	r.Push("about")
	r.Push("skills")
	r.Prev()

	r.Push("contact")

	if _, browsing := r.Cursor(); browsing {
		t.Error("Push() left the buffer browsing")
	}
	if got, _ := r.Prev(); got != "contact" {
		t.Errorf("Prev() after push = %q, want contact", got)
	}
}
