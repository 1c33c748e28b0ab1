// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the termfolio TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// COMPLETION POPUP COMPONENT
// =============================================================================

// nameColumn is the width reserved for command names.
const nameColumn = 12

// CompletionPopup renders the suggestion list under the input. It holds no
// selection state of its own; the session owns that.
type CompletionPopup struct {
	completions []commands.Completion
	selected    int
	maxVisible  int
	width       int
	theme       *styles.Theme
}

// NewCompletionPopup creates a new completion popup.
func NewCompletionPopup(theme *styles.Theme) *CompletionPopup {
	return &CompletionPopup{
		maxVisible: 6,
		width:      50,
		theme:      theme,
	}
}

// SetCompletions sets the completions to display and the highlighted index.
func (c *CompletionPopup) SetCompletions(completions []commands.Completion, selected int) {
	c.completions = completions
	c.selected = selected
}

// HasCompletions returns true if there are completions to show.
func (c *CompletionPopup) HasCompletions() bool {
	return len(c.completions) > 0
}

// SetWidth sets the popup width.
func (c *CompletionPopup) SetWidth(width int) {
	c.width = width
}

// SetMaxVisible sets the maximum number of visible completions.
func (c *CompletionPopup) SetMaxVisible(max int) {
	if max > 0 {
		c.maxVisible = max
	}
}

// visibleRange returns the window of items to draw, keeping the selection
// in view.
func (c *CompletionPopup) visibleRange() (int, int) {
	n := len(c.completions)
	if n <= c.maxVisible {
		return 0, n
	}

	start := c.selected - c.maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + c.maxVisible
	if end > n {
		end = n
		start = end - c.maxVisible
	}
	return start, end
}

// View renders the completion popup.
func (c *CompletionPopup) View() string {
	if len(c.completions) == 0 {
		return ""
	}

	start, end := c.visibleRange()
	items := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		items = append(items, c.renderItem(c.completions[i], i == c.selected))
	}

	if hidden := len(c.completions) - (end - start); hidden > 0 {
		items = append(items, c.theme.CompletionCategory.Render(
			"  +"+strconv.Itoa(hidden)+" more"))
	}

	return c.theme.CompletionBox.
		Width(c.width).
		MaxWidth(c.width + 2).
		Render(strings.Join(items, "\n"))
}

// renderItem renders a single completion row.
func (c *CompletionPopup) renderItem(comp commands.Completion, isSelected bool) string {
	indicator := "  "
	if isSelected {
		indicator = "> "
	}

	descWidth := c.width - nameColumn - len(indicator) - 3
	name := util.PadWidth(comp.Value, nameColumn)
	desc := util.TruncateWidth(comp.Description, descWidth)

	if isSelected {
		return c.theme.CompletionSelected.Render(indicator+name) +
			" " + c.theme.CompletionDesc.Render(desc)
	}
	return c.theme.CompletionItem.Render(indicator+name) +
		" " + c.theme.CompletionDesc.Render(desc)
}

// ViewCompact renders a single-line hint for narrow terminals.
func (c *CompletionPopup) ViewCompact() string {
	if len(c.completions) == 0 {
		return ""
	}

	names := make([]string, 0, len(c.completions))
	for i, comp := range c.completions {
		if i == c.selected {
			names = append(names, c.theme.CompletionSelected.Render(comp.Value))
			continue
		}
		names = append(names, c.theme.CompletionItem.Render(comp.Value))
	}

	line := strings.Join(names, " ")
	return lipgloss.NewStyle().MaxWidth(c.width).Render(line)
}
