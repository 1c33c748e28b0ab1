// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides the interactive terminal view for termfolio.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// LAYOUT
// =============================================================================

const (
	// defaultWidth is used before the first WindowSizeMsg arrives.
	defaultWidth = 80

	// Fixed rows below the scrollback
	inputHeight  = 1
	statusHeight = 1
)

// contentWidth is the width inside the app padding.
func (m Model) contentWidth() int {
	if !m.ready {
		return defaultWidth
	}
	return max(m.width-2, 10)
}

// viewportHeight is what is left for the scrollback once the input, the
// popup (or help) and the status bar are placed.
func (m Model) viewportHeight() int {
	if !m.ready {
		return 20
	}
	h := m.height - inputHeight - statusHeight - lipgloss.Height(m.overlayView())
	if m.overlayView() == "" {
		h++ // Height("") is 1
	}
	return max(h, 1)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.session.LoginOpen() {
		return m.loginBox.View(m.login.View())
	}

	sections := []string{
		m.viewport.View(),
		m.input.View(),
	}
	if overlay := m.overlayView(); overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, m.status.View(m.keys))

	return m.theme.App.
		Width(m.width).
		Height(m.height).
		Render(strings.Join(sections, "\n"))
}

// overlayView renders whatever sits between the input and the status bar:
// the full key help when toggled, otherwise the suggestion popup.
func (m Model) overlayView() string {
	if m.showFullHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	if !m.popup.HasCompletions() {
		return ""
	}
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.popup.ViewCompact()
	}
	return m.popup.View()
}
