// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the termfolio TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// LOGIN BOX COMPONENT
// =============================================================================

// LoginTitle is the heading of the login box.
const LoginTitle = "Enter your username"

// LoginBox is the centered name prompt shown before the terminal.
type LoginBox struct {
	Width  int
	Height int
	theme  *styles.Theme
}

// NewLoginBox creates a login box.
func NewLoginBox(theme *styles.Theme) *LoginBox {
	return &LoginBox{
		Width:  80,
		Height: 24,
		theme:  theme,
	}
}

// SetSize updates the area the box is centered in.
func (l *LoginBox) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// View renders the box around the given input view.
func (l *LoginBox) View(inputView string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		l.theme.LoginTitle.Render(LoginTitle),
		"",
		inputView,
		"",
		l.theme.LoginHint.Render("Press Enter to continue"),
	)

	box := l.theme.LoginBox.Render(body)
	if l.Width <= 0 || l.Height <= 0 {
		return box
	}
	return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, box)
}
