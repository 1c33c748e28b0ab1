// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the termfolio TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: the latest notice (or who is logged in) on
// the left and key hints on the right.
type StatusBar struct {
	Notice    string // Transient message, e.g. "Session restarted."
	Username  string // Name given at login
	SessionID string // Current session id
	Width     int    // Available width
	help      help.Model
	theme     *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	s := &StatusBar{
		Width: 80,
		help:  help.New(),
		theme: theme,
	}
	s.applyTheme()
	return s
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
	s.help.Width = width / 2
}

// SetTheme swaps the theme after a palette or accent change.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
	s.applyTheme()
}

func (s *StatusBar) applyTheme() {
	s.help.Styles.ShortKey = s.theme.ShortcutKey
	s.help.Styles.ShortDesc = s.theme.ShortcutDesc
	s.help.Styles.ShortSeparator = s.theme.ShortcutDesc
}

// View renders the status bar with the short help of keys.
func (s *StatusBar) View(keys help.KeyMap) string {
	right := ""
	if keys != nil {
		right = s.help.View(keys)
	}

	room := s.Width - lipgloss.Width(right) - 1
	if room < s.Width/2 {
		// Not enough room; the left side wins
		right = ""
		room = s.Width
	}

	left := s.renderLeft(room)
	if right == "" {
		return left
	}
	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderLeft renders the notice, or the session identity when idle,
// truncated to width cells.
func (s *StatusBar) renderLeft(width int) string {
	if s.Notice != "" {
		return s.theme.StatusNotice.Render(util.TruncateWidth(s.Notice, width))
	}

	var parts []string
	if s.Username != "" {
		parts = append(parts, s.Username)
	}
	if s.SessionID != "" {
		parts = append(parts, "session "+shortID(s.SessionID))
	}
	return s.theme.StatusBar.Render(util.TruncateWidth(strings.Join(parts, " | "), width))
}

// shortID returns the first block of a uuid.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
