// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the termfolio TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// Styles are rebuilt whenever the theme or the accent color changes.
type Theme struct {
	// Current mode
	IsDark  bool
	Palette Palette

	// Accent is the parsed accent color; NoColor when the value was invalid
	Accent lipgloss.TerminalColor

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App lipgloss.Style

	// ==========================================================================
	// SCROLLBACK STYLES
	// ==========================================================================

	// Line is a normal scrollback line, in the accent color
	Line lipgloss.Style
	// ErrorLine is a "Command not found" line
	ErrorLine lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputCursor      lipgloss.Style

	// ==========================================================================
	// COMPLETION POPUP STYLES
	// ==========================================================================

	CompletionBox      lipgloss.Style
	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionDesc     lipgloss.Style
	CompletionCategory lipgloss.Style

	// ==========================================================================
	// LOGIN BOX STYLES
	// ==========================================================================

	LoginBox   lipgloss.Style
	LoginTitle lipgloss.Style
	LoginHint  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusNotice lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme with all styles configured.
func NewTheme(dark bool, accent lipgloss.TerminalColor) *Theme {
	if accent == nil {
		accent = lipgloss.NoColor{}
	}

	t := &Theme{
		IsDark:  dark,
		Palette: PaletteFor(dark),
		Accent:  accent,
	}

	t.initStyles()
	return t
}

// SetDark switches between the dark and light palettes.
func (t *Theme) SetDark(dark bool) {
	if t.IsDark == dark {
		return
	}
	t.IsDark = dark
	t.Palette = PaletteFor(dark)
	t.initStyles()
}

// SetAccent replaces the accent color.
func (t *Theme) SetAccent(accent lipgloss.TerminalColor) {
	if accent == nil {
		accent = lipgloss.NoColor{}
	}
	t.Accent = accent
	t.initStyles()
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	p := t.Palette

	t.App = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Background).
		Padding(0, 1)

	// Scrollback
	t.Line = lipgloss.NewStyle().Foreground(t.Accent)
	t.ErrorLine = lipgloss.NewStyle().Foreground(p.Error)

	// Input
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	t.InputText = lipgloss.NewStyle().Foreground(t.Accent)
	t.InputPlaceholder = lipgloss.NewStyle().Foreground(p.Muted)
	t.InputCursor = lipgloss.NewStyle().Foreground(t.Accent)

	// Completion popup
	t.CompletionBox = lipgloss.NewStyle().
		Background(p.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	t.CompletionItem = lipgloss.NewStyle().Foreground(p.Text)
	t.CompletionSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(p.Selection).
		Bold(true)
	t.CompletionDesc = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
	t.CompletionCategory = lipgloss.NewStyle().Foreground(p.Muted)

	// Login box
	t.LoginBox = lipgloss.NewStyle().
		Background(p.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)
	t.LoginTitle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	t.LoginHint = lipgloss.NewStyle().Foreground(p.Muted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().Foreground(p.Muted)
	t.StatusNotice = lipgloss.NewStyle().Foreground(t.Accent)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(p.Muted)
}

// =============================================================================
// TERMINAL DETECTION
// =============================================================================

// DetectDark resolves a theme setting to dark (true) or light (false).
// "auto" asks the terminal for its background color.
func DetectDark(setting string) bool {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "light":
		return false
	case "auto":
		return termenv.HasDarkBackground()
	default:
		return true
	}
}
