// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the termfolio TUI.
// The theme can be toggled at runtime, so palettes use fixed colors rather
// than lipgloss.AdaptiveColor.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette is the set of colors for one theme. The accent color is separate
// because the visitor can change it.
type Palette struct {
	// Background of the whole terminal
	Background lipgloss.Color
	// Surface of popups and the login box
	Surface lipgloss.Color
	// Text is the default foreground
	Text lipgloss.Color
	// Muted is used for hints, descriptions and the status bar
	Muted lipgloss.Color
	// Border around popups
	Border lipgloss.Color
	// Selection background in the suggestion list
	Selection lipgloss.Color
	// Error foreground for "Command not found" lines
	Error lipgloss.Color
}

// DarkPalette is the default theme.
var DarkPalette = Palette{
	Background: lipgloss.Color("#000000"),
	Surface:    lipgloss.Color("#111827"),
	Text:       lipgloss.Color("#E5E7EB"),
	Muted:      lipgloss.Color("#6B7280"),
	Border:     lipgloss.Color("#374151"),
	Selection:  lipgloss.Color("#1F2937"),
	Error:      lipgloss.Color("#EF4444"), // red-500
}

// LightPalette is the toggled theme.
var LightPalette = Palette{
	Background: lipgloss.Color("#FFFFFF"),
	Surface:    lipgloss.Color("#F3F4F6"),
	Text:       lipgloss.Color("#111827"),
	Muted:      lipgloss.Color("#6B7280"),
	Border:     lipgloss.Color("#D1D5DB"),
	Selection:  lipgloss.Color("#E5E7EB"),
	Error:      lipgloss.Color("#DC2626"), // red-600, readable on white
}

// PaletteFor returns the palette for a dark or light theme.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}
