// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the termfolio TUI.

# Palettes (colors.go)

Two fixed palettes, DarkPalette and LightPalette. The "theme" command swaps
between them at runtime, which is why they are plain lipgloss.Color values
instead of AdaptiveColor.

	Background - Terminal background
	Surface    - Popups and the login box
	Text       - Default foreground
	Muted      - Hints, descriptions, status bar
	Error      - "Command not found" lines

# Theme (theme.go)

Theme holds every lipgloss.Style used by the UI. It is rebuilt when the
palette or accent changes:

	theme := styles.NewTheme(true, accent)
	theme.SetAccent(lipgloss.Color("#ff0000"))
	theme.SetDark(false)

DetectDark resolves the ui.theme setting, asking the terminal for its
background when the setting is "auto".

# Accent Colors (accent.go)

ParseAccent accepts hex, CSS names, rgb() and hsl() values. Unknown values
yield lipgloss.NoColor so the text falls back to the terminal default, the
same way a browser ignores an invalid CSS color.
*/
package styles
