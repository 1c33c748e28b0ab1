// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the termfolio TUI.
package components

import (
	"strings"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// SCROLLBACK RENDERING
// =============================================================================

// RenderScrollback styles the scrollback for the viewport. Lines are drawn in
// the accent color, except "Command not found" lines, which are red. Entries
// containing newlines (multi-line responses, the banner) keep their breaks.
// A positive width wraps long lines.
func RenderScrollback(lines []string, theme *styles.Theme, width int) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		style := theme.Line
		if commands.IsNotFound(line) {
			style = theme.ErrorLine
		}
		if width > 0 {
			style = style.Width(width)
		}

		for j, sub := range util.SplitLines(line) {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(style.Render(sub))
		}
	}
	return b.String()
}
