// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the termfolio TUI.

Components are plain renderers over a *styles.Theme. They hold layout state
(width, height) but no terminal state; the session owns the scrollback,
suggestions and notice, and the terminal model copies them in before
rendering.

# Components

CompletionPopup (completion.go) - Suggestion list under the input, with the
selected entry highlighted and a scrolling window for long lists.

RenderScrollback (scrollback.go) - Styles scrollback lines in the accent color,
"Command not found" lines in red.

LoginBox (login.go) - Centered name prompt shown before the terminal.

StatusBar (statusbar.go) - Notice or session identity on the left, key hints
from bubbles/help on the right.

# Usage

	popup := components.NewCompletionPopup(theme)
	popup.SetCompletions(sess.Suggestions().Items(), sess.Suggestions().Index())
	view := popup.View()
*/
package components
