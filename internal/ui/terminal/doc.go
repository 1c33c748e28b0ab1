// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package terminal provides the interactive terminal view for termfolio.

The Model is a Bubble Tea model that mirrors a *session.Session into bubbles
components: a textinput for the command line, a viewport for the scrollback
and a help view for key hints. It never decides what a command does; it
forwards keys to the session and re-renders.

# Keys

	enter   run the line, or take the highlighted suggestion when it differs
	tab     take the highlighted suggestion
	up/down move through suggestions when shown, otherwise recall
	pgup/dn scroll the scrollback
	C-y     copy the last output to the clipboard
	F1      show all keys
	C-c     exit

# Usage

	m := terminal.New(sess, theme, terminal.Options{MaxInputLength: 256})
	err := terminal.Run(ctx, m, terminal.RunOptions{AltScreen: true})
*/
package terminal
