// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides the interactive terminal view for termfolio.
package terminal

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls how the program takes over the terminal.
type RunOptions struct {
	// AltScreen uses the alternate screen buffer
	AltScreen bool
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, m Model, opts RunOptions) error {
	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
