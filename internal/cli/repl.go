// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode terminal for pipes and dumb terminals.
//
// The same session drives both front ends. Line mode reads with liner
// (history on the arrow keys, Tab completion over the command table) and
// prints the scrollback as it grows.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/peterh/liner"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// errorColor matches the dark palette's error color.
const errorColor = "#EF4444"

// LineReader is the line editor the REPL reads from. *liner.State
// implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	SetCompleter(f liner.Completer)
	Close() error
}

// NewLineReader creates the liner-backed reader. Ctrl+C aborts the prompt.
func NewLineReader() LineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

// REPLOptions configures line mode.
type REPLOptions struct {
	// MaxInputLength caps each line in characters (0 = unlimited)
	MaxInputLength int

	// Logger receives debug events; nil discards them
	Logger *slog.Logger
}

// REPL runs a session in line mode.
type REPL struct {
	session  *session.Session
	reader   LineReader
	out      *termenv.Output
	logger   *slog.Logger
	maxInput int

	// printed is how many scrollback entries are already on screen
	printed int
}

// NewREPL creates a line-mode loop over sess.
func NewREPL(sess *session.Session, reader LineReader, out *termenv.Output, opts REPLOptions) *REPL {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &REPL{
		session:  sess,
		reader:   reader,
		out:      out,
		logger:   logger,
		maxInput: opts.MaxInputLength,
	}
}

// Run reads and executes lines until EOF, Ctrl+C, or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	r.reader.SetCompleter(r.session.Completer().CompleteLine)

	r.printScrollback()

	for ctx.Err() == nil {
		if r.session.LoginOpen() {
			name, err := r.reader.Prompt(components.LoginTitle + ": ")
			if err != nil {
				return r.finish(err)
			}
			if !r.session.Login(name) {
				continue
			}
			r.logger.Debug("line mode login", "session", r.session.ID())
			continue
		}

		line, err := r.reader.Prompt(r.session.Prompt())
		if err != nil {
			return r.finish(err)
		}
		if r.maxInput > 0 {
			line = util.TruncateRunes(line, r.maxInput)
		}
		if strings.TrimSpace(line) != "" {
			r.reader.AppendHistory(line)
		}

		result := r.session.Submit(line)
		r.render(result)
	}
	return nil
}

// finish ends the loop on a reader error. EOF and Ctrl+C are normal exits.
func (r *REPL) finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		fmt.Fprintln(r.out)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

// render prints what a submitted line changed.
func (r *REPL) render(result commands.Result) {
	if result.Input == "" {
		return
	}

	switch result.Patch.Scrollback {
	case commands.ScrollbackClear, commands.ScrollbackReset, commands.ScrollbackReplace:
		r.out.ClearScreen()
		r.printed = 0
		r.printScrollback()
		if notice := r.session.Notice(); notice != "" {
			fmt.Fprintln(r.out, r.out.String(notice).Faint())
		}
		return
	}

	lines := r.session.Scrollback()
	start := r.printed
	// The echo line is already on screen as the prompt the visitor typed at
	if !result.NoEcho && start < len(lines) {
		start++
	}
	r.printLines(lines[min(start, len(lines)):])
	r.printed = len(lines)
}

// printScrollback prints every entry not yet on screen.
func (r *REPL) printScrollback() {
	lines := r.session.Scrollback()
	r.printLines(lines[min(r.printed, len(lines)):])
	r.printed = len(lines)
}

func (r *REPL) printLines(lines []string) {
	accent := r.accent()
	failure := r.out.Color(errorColor)

	for _, line := range lines {
		color := accent
		if commands.IsNotFound(line) {
			color = failure
		}
		for _, sub := range util.SplitLines(line) {
			fmt.Fprintln(r.out, r.out.String(sub).Foreground(color))
		}
	}
}

// accent resolves the session accent; an invalid value prints uncolored.
func (r *REPL) accent() termenv.Color {
	hex := styles.AccentHex(r.session.Appearance().AccentColor)
	if hex == "" {
		return termenv.NoColor{}
	}
	return r.out.Color(hex)
}
