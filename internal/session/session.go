// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one visitor's terminal session.
package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/termfolio/internal/commands"
)

// =============================================================================
// APPEARANCE
// =============================================================================

// Theme is the color scheme of the terminal.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme converts a config value into a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	default:
		return "", false
	}
}

// Appearance is the part of the session the color and theme commands change.
type Appearance struct {
	// AccentColor is whatever the visitor typed; it is not validated here
	AccentColor string
	Theme       Theme
}

// =============================================================================
// SESSION
// =============================================================================

// Options configures a new session.
type Options struct {
	// Prompt is prepended to every echoed command
	Prompt string

	// Welcome is the scrollback at session start and after restart
	Welcome []string

	// DefaultAccent is the accent color at start and after restart
	DefaultAccent string

	// Theme is the initial theme
	Theme Theme

	// AskName opens the login prompt before the first command
	AskName bool
}

// Session is one visitor's terminal state. It is owned by a single UI loop.
type Session struct {
	id        string
	startedAt time.Time
	username  string
	loginOpen bool

	opts        Options
	interpreter *commands.Interpreter
	completer   *commands.Completer
	logger      *slog.Logger

	scrollback  []string
	appearance  Appearance
	recall      *Recall
	suggestions Suggestions
	input       string
	notice      string
}

// New creates a session over the given interpreter.
func New(opts Options, interpreter *commands.Interpreter, logger *slog.Logger) *Session {
	if opts.Theme == "" {
		opts.Theme = ThemeDark
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		id:          uuid.NewString(),
		startedAt:   time.Now(),
		loginOpen:   opts.AskName,
		opts:        opts,
		interpreter: interpreter,
		completer:   commands.NewCompleter(interpreter.Registry()),
		logger:      logger,
		scrollback:  cloneLines(opts.Welcome),
		appearance: Appearance{
			AccentColor: opts.DefaultAccent,
			Theme:       opts.Theme,
		},
		recall: NewRecall(),
	}

	s.logger.Info("session created", "session", s.id, "login", s.loginOpen)
	return s
}

// =============================================================================
// LOGIN
// =============================================================================

// LoginOpen reports whether the login prompt is showing.
func (s *Session) LoginOpen() bool {
	return s.loginOpen
}

// Login confirms the visitor name and closes the login prompt.
// A blank name is rejected and the prompt stays open.
func (s *Session) Login(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	s.username = name
	s.loginOpen = false
	s.id = uuid.NewString()
	s.startedAt = time.Now()

	s.logger.Info("session started", "session", s.id, "user", name)
	return true
}

// Username returns the name given at login, if any.
func (s *Session) Username() string {
	return s.username
}

// ID returns the session identifier, renewed at every login.
func (s *Session) ID() string {
	return s.id
}

// StartedAt returns when the session (or last login) began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// =============================================================================
// STATE ACCESS
// =============================================================================

// Prompt returns the echo prefix.
func (s *Session) Prompt() string {
	return s.opts.Prompt
}

// Scrollback returns a copy of the displayed lines in order.
func (s *Session) Scrollback() []string {
	return cloneLines(s.scrollback)
}

// Appearance returns the current accent color and theme.
func (s *Session) Appearance() Appearance {
	return s.appearance
}

// Input returns the current input text.
func (s *Session) Input() string {
	return s.input
}

// Notice returns the latest transient status message.
func (s *Session) Notice() string {
	return s.notice
}

// SetNotice replaces the transient status message.
func (s *Session) SetNotice(msg string) {
	s.notice = msg
}

// Recall returns the recall buffer.
func (s *Session) Recall() *Recall {
	return s.recall
}

// Suggestions returns the autocomplete state.
func (s *Session) Suggestions() *Suggestions {
	return &s.suggestions
}

// Completer returns the completer over the session's command table.
func (s *Session) Completer() *commands.Completer {
	return s.completer
}

// =============================================================================
// INPUT EDITING
// =============================================================================

// Edit records a manual change of the input text. It stops recall browsing
// and recomputes the suggestions.
func (s *Session) Edit(text string) {
	s.input = text
	s.recall.Reset()

	if strings.TrimSpace(text) == "" {
		s.suggestions.Hide()
		return
	}
	s.suggestions.Set(s.completer.Complete(text))
}

// Previous handles the "up" action: it moves the suggestion selection when
// suggestions are visible, otherwise it recalls an older command.
func (s *Session) Previous() {
	if s.suggestions.Visible() {
		s.suggestions.Prev()
		return
	}
	if cmd, ok := s.recall.Prev(); ok {
		s.input = cmd
	}
}

// Next handles the "down" action, the mirror of Previous.
func (s *Session) Next() {
	if s.suggestions.Visible() {
		s.suggestions.Next()
		return
	}
	if cmd, ok := s.recall.Next(); ok {
		s.input = cmd
	}
}

// AcceptSuggestion replaces the input with the selected suggestion followed
// by a space and hides the list. Returns false when nothing is selected.
func (s *Session) AcceptSuggestion() bool {
	selected, ok := s.suggestions.Selected()
	if !ok {
		return false
	}

	s.input = selected.Insert()
	s.suggestions.Hide()
	s.recall.Reset()
	return true
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit runs one command line. Blank input is ignored and not recorded.
func (s *Session) Submit(raw string) commands.Result {
	line := strings.TrimSpace(raw)
	if line == "" {
		return commands.Result{NoEcho: true}
	}

	s.recall.Push(line)
	s.input = ""
	s.suggestions.Hide()

	result := s.interpreter.Execute(line)
	s.Apply(result)

	if result.NotFound {
		s.logger.Info("command not found", "session", s.id, "input", line)
	} else {
		s.logger.Debug("command executed",
			"session", s.id,
			"verb", result.Verb,
			"scrollback", result.Patch.Scrollback.String(),
			"lines", len(s.scrollback),
		)
	}

	return result
}

// Apply appends the echo and output of a result and then applies its patch.
// Because the patch comes last, restart leaves exactly the welcome lines and
// quit leaves exactly the goodbye line; their confirmation becomes the notice.
func (s *Session) Apply(result commands.Result) {
	if result.Input == "" {
		return
	}
	s.notice = ""

	if !result.NoEcho {
		s.scrollback = append(s.scrollback, s.opts.Prompt+result.Input)
		for _, line := range result.Output {
			if line != "" {
				s.scrollback = append(s.scrollback, line)
			}
		}
	}

	patch := result.Patch
	switch patch.Scrollback {
	case commands.ScrollbackClear:
		s.scrollback = nil
	case commands.ScrollbackReset:
		s.scrollback = cloneLines(s.opts.Welcome)
		s.notice = strings.Join(result.Output, " ")
	case commands.ScrollbackReplace:
		s.scrollback = cloneLines(patch.Lines)
		s.notice = strings.Join(result.Output, " ")
	}

	if patch.SetAccent {
		s.appearance.AccentColor = patch.Accent
	}
	if patch.ResetAccent {
		s.appearance.AccentColor = s.opts.DefaultAccent
	}
	if patch.ToggleTheme {
		s.appearance.Theme = s.appearance.Theme.Toggle()
	}
	if patch.ClearInput {
		s.input = ""
		s.suggestions.Hide()
	}
	if patch.Relogin && s.opts.AskName {
		s.logger.Info("session restarted", "session", s.id)
		s.username = ""
		s.loginOpen = true
	}
}

// cloneLines copies a line slice so callers cannot alias session state.
func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
