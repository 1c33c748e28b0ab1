// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides the interactive terminal view for termfolio.
package terminal

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// Placeholder is shown in the empty input line.
	Placeholder = "Type a command..."

	// loginCharLimit caps the name typed at the login prompt.
	loginCharLimit = 32

	// Notices for the copy action.
	noticeCopied      = "Copied last output to clipboard."
	noticeNothingCopy = "Nothing to copy yet."
	noticeCopyFailed  = "Could not copy to clipboard."
)

// =============================================================================
// MODEL
// =============================================================================

// Options configures the terminal model.
type Options struct {
	// MaxInputLength caps the input line in characters (0 = unlimited)
	MaxInputLength int

	// Clipboard writes text to the system clipboard; defaults to atotto/clipboard
	Clipboard func(string) error
}

// Model is the Bubble Tea model for the terminal. All terminal state lives in
// the session; the model mirrors it into bubbles components for display.
type Model struct {
	session *session.Session
	theme   *styles.Theme
	keys    KeyMap

	// Components
	input    textinput.Model
	login    textinput.Model
	viewport viewport.Model
	help     help.Model
	popup    *components.CompletionPopup
	loginBox *components.LoginBox
	status   *components.StatusBar

	// Appearance last applied to the theme
	accent string
	dark   bool

	// lastOutput is what ctrl+y copies
	lastOutput string
	clipboard  func(string) error

	showFullHelp bool
	width        int
	height       int
	ready        bool
}

// New creates the terminal model over a session.
func New(sess *session.Session, theme *styles.Theme, opts Options) Model {
	keys := DefaultKeyMap()

	input := textinput.New()
	input.Prompt = sess.Prompt()
	input.Placeholder = Placeholder
	input.CharLimit = opts.MaxInputLength
	input.Focus()

	login := textinput.New()
	login.Prompt = "> "
	login.Placeholder = "Your name"
	login.CharLimit = loginCharLimit

	vp := viewport.New(80, 20)
	vp.KeyMap = viewportKeyMap(keys)

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	appearance := sess.Appearance()
	m := Model{
		session:   sess,
		theme:     theme,
		keys:      keys,
		input:     input,
		login:     login,
		viewport:  vp,
		help:      help.New(),
		popup:     components.NewCompletionPopup(theme),
		loginBox:  components.NewLoginBox(theme),
		status:    components.NewStatusBar(theme),
		accent:    appearance.AccentColor,
		dark:      appearance.Theme == session.ThemeDark,
		clipboard: clip,
	}

	theme.SetDark(m.dark)
	accent, _ := styles.ParseAccent(m.accent)
	theme.SetAccent(accent)
	m.applyStyles()

	if sess.LoginOpen() {
		m.input.Blur()
		m.login.Focus()
	}

	m.refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the session the model displays.
func (m Model) Session() *session.Session {
	return m.session
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Cursor blink and other component messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.login, cmd = m.login.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleResize recomputes the layout for a new window size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.theme.SetSize(msg.Width, msg.Height)
	m.loginBox.SetSize(msg.Width, msg.Height)
	m.status.SetWidth(m.contentWidth())
	m.popup.SetWidth(min(m.contentWidth()-2, 60))
	m.popup.SetMaxVisible(min(max(msg.Height/4, 3), 6))
	m.help.Width = m.contentWidth()
	m.input.Width = m.contentWidth() - util.StringWidth(m.input.Prompt) - 1

	m.refresh()
	return m, nil
}

// handleKey routes a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.session.LoginOpen() {
		return m.handleLoginKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showFullHelp = !m.showFullHelp
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyLastOutput()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Accept):
		if m.session.AcceptSuggestion() {
			m.syncInput()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.shouldAcceptOnEnter() {
			m.session.AcceptSuggestion()
			m.syncInput()
			m.refresh()
			return m, nil
		}
		return m.submit()

	case key.Matches(msg, m.keys.Up):
		m.session.Previous()
		m.syncInput()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.session.Next()
		m.syncInput()
		m.refresh()
		return m, nil
	}

	// Everything else edits the input line
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.session.Input() {
		m.session.Edit(value)
		m.refresh()
	}
	return m, cmd
}

// handleLoginKey handles keys while the login prompt is open.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if !m.session.Login(m.login.Value()) {
			return m, nil
		}
		m.login.Reset()
		m.login.Blur()
		cmd := m.input.Focus()
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

// shouldAcceptOnEnter reports whether Enter should take the highlighted
// suggestion instead of running the line. It does so only when the
// suggestion would change what was typed.
func (m Model) shouldAcceptOnEnter() bool {
	selected, ok := m.session.Suggestions().Selected()
	if !ok {
		return false
	}
	typed := commands.Fold(strings.TrimSpace(m.session.Input()))
	return commands.Fold(selected.Value) != typed
}

// submit runs the current line through the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	result := m.session.Submit(m.input.Value())
	if out := strings.Join(result.Output, "\n"); out != "" {
		m.lastOutput = out
	}

	m.syncInput()

	var cmd tea.Cmd
	if m.session.LoginOpen() {
		m.input.Blur()
		cmd = m.login.Focus()
	}

	m.refresh()
	return m, cmd
}

// copyLastOutput copies the output of the last command to the clipboard.
func (m *Model) copyLastOutput() {
	if m.lastOutput == "" {
		m.session.SetNotice(noticeNothingCopy)
		return
	}
	if err := m.clipboard(m.lastOutput); err != nil {
		m.session.SetNotice(noticeCopyFailed)
		return
	}
	m.session.SetNotice(noticeCopied)
}

// =============================================================================
// SYNC
// =============================================================================

// syncInput copies the session input into the text field, cursor at the end.
func (m *Model) syncInput() {
	if m.input.Value() == m.session.Input() {
		return
	}
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

// refresh mirrors session state into the components and recomputes layout.
func (m *Model) refresh() {
	m.syncAppearance()

	sugg := m.session.Suggestions()
	m.popup.SetCompletions(sugg.Items(), sugg.Index())

	m.status.Notice = m.session.Notice()
	m.status.Username = m.session.Username()
	m.status.SessionID = m.session.ID()

	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.viewportHeight()
	m.viewport.SetContent(components.RenderScrollback(
		m.session.Scrollback(), m.theme, m.contentWidth()))
	m.viewport.GotoBottom()
}

// syncAppearance rebuilds styles when the accent or theme changed.
func (m *Model) syncAppearance() {
	appearance := m.session.Appearance()
	dark := appearance.Theme == session.ThemeDark

	changed := false
	if appearance.AccentColor != m.accent {
		m.accent = appearance.AccentColor
		accent, _ := styles.ParseAccent(m.accent)
		m.theme.SetAccent(accent)
		changed = true
	}
	if dark != m.dark {
		m.dark = dark
		m.theme.SetDark(dark)
		changed = true
	}

	if changed {
		m.applyStyles()
	}
}

// applyStyles copies theme styles into the bubbles components.
func (m *Model) applyStyles() {
	m.input.PromptStyle = m.theme.InputPrompt
	m.input.TextStyle = m.theme.InputText
	m.input.PlaceholderStyle = m.theme.InputPlaceholder
	m.input.Cursor.Style = m.theme.InputCursor

	m.login.PromptStyle = m.theme.LoginTitle
	m.login.TextStyle = m.theme.InputText
	m.login.PlaceholderStyle = m.theme.InputPlaceholder
	m.login.Cursor.Style = m.theme.InputCursor

	m.help.Styles.ShortKey = m.theme.ShortcutKey
	m.help.Styles.ShortDesc = m.theme.ShortcutDesc
	m.help.Styles.FullKey = m.theme.ShortcutKey
	m.help.Styles.FullDesc = m.theme.ShortcutDesc

	m.status.SetTheme(m.theme)
}
