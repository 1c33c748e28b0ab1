// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

const testPrompt = "visitor@udoka.dev:~$ "

var testWelcome = []string{"Welcome!", "Type 'help' to see all available commands."}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func newTestModel(t *testing.T, askName bool, opts Options) Model {
	t.Helper()

	interp, err := commands.NewInterpreter(commands.DefaultRegistry(), commands.DefaultResponses(), "")
	require.NoError(t, err)

	sess := session.New(session.Options{
		Prompt:        testPrompt,
		Welcome:       testWelcome,
		DefaultAccent: "#22c55e",
		Theme:         session.ThemeDark,
		AskName:       askName,
	}, interp, nil)

	theme := styles.NewTheme(true, nil)
	m := New(sess, theme, opts)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t *testing.T, m Model, keyType tea.KeyType) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: keyType})
}

func run(t *testing.T, m Model, line string) Model {
	t.Helper()
	m = typeText(t, m, line)
	return press(t, m, tea.KeyEnter)
}

// =============================================================================
// INPUT AND SUBMISSION
// =============================================================================

func TestEmptyInputShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, false, Options{})

	// The first placeholder rune sits under the cursor
	assert.Contains(t, m.View(), Placeholder[1:])
}

func TestTypingShowsSuggestions(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = typeText(t, m, "pro")

	assert.Equal(t, "pro", m.session.Input())
	require.True(t, m.session.Suggestions().Visible())
	assert.Contains(t, m.View(), "projects")
}

func TestEnterRunsCommand(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = run(t, m, "about")

	lines := m.session.Scrollback()
	assert.Contains(t, lines, testPrompt+"about")
	assert.Contains(t, lines, commands.DefaultResponses()["about"])
	assert.Empty(t, m.input.Value())
	assert.False(t, m.session.Suggestions().Visible())
}

func TestEnterTakesDifferentSuggestion(t *testing.T) {
	m := newTestModel(t, false, Options{})
	before := len(m.session.Scrollback())

	m = run(t, m, "ab")

	assert.Equal(t, "about ", m.input.Value())
	assert.Len(t, m.session.Scrollback(), before, "nothing should run yet")

	m = press(t, m, tea.KeyEnter)
	assert.Contains(t, m.session.Scrollback(), testPrompt+"about")
}

func TestTabTakesSuggestion(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = typeText(t, m, "exp")
	m = press(t, m, tea.KeyTab)

	assert.Equal(t, "experience ", m.input.Value())
	assert.Equal(t, "experience ", m.session.Input())
}

func TestUnknownCommand(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = run(t, m, "sudo rm")

	lines := m.session.Scrollback()
	assert.Equal(t, "Command not found: sudo rm", lines[len(lines)-1])
	assert.Contains(t, m.View(), "Command not found: sudo rm")
}

func TestMaxInputLength(t *testing.T) {
	m := newTestModel(t, false, Options{MaxInputLength: 5})

	m = typeText(t, m, "experience")

	assert.Equal(t, "exper", m.input.Value())
	assert.Equal(t, "exper", m.session.Input())
}

// =============================================================================
// RECALL
// =============================================================================

func TestRecallKeys(t *testing.T) {
	m := newTestModel(t, false, Options{})
	m = run(t, m, "about")
	m = run(t, m, "skills")

	m = press(t, m, tea.KeyUp)
	m = press(t, m, tea.KeyUp)
	assert.Equal(t, "about", m.input.Value())

	m = press(t, m, tea.KeyDown)
	assert.Equal(t, "skills", m.input.Value())

	m = press(t, m, tea.KeyDown)
	assert.Empty(t, m.input.Value())
}

func TestArrowsMoveSuggestionSelection(t *testing.T) {
	m := newTestModel(t, false, Options{})
	m = run(t, m, "about")

	m = typeText(t, m, "e")
	m = press(t, m, tea.KeyDown)

	assert.Equal(t, 1, m.session.Suggestions().Index())
	assert.Equal(t, "e", m.input.Value())
}

// =============================================================================
// APPEARANCE
// =============================================================================

func TestColorCommandChangesAccent(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = run(t, m, "color red")

	assert.Equal(t, "red", m.session.Appearance().AccentColor)
	assert.Equal(t, lipgloss.Color("#ff0000"), m.theme.Accent)
}

func TestInvalidColorFallsBackToDefaultForeground(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = run(t, m, "color not-a-color")

	assert.Equal(t, "not-a-color", m.session.Appearance().AccentColor)
	assert.Equal(t, lipgloss.NoColor{}, m.theme.Accent)
}

func TestThemeCommandTogglesPalette(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = run(t, m, "theme")
	assert.False(t, m.theme.IsDark)

	m = run(t, m, "theme")
	assert.True(t, m.theme.IsDark)
}

func TestRestartRestoresAccent(t *testing.T) {
	m := newTestModel(t, false, Options{})
	m = run(t, m, "color blue")

	m = run(t, m, "restart")

	assert.Equal(t, testWelcome, m.session.Scrollback())
	assert.Equal(t, lipgloss.Color("#22c55e"), m.theme.Accent)
	assert.Contains(t, m.View(), commands.RestartedMessage)
}

func TestClearCommand(t *testing.T) {
	m := newTestModel(t, false, Options{})
	m = run(t, m, "whoami")

	m = run(t, m, "CLEAR")

	assert.Empty(t, m.session.Scrollback())
}

// =============================================================================
// LOGIN
// =============================================================================

func TestLoginFlow(t *testing.T) {
	m := newTestModel(t, true, Options{})
	require.True(t, m.session.LoginOpen())
	assert.Contains(t, m.View(), components.LoginTitle)

	// Blank names are refused
	m = press(t, m, tea.KeyEnter)
	assert.True(t, m.session.LoginOpen())

	// Typing goes to the login field, not the command line
	m = typeText(t, m, "ada")
	assert.Empty(t, m.session.Input())

	m = press(t, m, tea.KeyEnter)
	assert.False(t, m.session.LoginOpen())
	assert.Equal(t, "ada", m.session.Username())
	assert.NotContains(t, m.View(), components.LoginTitle)
}

func TestRestartReopensLogin(t *testing.T) {
	m := newTestModel(t, true, Options{})
	m = typeText(t, m, "ada")
	m = press(t, m, tea.KeyEnter)

	m = run(t, m, "restart")

	assert.True(t, m.session.LoginOpen())
	assert.Contains(t, m.View(), components.LoginTitle)
}

// =============================================================================
// APPLICATION KEYS
// =============================================================================

func TestCopyLastOutput(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, false, Options{Clipboard: clip.write})

	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, noticeNothingCopy, m.session.Notice())

	m = run(t, m, "contact")
	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, commands.DefaultResponses()["contact"], clip.text)
	assert.Equal(t, noticeCopied, m.session.Notice())
}

func TestCopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	m := newTestModel(t, false, Options{Clipboard: clip.write})
	m = run(t, m, "whoami")

	m = press(t, m, tea.KeyCtrlY)

	assert.Equal(t, noticeCopyFailed, m.session.Notice())
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, false, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestQuitCommandKeepsRunning(t *testing.T) {
	m := newTestModel(t, false, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
	m = next.(Model)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, []string{commands.DefaultGoodbye}, m.session.Scrollback())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, false, Options{})

	m = press(t, m, tea.KeyF1)
	assert.True(t, m.showFullHelp)
	assert.Contains(t, m.View(), "copy output")

	m = press(t, m, tea.KeyF1)
	assert.False(t, m.showFullHelp)
}

func TestViewFitsWindow(t *testing.T) {
	m := newTestModel(t, false, Options{})
	for i := 0; i < 40; i++ {
		m = run(t, m, "projects")
	}
	m = typeText(t, m, "e")

	view := m.View()
	assert.Equal(t, 30, lipgloss.Height(view))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}
