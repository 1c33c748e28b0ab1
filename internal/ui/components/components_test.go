// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(true, lipgloss.Color("#22c55e"))
}

func sampleCompletions(n int) []commands.Completion {
	all := commands.DefaultRegistry().All()
	out := make([]commands.Completion, 0, n)
	for _, entry := range all[:n] {
		out = append(out, commands.Completion{Value: entry.Name, Description: entry.Description})
	}
	return out
}

// =============================================================================
// COMPLETION POPUP TESTS
// =============================================================================

func TestCompletionPopupEmpty(t *testing.T) {
	popup := NewCompletionPopup(testTheme())

	if popup.HasCompletions() {
		t.Error("new popup should be empty")
	}
	if popup.View() != "" {
		t.Error("empty popup should render nothing")
	}
}

func TestCompletionPopupMarksSelection(t *testing.T) {
	popup := NewCompletionPopup(testTheme())
	popup.SetCompletions(sampleCompletions(3), 1)

	view := popup.View()
	lines := strings.Split(view, "\n")

	var marked []string
	for _, line := range lines {
		if strings.Contains(line, "> ") {
			marked = append(marked, line)
		}
	}
	if len(marked) != 1 {
		t.Fatalf("expected exactly one selected row, got %d:\n%s", len(marked), view)
	}
	if !strings.Contains(marked[0], "whoami") {
		t.Errorf("selected row = %q, want whoami", marked[0])
	}
}

func TestCompletionPopupWindow(t *testing.T) {
	popup := NewCompletionPopup(testTheme())
	popup.SetMaxVisible(3)
	items := sampleCompletions(8)
	popup.SetCompletions(items, 7)

	start, end := popup.visibleRange()
	if end-start != 3 || end != 8 {
		t.Errorf("visibleRange() = (%d, %d), want the last 3", start, end)
	}

	view := popup.View()
	if !strings.Contains(view, items[7].Value) {
		t.Error("selected item must be visible")
	}
	if strings.Contains(view, "> "+items[0].Value) {
		t.Error("first item should be scrolled out")
	}
	if !strings.Contains(view, "+5 more") {
		t.Errorf("expected overflow hint in:\n%s", view)
	}
}

func TestCompletionPopupCompact(t *testing.T) {
	popup := NewCompletionPopup(testTheme())
	popup.SetCompletions(sampleCompletions(2), 0)

	view := popup.ViewCompact()
	if !strings.Contains(view, "help") || !strings.Contains(view, "whoami") {
		t.Errorf("ViewCompact() = %q", view)
	}
}

// =============================================================================
// SCROLLBACK TESTS
// =============================================================================

func TestRenderScrollback(t *testing.T) {
	lines := []string{
		"Welcome!",
		"visitor$ projects",
		"- Portfolio Terminal\n- Blog Platform",
		"Command not found: nope",
	}

	out := RenderScrollback(lines, testTheme(), 0)
	got := strings.Split(out, "\n")

	if len(got) != 5 {
		t.Fatalf("expected 5 rendered rows, got %d: %q", len(got), got)
	}
	for _, want := range []string{"Welcome!", "- Portfolio Terminal", "- Blog Platform", "Command not found: nope"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRenderScrollbackKeepsBanner(t *testing.T) {
	out := RenderScrollback([]string{config.Banner}, testTheme(), 0)

	want := strings.Split(config.Banner, "\n")
	got := strings.Split(out, "\n")
	if len(got) != len(want) {
		t.Fatalf("banner rendered as %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if !strings.Contains(got[i], strings.TrimRight(want[i], " ")) {
			t.Errorf("row %d = %q, want it to contain %q", i, got[i], want[i])
		}
	}
}

func TestRenderScrollbackEmpty(t *testing.T) {
	if out := RenderScrollback(nil, testTheme(), 80); out != "" {
		t.Errorf("RenderScrollback(nil) = %q, want empty", out)
	}
}

// =============================================================================
// LOGIN AND STATUS BAR TESTS
// =============================================================================

func TestLoginBoxView(t *testing.T) {
	box := NewLoginBox(testTheme())
	box.SetSize(60, 20)

	view := box.View("> ada")
	if !strings.Contains(view, LoginTitle) {
		t.Error("login box should show its title")
	}
	if !strings.Contains(view, "> ada") {
		t.Error("login box should show the input")
	}
	if h := lipgloss.Height(view); h != 20 {
		t.Errorf("login box height = %d, want 20", h)
	}
}

type testKeys struct{ quit key.Binding }

func (k testKeys) ShortHelp() []key.Binding  { return []key.Binding{k.quit} }
func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.quit}} }

func TestStatusBarView(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(80)
	keys := testKeys{quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))}

	bar.Username = "ada"
	bar.SessionID = "0b7c2a4e-1111-2222-3333-444455556666"
	view := bar.View(keys)
	if !strings.Contains(view, "ada | session 0b7c2a4e") {
		t.Errorf("idle status bar = %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("status bar should include key help: %q", view)
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("status bar width = %d, want 80", w)
	}

	bar.Notice = commands.RestartedMessage
	if view := bar.View(keys); !strings.Contains(view, commands.RestartedMessage) {
		t.Errorf("notice not shown: %q", view)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(10)
	bar.Notice = "a very long notice that will not fit"

	view := bar.View(nil)
	if w := lipgloss.Width(view); w > 10 {
		t.Errorf("narrow status bar width = %d, want <= 10", w)
	}
}
