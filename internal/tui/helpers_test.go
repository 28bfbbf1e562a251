package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/persimmon/internal/scene"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func setupTestModel(t *testing.T) (MainModel, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	m := NewMainModel(Options{Now: clock.Now})
	m = send(t, m, SceneLoadedMsg{Scene: scene.NewPersimmon()})
	if m.scene == nil {
		t.Fatalf("expected scene to be loaded")
	}
	return m, clock
}

func send(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	model, _ := m.Update(msg)
	updated, ok := model.(MainModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return updated
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func topNode(t *testing.T, m MainModel) *scene.Node {
	t.Helper()
	node, ok := m.timer.Part.Node()
	if !ok {
		t.Fatalf("expected bound top part")
	}
	return node
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
