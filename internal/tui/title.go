package tui

import tea "github.com/charmbracelet/bubbletea"

// windowTitle remembers the terminal title and queues changes until the
// next Update returns, when they are flushed as a command.
type windowTitle struct {
	current string
	dirty   bool
}

func newWindowTitle(initial string) *windowTitle {
	return &windowTitle{current: initial, dirty: true}
}

func (w *windowTitle) Title() string { return w.current }

func (w *windowTitle) SetTitle(title string) {
	if title == w.current && !w.dirty {
		return
	}
	w.current = title
	w.dirty = true
}

func (w *windowTitle) flush() tea.Cmd {
	if !w.dirty {
		return nil
	}
	w.dirty = false
	return tea.SetWindowTitle(w.current)
}
