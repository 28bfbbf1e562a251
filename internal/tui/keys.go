package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Select     key.Binding
	Next       key.Binding
	Prev       key.Binding
	Start      key.Binding
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	OrbitUp    key.Binding
	OrbitDown  key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ResetView  key.Binding
	Settings   key.Binding
	EditTask   key.Binding
	Quit       key.Binding
	Save       key.Binding
	Cancel     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "start")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Start:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start focused")),
		OrbitLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←→↑↓", "orbit")),
		OrbitRight: key.NewBinding(key.WithKeys("right")),
		OrbitUp:    key.NewBinding(key.WithKeys("up")),
		OrbitDown:  key.NewBinding(key.WithKeys("down")),
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:    key.NewBinding(key.WithKeys("-", "_")),
		ResetView:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "durations")),
		EditTask:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "task")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp lists the footer bindings, most used first since narrow
// terminals cut the tail.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Start, k.Settings, k.EditTask, k.Quit, k.Next, k.OrbitLeft, k.ZoomIn, k.ResetView}
}

// helpLine renders bindings as "[key]desc|[key]desc".
func helpLine(bindings []key.Binding) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "|")
}

// selectIndex maps a number key to a zero-based button index.
func selectIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
