package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestSelectIndex(t *testing.T) {
	cases := map[string]struct {
		idx int
		ok  bool
	}{
		"1":  {0, true},
		"9":  {8, true},
		"0":  {0, false},
		"a":  {0, false},
		"10": {0, false},
	}
	for in, want := range cases {
		idx, ok := selectIndex(in)
		if idx != want.idx || ok != want.ok {
			t.Fatalf("selectIndex(%q) = %d, %v; want %d, %v", in, idx, ok, want.idx, want.ok)
		}
	}
}

func TestHelpLineSkipsDuplicatesAndBlank(t *testing.T) {
	a := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "one"))
	b := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "again"))
	c := key.NewBinding(key.WithKeys("y"))
	if got := helpLine([]key.Binding{a, b, c}); got != "[x]one" {
		t.Fatalf("unexpected help line %q", got)
	}
}

func TestShortHelpCoversQuitAndSettings(t *testing.T) {
	line := helpLine(defaultKeyMap().ShortHelp())
	for _, want := range []string{"[q]quit", "[s]durations", "[t]task"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}
