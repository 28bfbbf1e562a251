// Package durations holds the user-editable list of selectable timer
// lengths, in minutes.
package durations

import (
	"slices"
	"strconv"
	"strings"

	"github.com/akyairhashvil/persimmon/internal/config"
)

// Store keeps the selectable options and the raw text used to edit them.
type Store struct {
	options []int
	text    string
}

// NewStore returns a store holding config.DefaultDurations.
func NewStore() *Store {
	s := &Store{}
	s.Set(config.DefaultDurations)
	return s
}

// Parse splits text on commas and keeps the integers in
// [1, config.MaxDurationMinutes] in order. Other tokens are dropped. An
// empty result means the input must be rejected.
func Parse(text string) []int {
	var out []int
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n <= 0 || n > config.MaxDurationMinutes {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Format renders list the way the settings input shows it.
func Format(list []int) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Set replaces the options. An empty list is ignored.
func (s *Store) Set(list []int) {
	if len(list) == 0 {
		return
	}
	s.options = slices.Clone(list)
	s.text = Format(s.options)
}

// Apply parses text and replaces the options when the result is non-empty.
// It reports whether the store changed; on false the previous list is kept.
func (s *Store) Apply(text string) bool {
	list := Parse(text)
	if len(list) == 0 {
		return false
	}
	s.Set(list)
	return true
}

// Options returns a copy of the selectable minutes.
func (s *Store) Options() []int {
	return slices.Clone(s.options)
}

// Text is the current edit text.
func (s *Store) Text() string { return s.text }

// SetText replaces the edit text without touching the options.
func (s *Store) SetText(text string) { s.text = text }

// Len is the number of options.
func (s *Store) Len() int { return len(s.options) }

// At returns the option at i.
func (s *Store) At(i int) (int, bool) {
	if i < 0 || i >= len(s.options) {
		return 0, false
	}
	return s.options[i], true
}
