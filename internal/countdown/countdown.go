// Package countdown implements the one-second countdown that mirrors the
// remaining time into the window title.
//
// The timer does not own a clock. The caller schedules one tick per
// second and hands the generation returned by Start back to Tick; a tick
// carrying an old generation is stale and must not be rescheduled, which is
// how a superseded or stopped countdown stops ticking.
package countdown

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/persimmon/internal/config"
)

// ErrInvalidDuration is returned when a countdown is started with a
// non-positive number of seconds or more than config.MaxDurationMinutes.
var ErrInvalidDuration = errors.New("countdown duration must be positive")

// Titler reads and writes the window title.
//
//go:generate mockgen -source=countdown.go -destination=mock_titler_test.go -package=countdown
type Titler interface {
	Title() string
	SetTitle(title string)
}

// TickResult tells the caller what to do after a tick.
type TickResult int

const (
	// TickStale means the tick belongs to a superseded or stopped run.
	TickStale TickResult = iota
	// TickContinue means another tick must be scheduled.
	TickContinue
	// TickFinished means the countdown reached zero and returned to idle.
	TickFinished
)

func (r TickResult) String() string {
	switch r {
	case TickContinue:
		return "continue"
	case TickFinished:
		return "finished"
	default:
		return "stale"
	}
}

// Timer is the Idle -> Running -> Idle countdown.
type Timer struct {
	titler     Titler
	label      string
	running    bool
	total      int
	remaining  int
	generation uint64
	restore    string
}

// New returns an idle timer writing titles suffixed with label.
func New(titler Titler, label string) *Timer {
	return &Timer{titler: titler, label: label}
}

// Start begins a countdown of totalSeconds and returns its generation.
// A running countdown is superseded; the title captured by the first run is
// still the one restored at the end.
func (t *Timer) Start(totalSeconds int) (uint64, error) {
	if totalSeconds <= 0 || totalSeconds > config.MaxDurationMinutes*60 {
		return t.generation, fmt.Errorf("start %ds: %w", totalSeconds, ErrInvalidDuration)
	}
	if !t.running {
		t.restore = t.titler.Title()
	}
	t.generation++
	t.running = true
	t.total = totalSeconds
	t.remaining = totalSeconds
	t.titler.SetTitle(t.title())
	return t.generation, nil
}

// Tick advances the countdown started with generation by one second.
func (t *Timer) Tick(generation uint64) TickResult {
	if !t.running || generation != t.generation {
		return TickStale
	}
	t.remaining--
	if t.remaining > 0 {
		t.titler.SetTitle(t.title())
		return TickContinue
	}
	t.finish()
	return TickFinished
}

// Stop tears the countdown down. Any tick still in flight becomes stale.
func (t *Timer) Stop() {
	t.generation++
	if t.running {
		t.finish()
	}
}

func (t *Timer) finish() {
	t.running = false
	t.remaining = 0
	t.titler.SetTitle(t.restore)
}

func (t *Timer) title() string {
	if t.label == "" {
		return FormatClock(t.remaining)
	}
	return FormatClock(t.remaining) + " - " + t.label
}

// Remaining returns the seconds left; ok is false while idle.
func (t *Timer) Remaining() (seconds int, ok bool) {
	if !t.running {
		return 0, false
	}
	return t.remaining, true
}

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool { return t.running }

// Total is the length of the current or last countdown.
func (t *Timer) Total() int { return t.total }

// Generation identifies the current run.
func (t *Timer) Generation() uint64 { return t.generation }

// Elapsed is the completed fraction of the running countdown.
func (t *Timer) Elapsed() float64 {
	if !t.running || t.total == 0 {
		return 0
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
