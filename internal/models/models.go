package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase enumerates where a timer session is in its lifetime.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseOpening Phase = "opening"
	PhaseClosing Phase = "closing"
)

// Session is the lifetime of one selected duration, from click to
// countdown completion. At most one is active at a time.
type Session struct {
	ID        uuid.UUID
	Minutes   int
	Phase     Phase
	Remaining *int // nil when no countdown is running
	StartedAt time.Time
}

// NewSession starts an opening session for minutes.
func NewSession(minutes int, now time.Time) Session {
	remaining := minutes * 60
	return Session{
		ID:        uuid.New(),
		Minutes:   minutes,
		Phase:     PhaseOpening,
		Remaining: &remaining,
		StartedAt: now,
	}
}

// Active reports whether the session has not returned to idle.
func (s Session) Active() bool {
	return s.Phase != PhaseIdle && s.Phase != ""
}

// TotalSeconds is the countdown length of the session.
func (s Session) TotalSeconds() int {
	return s.Minutes * 60
}
