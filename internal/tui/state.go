package tui

import (
	"time"

	"github.com/akyairhashvil/persimmon/internal/models"
	"github.com/google/uuid"
)

const noButton = -1

// SessionState is the view's whole mutable state. It only changes through
// the transition functions below; the renderer reads it and nothing else.
type SessionState struct {
	Session      models.Session
	Animate      bool
	Reset        bool
	ActiveButton int
	SettingsOpen bool
	EditingTask  bool
}

func newSessionState() SessionState {
	return SessionState{
		Session:      models.Session{Phase: models.PhaseIdle},
		ActiveButton: noButton,
	}
}

// selectDuration replaces any session with a new opening one for minutes.
// Reset is cleared so the coming OpenElapsed raises it again.
func selectDuration(s SessionState, button, minutes int, now time.Time) SessionState {
	s.Session = models.NewSession(minutes, now)
	s.Animate = true
	s.Reset = false
	s.ActiveButton = button
	return s
}

// openElapsed moves the session with id into its closing phase.
func openElapsed(s SessionState, id uuid.UUID) (SessionState, bool) {
	if !s.Session.Active() || s.Session.ID != id || s.Session.Phase != models.PhaseOpening {
		return s, false
	}
	s.Animate = false
	s.Reset = true
	s.Session.Phase = models.PhaseClosing
	return s, true
}

// countdownTicked mirrors the countdown's remaining seconds.
func countdownTicked(s SessionState, remaining int) SessionState {
	r := remaining
	s.Session.Remaining = &r
	return s
}

// countdownFinished returns to idle and clears the highlight.
func countdownFinished(s SessionState) SessionState {
	s.Session.Phase = models.PhaseIdle
	s.Session.Remaining = nil
	s.Animate = false
	s.Reset = false
	s.ActiveButton = noButton
	return s
}

// durationsChanged drops the highlight when the highlighted option no
// longer shows the running session's minutes.
func durationsChanged(s SessionState, options []int) SessionState {
	if s.ActiveButton == noButton {
		return s
	}
	if s.ActiveButton >= len(options) || options[s.ActiveButton] != s.Session.Minutes {
		s.ActiveButton = noButton
	}
	return s
}

func toggleSettings(s SessionState) SessionState {
	s.SettingsOpen = !s.SettingsOpen
	if s.SettingsOpen {
		s.EditingTask = false
	}
	return s
}

func setEditingTask(s SessionState, editing bool) SessionState {
	s.EditingTask = editing
	if editing {
		s.SettingsOpen = false
	}
	return s
}
