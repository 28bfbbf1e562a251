package tui

import (
	"time"

	"github.com/akyairhashvil/persimmon/internal/animator"
	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/countdown"
)

// TimerManager groups the three clocks of a session: the countdown, the
// tween animator and the frame rate that drives it. They are started
// together but never synchronized.
type TimerManager struct {
	Title         *windowTitle
	Countdown     *countdown.Timer
	Part          *animator.Handle
	Animator      *animator.Animator
	FrameInterval time.Duration
}

func NewTimerManager(titleLabel string, fps int) TimerManager {
	if titleLabel == "" {
		titleLabel = config.DefaultTitle
	}
	title := newWindowTitle(titleLabel)
	part := &animator.Handle{}
	return TimerManager{
		Title:         title,
		Countdown:     countdown.New(title, titleLabel),
		Part:          part,
		Animator:      animator.New(part),
		FrameInterval: config.FrameInterval(fps),
	}
}

// Teardown stops the countdown and drops the tween in flight.
func (t TimerManager) Teardown() {
	t.Countdown.Stop()
	t.Animator.Cancel()
}
