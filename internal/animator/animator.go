// Package animator plays the open and close tweens on the model's top part.
//
// Tweens are driven by the caller's frame messages. Every tween request bumps
// the animator's epoch, and a frame carrying an older epoch is discarded
// without touching the part, so a superseded tween can never write again.
package animator

import (
	"math"
	"time"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/akyairhashvil/persimmon/internal/util"
)

// Kind names the tween in flight.
type Kind int

const (
	// KindNone means no tween is in flight.
	KindNone Kind = iota
	// KindOpen lifts and turns the part.
	KindOpen
	// KindClose turns the part back to zero rotation.
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	default:
		return "none"
	}
}

// StepResult tells the caller whether to schedule another frame.
type StepResult int

const (
	// StepStale means the frame belongs to a superseded tween.
	StepStale StepResult = iota
	// StepRunning means the tween needs another frame.
	StepRunning
	// StepDone means the tween wrote its targets and ended.
	StepDone
)

type tween struct {
	kind     Kind
	start    time.Time
	duration time.Duration
	fromPos  scene.Vec3
	toPos    scene.Vec3
	fromRot  scene.Vec3
	toRot    scene.Vec3
	movesPos bool
}

func (t *tween) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	return util.Clamp(float64(now.Sub(t.start))/float64(t.duration), 0, 1)
}

func (t *tween) apply(n *scene.Node, p float64) {
	if t.movesPos {
		n.Position = scene.Lerp(t.fromPos, t.toPos, p)
	}
	n.Rotation = scene.Lerp(t.fromRot, t.toRot, p)
}

// Animator runs at most one tween against the handle's part.
type Animator struct {
	handle       *Handle
	lift         scene.Vec3
	openRotation scene.Vec3
	openDuration time.Duration
	epoch        uint64
	active       *tween
}

// New returns an animator for the part behind h.
func New(h *Handle) *Animator {
	return &Animator{
		handle:       h,
		lift:         scene.V(0, config.LiftHeight, 0),
		openRotation: scene.V(0, config.OpenYawDegrees*math.Pi/180, 0),
		openDuration: config.OpenDuration,
	}
}

// Open starts the fixed-length lift and turn. It is a no-op returning false
// when no part is bound.
func (a *Animator) Open(now time.Time) (uint64, bool) {
	node, ok := a.handle.Node()
	if !ok {
		return a.epoch, false
	}
	a.epoch++
	a.active = &tween{
		kind:     KindOpen,
		start:    now,
		duration: a.openDuration,
		fromPos:  node.Position,
		toPos:    a.handle.Rest().Add(a.lift),
		fromRot:  node.Rotation,
		toRot:    a.openRotation,
		movesPos: true,
	}
	return a.epoch, true
}

// Close starts turning the part back to zero rotation over minutes. An open
// tween still in flight is first completed at its targets, so the close
// always starts where the open ends.
func (a *Animator) Close(now time.Time, minutes int) (uint64, bool) {
	node, ok := a.handle.Node()
	if !ok || minutes <= 0 || minutes > config.MaxDurationMinutes {
		return a.epoch, false
	}
	if a.active != nil && a.active.kind == KindOpen {
		a.active.apply(node, 1)
	}
	a.epoch++
	a.active = &tween{
		kind:     KindClose,
		start:    now,
		duration: time.Duration(minutes) * time.Minute,
		fromRot:  node.Rotation,
		toRot:    scene.Vec3{},
	}
	return a.epoch, true
}

// Step samples the tween started with epoch at now and writes the part.
func (a *Animator) Step(epoch uint64, now time.Time) StepResult {
	if epoch != a.epoch || a.active == nil {
		return StepStale
	}
	node, ok := a.handle.Node()
	if !ok {
		a.active = nil
		return StepStale
	}
	p := a.active.progress(now)
	a.active.apply(node, p)
	if p >= 1 {
		a.active = nil
		return StepDone
	}
	return StepRunning
}

// Cancel drops the tween in flight, leaving the part where it is.
func (a *Animator) Cancel() {
	a.epoch++
	a.active = nil
}

// Progress of the tween in flight at now, or 0 when idle.
func (a *Animator) Progress(now time.Time) float64 {
	if a.active == nil {
		return 0
	}
	return a.active.progress(now)
}

// Active reports whether a tween is in flight.
func (a *Animator) Active() bool { return a.active != nil }

// Epoch identifies the latest tween request.
func (a *Animator) Epoch() uint64 { return a.epoch }

// Kind of the tween in flight.
func (a *Animator) Kind() Kind {
	if a.active == nil {
		return KindNone
	}
	return a.active.kind
}
