package animator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/akyairhashvil/persimmon/internal/testutil"
)

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func boundAnimator(t *testing.T, rest scene.Vec3) (*Animator, *scene.Node) {
	t.Helper()
	node := testutil.NewNode().WithPosition(rest).Build()
	h := &Handle{}
	require.NoError(t, h.Bind(node))
	return New(h), node
}

func TestHandleBindOnce(t *testing.T) {
	h := &Handle{}
	_, ok := h.Node()
	assert.False(t, ok)

	assert.True(t, errors.Is(h.Bind(nil), ErrNilPart))

	first := testutil.NewNode().WithPosition(scene.V(0, 1, 0)).Build()
	require.NoError(t, h.Bind(first))
	assert.True(t, errors.Is(h.Bind(testutil.NewNode().Build()), ErrAlreadyBound))

	n, ok := h.Node()
	require.True(t, ok)
	assert.Same(t, first, n)
	assert.Equal(t, scene.V(0, 1, 0), h.Rest())
}

func TestTweensAreNoOpWithoutPart(t *testing.T) {
	a := New(&Handle{})
	_, ok := a.Open(t0)
	assert.False(t, ok)
	_, ok = a.Close(t0, 5)
	assert.False(t, ok)
	assert.False(t, a.Active())
	assert.Equal(t, StepStale, a.Step(a.Epoch(), t0))
}

func TestOpenInterpolatesLinearly(t *testing.T) {
	rest := scene.V(0, 0.45, 0)
	a, node := boundAnimator(t, rest)

	epoch, ok := a.Open(t0)
	require.True(t, ok)
	assert.Equal(t, KindOpen, a.Kind())

	finalPos := rest.Add(scene.V(0, config.LiftHeight, 0))
	finalYaw := math.Pi / 2

	checkpoints := []struct {
		at       time.Duration
		progress float64
		result   StepResult
	}{
		{0, 0, StepRunning},
		{config.OpenDuration / 2, 0.5, StepRunning},
		{config.OpenDuration, 1, StepDone},
	}
	for _, cp := range checkpoints {
		now := t0.Add(cp.at)
		assert.InDelta(t, cp.progress, a.Progress(now), 1e-9)
		require.Equal(t, cp.result, a.Step(epoch, now))
		assert.InDelta(t, rest.Y+(finalPos.Y-rest.Y)*cp.progress, node.Position.Y, 1e-9)
		assert.InDelta(t, finalYaw*cp.progress, node.Rotation.Y, 1e-9)
	}

	assert.Equal(t, finalPos, node.Position, "exact target at progress 1")
	assert.Equal(t, scene.V(0, finalYaw, 0), node.Rotation)
	assert.False(t, a.Active())
	assert.Equal(t, StepStale, a.Step(epoch, t0.Add(3*time.Second)))
}

func TestProgressClamped(t *testing.T) {
	a, _ := boundAnimator(t, scene.Vec3{})
	a.Open(t0)
	assert.Zero(t, a.Progress(t0.Add(-time.Second)))
	assert.Equal(t, 1.0, a.Progress(t0.Add(time.Hour)))
}

func TestCloseRotatesBackOverMinutes(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	node.Rotation = scene.V(0, math.Pi/2, 0)
	node.Position = scene.V(0, 0.6, 0)

	epoch, ok := a.Close(t0, 15)
	require.True(t, ok)
	assert.Equal(t, KindClose, a.Kind())

	require.Equal(t, StepRunning, a.Step(epoch, t0.Add(450*time.Second)))
	assert.InDelta(t, math.Pi/4, node.Rotation.Y, 1e-9)
	assert.Equal(t, scene.V(0, 0.6, 0), node.Position, "close leaves position alone")

	require.Equal(t, StepDone, a.Step(epoch, t0.Add(15*time.Minute)))
	assert.Equal(t, scene.Vec3{}, node.Rotation)
}

func TestCloseRejectsOutOfRangeMinutes(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	node.Rotation = scene.V(0, math.Pi/2, 0)

	for _, minutes := range []int{0, -5, config.MaxDurationMinutes + 1, 200000000} {
		_, ok := a.Close(t0, minutes)
		assert.False(t, ok, "minutes=%d", minutes)
	}
	assert.False(t, a.Active())
	assert.Equal(t, scene.V(0, math.Pi/2, 0), node.Rotation)
}

func TestCloseLongestDurationRunsFullLength(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	node.Rotation = scene.V(0, math.Pi/2, 0)

	epoch, ok := a.Close(t0, config.MaxDurationMinutes)
	require.True(t, ok)
	require.Equal(t, StepRunning, a.Step(epoch, t0.Add(time.Second)))
	assert.InDelta(t, math.Pi/2, node.Rotation.Y, 1e-4)
	require.Equal(t, StepRunning, a.Step(epoch, t0.Add(12*time.Hour)))
	assert.InDelta(t, math.Pi/4, node.Rotation.Y, 1e-9)
}

func TestCloseCompletesOpenInFlight(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	openEpoch, _ := a.Open(t0)
	a.Step(openEpoch, t0.Add(500*time.Millisecond))

	closeEpoch, ok := a.Close(t0.Add(2*time.Second), 5)
	require.True(t, ok)
	assert.Equal(t, scene.V(0, math.Pi/2, 0), node.Rotation)
	assert.Equal(t, scene.V(0, config.LiftHeight, 0), node.Position)

	assert.Equal(t, StepStale, a.Step(openEpoch, t0.Add(2*time.Second)), "late open frame is discarded")
	assert.Equal(t, scene.V(0, math.Pi/2, 0), node.Rotation)
	assert.Equal(t, StepRunning, a.Step(closeEpoch, t0.Add(3*time.Second)))
}

func TestNewOpenSupersedesPrevious(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	first, _ := a.Open(t0)
	a.Step(first, t0.Add(time.Second))

	second, _ := a.Open(t0.Add(time.Second))
	require.Greater(t, second, first)
	before := *node
	assert.Equal(t, StepStale, a.Step(first, t0.Add(1500*time.Millisecond)))
	assert.Equal(t, before, *node)
}

func TestCancel(t *testing.T) {
	a, node := boundAnimator(t, scene.Vec3{})
	epoch, _ := a.Open(t0)
	a.Step(epoch, t0.Add(time.Second))
	pos := node.Position

	a.Cancel()
	assert.False(t, a.Active())
	assert.Equal(t, KindNone, a.Kind())
	assert.Equal(t, StepStale, a.Step(epoch, t0.Add(2*time.Second)))
	assert.Equal(t, pos, node.Position)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "open", KindOpen.String())
	assert.Equal(t, "close", KindClose.String())
	assert.Equal(t, "none", KindNone.String())
}
