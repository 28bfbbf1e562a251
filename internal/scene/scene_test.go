package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/persimmon/internal/config"
)

func TestNewPersimmonParts(t *testing.T) {
	s := NewPersimmon()
	require.NotNil(t, s.Top)
	require.NotNil(t, s.Bottom)
	assert.Equal(t, []*Node{s.Top, s.Bottom}, s.Parts())
	assert.NotEmpty(t, s.Top.Points)
	assert.NotEmpty(t, s.Bottom.Points)
	assert.Equal(t, Vec3{}, s.Top.Rotation)
	assert.Greater(t, s.Top.Position.Y, 0.0)

	for _, p := range s.Bottom.Points {
		require.LessOrEqual(t, p.Pos.Y, lidCut+eps)
	}
}

func TestDefaultCameraMatchesEye(t *testing.T) {
	c := DefaultCamera()
	assertVec(t, V(config.CameraEyeX, config.CameraEyeY, config.CameraEyeZ), c.Eye())
	assert.Equal(t, config.CameraFOV, c.FOV)
}

func TestCameraOrbitClampsPitch(t *testing.T) {
	c := DefaultCamera()
	c.Orbit(0, math.Pi)
	assert.InDelta(t, maxPitch, c.Pitch, eps)
	c.Orbit(0, -3*math.Pi)
	assert.InDelta(t, -maxPitch, c.Pitch, eps)
}

func TestCameraZoomClamps(t *testing.T) {
	c := DefaultCamera()
	c.Zoom(100)
	assert.Equal(t, config.MaxCameraDist, c.Distance)
	c.Zoom(0.001)
	assert.Equal(t, config.MinCameraDist, c.Distance)
	c.Zoom(-1)
	assert.Equal(t, config.MinCameraDist, c.Distance)

	c.Target = V(1, 1, 1)
	c.Reset()
	assert.Equal(t, V(1, 1, 1), c.Target)
	assert.Equal(t, DefaultCamera().Distance, c.Distance)
}

func TestRenderDrawsBothParts(t *testing.T) {
	s := NewPersimmon()
	f := Render(s, 60, 24)
	require.Len(t, f.Cells, 24)
	require.Len(t, f.Lines()[0], 60)
	assert.Positive(t, f.Coverage(0), "top part")
	assert.Positive(t, f.Coverage(1), "bottom part")
}

func TestRenderFollowsTopTransform(t *testing.T) {
	s := NewPersimmon()
	before := Render(s, 60, 24).Coverage(0)
	s.Top.Position = s.Top.Position.Add(V(0, 50, 0))
	after := Render(s, 60, 24).Coverage(0)
	assert.Positive(t, before)
	assert.Zero(t, after, "top part moved out of view")
}

func TestRenderDegenerateSizes(t *testing.T) {
	assert.Empty(t, Render(NewPersimmon(), 0, 10).Lines()[0])
	assert.Empty(t, Render(nil, 10, 0).Cells)
}

func TestShadeBounds(t *testing.T) {
	l := DefaultLight()
	assert.Equal(t, rune(Ramp[len(Ramp)-1]), shade(l, l.Direction))
	assert.Contains(t, Ramp, string(shade(l, l.Direction.Scale(-1))))
}
