package scene

import (
	"math"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/util"
)

const maxPitch = 85 * math.Pi / 180

// DefaultCamera looks at the origin from (0, 2, 5).
func DefaultCamera() Camera {
	eye := V(config.CameraEyeX, config.CameraEyeY, config.CameraEyeZ)
	dist := eye.Len()
	return Camera{
		Yaw:      math.Atan2(eye.X, eye.Z),
		Pitch:    math.Asin(eye.Y / dist),
		Distance: dist,
		FOV:      config.CameraFOV,
	}
}

// DefaultLight is a soft ambient fill plus one directional light.
func DefaultLight() Light {
	return Light{
		Ambient:   config.AmbientLight,
		Direction: V(config.DirectionalX, config.DirectionalY, config.DirectionalZ).Normalize(),
		Intensity: config.DirectionalGain,
	}
}

// Eye is the camera position in world space.
func (c Camera) Eye() Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(V(
		c.Distance*cp*math.Sin(c.Yaw),
		c.Distance*math.Sin(c.Pitch),
		c.Distance*cp*math.Cos(c.Yaw),
	))
}

// Orbit turns the camera around the target. Angles are radians.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = util.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target by factor.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = util.Clamp(c.Distance*factor, config.MinCameraDist, config.MaxCameraDist)
}

// Reset restores the default orbit around the current target.
func (c *Camera) Reset() {
	target := c.Target
	*c = DefaultCamera()
	c.Target = target
}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Eye()).Normalize()
	right = forward.Cross(V(0, 1, 0)).Normalize()
	if right.IsZero() {
		right = V(1, 0, 0)
	}
	up = right.Cross(forward)
	return right, up, forward
}
