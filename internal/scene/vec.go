package scene

import "math"

// Vec3 is a position, direction or XYZ Euler rotation in radians.
type Vec3 struct {
	X, Y, Z float64
}

func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }
func (v Vec3) IsZero() bool { return v == Vec3{} }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns the unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp interpolates linearly; t=0 yields a and t=1 yields b exactly.
func Lerp(a, b Vec3, t float64) Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// RotateEuler applies an XYZ-order Euler rotation: Z first, then Y, then X.
func (v Vec3) RotateEuler(r Vec3) Vec3 {
	out := v
	if r.Z != 0 {
		s, c := math.Sincos(r.Z)
		out = Vec3{out.X*c - out.Y*s, out.X*s + out.Y*c, out.Z}
	}
	if r.Y != 0 {
		s, c := math.Sincos(r.Y)
		out = Vec3{out.X*c + out.Z*s, out.Y, -out.X*s + out.Z*c}
	}
	if r.X != 0 {
		s, c := math.Sincos(r.X)
		out = Vec3{out.X, out.Y*c - out.Z*s, out.Y*s + out.Z*c}
	}
	return out
}

// quat is a unit quaternion in glTF order (x, y, z, w).
type quat [4]float64

func (q quat) rotate(v Vec3) Vec3 {
	if q == (quat{}) {
		return v
	}
	u := Vec3{q[0], q[1], q[2]}
	w := q[3]
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(w)).Add(u.Cross(t))
}
