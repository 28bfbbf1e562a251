package scene

// Point is one sample of a part's surface in the part's local space.
type Point struct {
	Pos    Vec3
	Normal Vec3
}

// Node is a detachable part of the model. Only Position and Rotation are
// ever animated; Points are fixed once the asset is built.
type Node struct {
	Name     string
	Position Vec3
	Rotation Vec3
	Points   []Point
}

// World transforms p from local to world space.
func (n *Node) World(p Point) Point {
	return Point{
		Pos:    p.Pos.RotateEuler(n.Rotation).Add(n.Position),
		Normal: p.Normal.RotateEuler(n.Rotation),
	}
}

// Camera orbits Target at Distance. Yaw 0 looks down -Z.
type Camera struct {
	Target   Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64 // vertical, degrees
}

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient   float64
	Direction Vec3 // towards the light
	Intensity float64
}

// Scene owns the two parts for as long as it is rendered.
type Scene struct {
	Top    *Node
	Bottom *Node
	Camera Camera
	Light  Light
}

// New composes top and bottom with the default camera and lights.
func New(top, bottom *Node) *Scene {
	return &Scene{
		Top:    top,
		Bottom: bottom,
		Camera: DefaultCamera(),
		Light:  DefaultLight(),
	}
}

// Parts returns the parts in draw order. Index 0 is the top.
func (s *Scene) Parts() []*Node {
	var parts []*Node
	if s.Top != nil {
		parts = append(parts, s.Top)
	}
	if s.Bottom != nil {
		parts = append(parts, s.Bottom)
	}
	return parts
}
