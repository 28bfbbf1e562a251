package scene

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	// ErrTooFewParts is returned when the asset's scene has fewer than two
	// top-level nodes.
	ErrTooFewParts = errors.New("asset needs at least two top-level nodes")
	// ErrNoScene is returned when the asset defines no scene.
	ErrNoScene = errors.New("asset has no scene")
)

// maxPartPoints caps the samples kept per part; denser meshes are strided.
const maxPartPoints = 20000

// LoadError reports a failed asset load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load builds the procedural persimmon when path is empty and reads the
// glTF/GLB file at path otherwise.
func Load(path string) (*Scene, error) {
	if path == "" {
		return NewPersimmon(), nil
	}
	return LoadGLTF(path)
}

// LoadGLTF reads a .gltf or .glb asset. The first two top-level nodes of its
// default scene become the top and bottom parts. Each part keeps its own
// translation as Position; its rotation, scale and all descendant meshes are
// baked into its points.
func LoadGLTF(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = int(*doc.Scene)
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		return nil, &LoadError{Path: path, Err: ErrNoScene}
	}
	roots := doc.Scenes[sceneIdx].Nodes
	if len(roots) < 2 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: found %d", ErrTooFewParts, len(roots))}
	}

	parts := make([]*Node, 2)
	for i := range parts {
		node, err := buildPart(doc, int(roots[i]))
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		parts[i] = node
	}
	if parts[0].Name == "" {
		parts[0].Name = "top"
	}
	if parts[1].Name == "" {
		parts[1].Name = "bottom"
	}
	s := New(parts[0], parts[1])
	s.Camera.Target = modelCenter(parts)
	return s, nil
}

func buildPart(doc *gltf.Document, idx int) (*Node, error) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("node %d out of range", idx)
	}
	src := doc.Nodes[idx]
	own := nodeTransform(src)
	part := &Node{
		Name:     src.Name,
		Position: own.translation,
	}
	own.translation = Vec3{}

	var points []Point
	if err := collectPoints(doc, idx, own, &points, 0); err != nil {
		return nil, fmt.Errorf("node %q: %w", src.Name, err)
	}
	part.Points = stride(points, maxPartPoints)
	return part, nil
}

// transform is a glTF TRS transform.
type transform struct {
	translation Vec3
	rotation    quat
	scale       Vec3
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// nodeTransform reads a node's TRS properties, or decomposes its matrix when
// one is set. A zero or identity matrix means the node uses TRS.
func nodeTransform(n *gltf.Node) transform {
	var m [16]float64
	for i, v := range n.Matrix {
		m[i] = float64(v)
	}
	if m != ([16]float64{}) && m != identityMatrix {
		return matrixTransform(m)
	}

	r := n.Rotation
	s := n.Scale
	tr := transform{
		translation: V(float64(n.Translation[0]), float64(n.Translation[1]), float64(n.Translation[2])),
		rotation:    quat{float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3])},
		scale:       V(float64(s[0]), float64(s[1]), float64(s[2])),
	}
	if tr.scale.IsZero() {
		tr.scale = V(1, 1, 1)
	}
	return tr
}

// matrixTransform decomposes a column-major affine matrix into TRS. A
// mirroring matrix keeps its reflection in a negative x scale; shear is lost.
func matrixTransform(m [16]float64) transform {
	cols := [3]Vec3{
		V(m[0], m[1], m[2]),
		V(m[4], m[5], m[6]),
		V(m[8], m[9], m[10]),
	}
	scale := V(cols[0].Len(), cols[1].Len(), cols[2].Len())
	if cols[0].Cross(cols[1]).Dot(cols[2]) < 0 {
		scale.X = -scale.X
	}
	tr := transform{
		translation: V(m[12], m[13], m[14]),
		scale:       scale,
	}
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return tr
	}
	cols[0] = cols[0].Scale(1 / scale.X)
	cols[1] = cols[1].Scale(1 / scale.Y)
	cols[2] = cols[2].Scale(1 / scale.Z)
	tr.rotation = quatFromBasis(cols)
	return tr
}

// quatFromBasis converts the columns of a rotation matrix to a quaternion.
func quatFromBasis(c [3]Vec3) quat {
	r00, r10, r20 := c[0].X, c[0].Y, c[0].Z
	r01, r11, r21 := c[1].X, c[1].Y, c[1].Z
	r02, r12, r22 := c[2].X, c[2].Y, c[2].Z

	switch trace := r00 + r11 + r22; {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return quat{(r21 - r12) * s, (r02 - r20) * s, (r10 - r01) * s, 0.25 / s}
	case r00 > r11 && r00 > r22:
		s := 2 * math.Sqrt(1+r00-r11-r22)
		return quat{0.25 * s, (r01 + r10) / s, (r02 + r20) / s, (r21 - r12) / s}
	case r11 > r22:
		s := 2 * math.Sqrt(1+r11-r00-r22)
		return quat{(r01 + r10) / s, 0.25 * s, (r12 + r21) / s, (r02 - r20) / s}
	default:
		s := 2 * math.Sqrt(1+r22-r00-r11)
		return quat{(r02 + r20) / s, (r12 + r21) / s, 0.25 * s, (r10 - r01) / s}
	}
}

func (t transform) point(v Vec3) Vec3 {
	return t.rotation.rotate(v.Mul(t.scale)).Add(t.translation)
}

func (t transform) normal(v Vec3) Vec3 {
	return t.rotation.rotate(v).Normalize()
}

// collectPoints appends the mesh samples of node idx and its descendants,
// mapped through chain into the part's local space.
func collectPoints(doc *gltf.Document, idx int, chain transform, out *[]Point, depth int) error {
	if depth > 32 {
		return errors.New("node hierarchy too deep")
	}
	n := doc.Nodes[idx]
	if n.Mesh != nil {
		pts, err := meshPoints(doc, int(*n.Mesh))
		if err != nil {
			return err
		}
		for _, p := range pts {
			*out = append(*out, Point{Pos: chain.point(p.Pos), Normal: chain.normal(p.Normal)})
		}
	}
	for _, child := range n.Children {
		c := int(child)
		if c < 0 || c >= len(doc.Nodes) {
			continue
		}
		local := nodeTransform(doc.Nodes[c])
		next := compose(chain, local)
		if err := collectPoints(doc, c, next, out, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// compose returns a transform equivalent to applying inner then outer.
// Non-uniform scale under rotation is approximated.
func compose(outer, inner transform) transform {
	return transform{
		translation: outer.point(inner.translation),
		rotation:    mulQuat(outer.rotation, inner.rotation),
		scale:       outer.scale.Mul(inner.scale),
	}
}

func mulQuat(a, b quat) quat {
	if a == (quat{}) {
		return b
	}
	if b == (quat{}) {
		return a
	}
	return quat{
		a[3]*b[0] + a[0]*b[3] + a[1]*b[2] - a[2]*b[1],
		a[3]*b[1] - a[0]*b[2] + a[1]*b[3] + a[2]*b[0],
		a[3]*b[2] + a[0]*b[1] - a[1]*b[0] + a[2]*b[3],
		a[3]*b[3] - a[0]*b[0] - a[1]*b[1] - a[2]*b[2],
	}
}

func meshPoints(doc *gltf.Document, meshIdx int) ([]Point, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", meshIdx)
	}
	var out []Point
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		posAcc, err := accessor(doc, int(posIdx))
		if err != nil {
			return nil, err
		}
		positions, err := modeler.ReadPosition(doc, posAcc, nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}
		var normals [][3]float32
		if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normAcc, err := accessor(doc, int(nIdx))
			if err != nil {
				return nil, err
			}
			normals, err = modeler.ReadNormal(doc, normAcc, nil)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
		}
		center := centroid(positions)
		for i, p := range positions {
			pos := V(float64(p[0]), float64(p[1]), float64(p[2]))
			var normal Vec3
			if i < len(normals) {
				n := normals[i]
				normal = V(float64(n[0]), float64(n[1]), float64(n[2])).Normalize()
			} else {
				normal = pos.Sub(center).Normalize()
			}
			out = append(out, Point{Pos: pos, Normal: normal})
		}
	}
	return out, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

func centroid(positions [][3]float32) Vec3 {
	if len(positions) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range positions {
		sum = sum.Add(V(float64(p[0]), float64(p[1]), float64(p[2])))
	}
	return sum.Scale(1 / float64(len(positions)))
}

func modelCenter(parts []*Node) Vec3 {
	var sum Vec3
	count := 0
	for _, part := range parts {
		for _, p := range part.Points {
			sum = sum.Add(part.World(p).Pos)
			count++
		}
	}
	if count == 0 {
		return Vec3{}
	}
	return sum.Scale(1 / float64(count))
}

func stride(points []Point, max int) []Point {
	if len(points) <= max {
		return points
	}
	step := (len(points) + max - 1) / max
	out := make([]Point, 0, max)
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	return out
}

// IsAssetPath reports whether path names a file LoadGLTF understands.
func IsAssetPath(path string) bool {
	switch filepath.Ext(path) {
	case ".gltf", ".glb":
		return true
	}
	return false
}
