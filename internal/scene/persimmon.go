package scene

import "math"

// Procedural persimmon proportions, in model units. bodyHeight is the half
// height of the squashed body and lidCut the height where the lid separates.
const (
	bodyRadius  = 1.0
	bodyHeight  = 0.8
	lobeDepth   = 0.05
	lidCut      = 0.45
	leafLength  = 0.55
	leafWidth   = 0.22
	stemRadius  = 0.06
	stemHeight  = 0.2
	latSamples  = 40
	lonSamples  = 80
	ringSamples = 12
	leafSamples = 14
)

// NewPersimmon builds the default asset: the lid with calyx and stem as the
// top part, the rest of the fruit as the bottom part.
func NewPersimmon() *Scene {
	top := &Node{Name: "top", Position: V(0, lidCut, 0)}
	bottom := &Node{Name: "bottom"}

	lidOrigin := V(0, lidCut, 0)
	for i := 0; i <= latSamples; i++ {
		theta := math.Pi * float64(i) / latSamples
		for j := 0; j < lonSamples; j++ {
			phi := 2 * math.Pi * float64(j) / lonSamples
			p := bodyPoint(theta, phi)
			if p.Pos.Y >= lidCut {
				p.Pos = p.Pos.Sub(lidOrigin)
				top.Points = append(top.Points, p)
			} else {
				bottom.Points = append(bottom.Points, p)
			}
		}
	}

	// Flat faces on both sides of the cut.
	cutRadius := bodyRadius * math.Sqrt(1-(lidCut*lidCut)/(bodyHeight*bodyHeight))
	for _, p := range disc(cutRadius) {
		bottom.Points = append(bottom.Points, Point{Pos: p.Add(lidOrigin), Normal: V(0, 1, 0)})
		top.Points = append(top.Points, Point{Pos: p, Normal: V(0, -1, 0)})
	}

	capTop := bodyHeight - lidCut
	top.Points = append(top.Points, calyx(capTop)...)
	top.Points = append(top.Points, stem(capTop)...)
	return New(top, bottom)
}

func bodyPoint(theta, phi float64) Point {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	r := bodyRadius * (1 + lobeDepth*math.Cos(4*phi))
	pos := V(r*st*cp, bodyHeight*ct, r*st*sp)
	normal := V(pos.X/(r*r), pos.Y/(bodyHeight*bodyHeight), pos.Z/(r*r)).Normalize()
	return Point{Pos: pos, Normal: normal}
}

func disc(radius float64) []Vec3 {
	var out []Vec3
	for ring := 0; ring <= ringSamples; ring++ {
		r := radius * float64(ring) / ringSamples
		count := 1 + ring*6
		for k := 0; k < count; k++ {
			a := 2 * math.Pi * float64(k) / float64(count)
			out = append(out, V(r*math.Cos(a), 0, r*math.Sin(a)))
		}
	}
	return out
}

// calyx lays four leaves flat over the top of the lid.
func calyx(height float64) []Point {
	var out []Point
	for leaf := 0; leaf < 4; leaf++ {
		angle := math.Pi/4 + float64(leaf)*math.Pi/2
		dir := V(math.Cos(angle), 0, math.Sin(angle))
		side := V(-dir.Z, 0, dir.X)
		for i := 0; i <= leafSamples; i++ {
			t := float64(i) / leafSamples
			half := leafWidth * math.Sin(math.Pi*t) / 2
			for j := -3; j <= 3; j++ {
				offset := half * float64(j) / 3
				droop := 0.12 * t * t
				pos := dir.Scale(t * leafLength).Add(side.Scale(offset)).Add(V(0, height+0.02-droop, 0))
				out = append(out, Point{Pos: pos, Normal: V(0, 1, 0).Add(dir.Scale(0.25 * t)).Normalize()})
			}
		}
	}
	return out
}

func stem(height float64) []Point {
	var out []Point
	for i := 0; i <= 4; i++ {
		y := height + stemHeight*float64(i)/4
		for k := 0; k < 10; k++ {
			a := 2 * math.Pi * float64(k) / 10
			n := V(math.Cos(a), 0, math.Sin(a))
			out = append(out, Point{Pos: n.Scale(stemRadius).Add(V(0, y, 0)), Normal: n})
		}
	}
	out = append(out, Point{Pos: V(0, height+stemHeight, 0), Normal: V(0, 1, 0)})
	return out
}
