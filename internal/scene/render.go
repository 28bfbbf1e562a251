package scene

import (
	"math"
	"strings"
)

// Ramp orders cell glyphs from darkest to brightest.
const Ramp = ".,-~:;=!*#$@"

const nearPlane = 0.1

// NoPart marks an empty cell.
const NoPart = -1

// Cell is one character of a rendered frame.
type Cell struct {
	Glyph rune
	Part  int // index into Scene.Parts, or NoPart
}

// Frame is a rendered character grid.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// Render projects every part's points into a width x height character grid.
// Terminal cells are about twice as tall as they are wide, so horizontal
// coordinates are stretched by two.
func Render(s *Scene, width, height int) Frame {
	f := newFrame(width, height)
	if s == nil || width <= 0 || height <= 0 {
		return f
	}

	eye := s.Camera.Eye()
	right, up, forward := s.Camera.basis()
	focal := 1 / math.Tan(s.Camera.FOV*math.Pi/360)
	halfH := float64(height) / 2
	halfW := float64(width) / 2
	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = math.Inf(1)
	}

	for partIdx, node := range s.Parts() {
		for _, local := range node.Points {
			p := node.World(local)
			d := p.Pos.Sub(eye)
			if p.Normal.Dot(d) > 0 {
				continue // facing away
			}
			z := d.Dot(forward)
			if z <= nearPlane {
				continue
			}
			nx := d.Dot(right) * focal / z
			ny := d.Dot(up) * focal / z
			col := int(math.Round(halfW + nx*halfH*2))
			row := int(math.Round(halfH - ny*halfH))
			if col < 0 || col >= width || row < 0 || row >= height {
				continue
			}
			idx := row*width + col
			if z >= depth[idx] {
				continue
			}
			depth[idx] = z
			f.Cells[row][col] = Cell{Glyph: shade(s.Light, p.Normal), Part: partIdx}
		}
	}
	return f
}

func newFrame(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for r := range cells {
		row := make([]Cell, width)
		for c := range row {
			row[c] = Cell{Glyph: ' ', Part: NoPart}
		}
		cells[r] = row
	}
	return Frame{Width: width, Height: height, Cells: cells}
}

func shade(l Light, normal Vec3) rune {
	lum := l.Ambient + l.Intensity*math.Max(0, normal.Normalize().Dot(l.Direction))
	peak := l.Ambient + l.Intensity
	if peak <= 0 {
		return rune(Ramp[0])
	}
	idx := int(math.Round(lum / peak * float64(len(Ramp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Ramp) {
		idx = len(Ramp) - 1
	}
	return rune(Ramp[idx])
}

// Lines returns the frame as plain text rows.
func (f Frame) Lines() []string {
	lines := make([]string, len(f.Cells))
	for r, row := range f.Cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Glyph)
		}
		lines[r] = b.String()
	}
	return lines
}

// Coverage counts the cells drawn by part.
func (f Frame) Coverage(part int) int {
	n := 0
	for _, row := range f.Cells {
		for _, c := range row {
			if c.Part == part {
				n++
			}
		}
	}
	return n
}
