package kernel

import (
	"math"
)

// Cell is a convex hexahedron given by its eight corners. Corner i sits at
// local offset (i&1, i>>1&1, i>>2&1) of the box it was created from, so
// edges from corner 0 run along the box's local X, Y and Z axes.
type Cell [8]Vec3

// edges returns the three edge vectors leaving corner 0
func (c Cell) edges() (u, v, w Vec3) {
	return c[1].Sub(c[0]), c[2].Sub(c[0]), c[4].Sub(c[0])
}

// Volume is the volume of the cell. Cells only ever come from rigidly
// transformed boxes, so they stay rectangular parallelepipeds.
func (c Cell) Volume() float64 {
	u, v, w := c.edges()
	return math.Abs(u.Dot(v.Cross(w)))
}

// Degenerate reports whether the cell has no interior
func (c Cell) Degenerate() bool {
	for _, p := range c {
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
		}
	}
	return c.Volume() <= 1e-12
}

// Contains reports whether p lies inside the cell or on its boundary
func (c Cell) Contains(p Vec3) bool {
	const eps = 1e-9
	d := p.Sub(c[0])
	u, v, w := c.edges()
	for _, e := range []Vec3{u, v, w} {
		t := d.Dot(e) / e.LenSqr()
		if t < -eps || t > 1+eps {
			return false
		}
	}
	return true
}

// Faces returns the six faces as corner index quads, ordered so the
// right-hand normal points out of the cell
func (c Cell) Faces() [6][4]int {
	faces := [6][4]int{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
	}
	u, v, w := c.edges()
	if u.Dot(v.Cross(w)) < 0 {
		// mirrored cell: reverse winding
		for i := range faces {
			faces[i][1], faces[i][3] = faces[i][3], faces[i][1]
		}
	}
	return faces
}

// Edges returns the twelve edges as corner index pairs
func (c Cell) Edges() [12][2]int {
	return [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along local X
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along local Y
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along local Z
	}
}

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min Vec3
	Max Vec3
}

// Size returns the extents of the box
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p is inside the box
func (b Bounds) Contains(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func (c Cell) bounds() Bounds {
	b := Bounds{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = math.Min(b.Min[i], p[i])
			b.Max[i] = math.Max(b.Max[i], p[i])
		}
	}
	return b
}

// Solid is a closed volume made of one or more cells. Its point set is the
// union of its cells. Solids are immutable once built.
type Solid struct {
	id    string
	cells []Cell
}

// ID identifies the solid in diagnostics
func (s *Solid) ID() string {
	if s == nil {
		return "<nil>"
	}
	return s.id
}

// Cells returns a copy of the cells making up the solid
func (s *Solid) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// NumCells returns the number of cells
func (s *Solid) NumCells() int {
	return len(s.cells)
}

// IsEmpty reports whether the solid has no cells
func (s *Solid) IsEmpty() bool {
	return s == nil || len(s.cells) == 0
}

// Bounds returns the axis-aligned bounding box of the solid
func (s *Solid) Bounds() Bounds {
	if s.IsEmpty() {
		return Bounds{}
	}
	b := s.cells[0].bounds()
	for _, c := range s.cells[1:] {
		cb := c.bounds()
		for i := 0; i < 3; i++ {
			b.Min[i] = math.Min(b.Min[i], cb.Min[i])
			b.Max[i] = math.Max(b.Max[i], cb.Max[i])
		}
	}
	return b
}

// CellVolume is the sum of the cell volumes. It equals the solid volume
// when no two cells overlap.
func (s *Solid) CellVolume() float64 {
	var v float64
	for _, c := range s.cells {
		v += c.Volume()
	}
	return v
}

// Contains reports whether p lies in the solid
func (s *Solid) Contains(p Vec3) bool {
	for _, c := range s.cells {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

// Volume estimates the volume of the solid by sampling a res×res×res grid
// of cell-centred points over its bounding box. Overlapping cells are
// counted once, and the estimate depends only on the point set, not on the
// order in which the solid was assembled.
func (s *Solid) Volume(res int) float64 {
	if s.IsEmpty() || res <= 0 {
		return 0
	}
	b := s.Bounds()
	size := b.Size()
	step := Vec3{size[0] / float64(res), size[1] / float64(res), size[2] / float64(res)}

	cellBounds := make([]Bounds, len(s.cells))
	for i, c := range s.cells {
		cellBounds[i] = c.bounds()
	}

	var inside int
	var p Vec3
	for i := 0; i < res; i++ {
		p[0] = b.Min[0] + (float64(i)+0.5)*step[0]
		for j := 0; j < res; j++ {
			p[1] = b.Min[1] + (float64(j)+0.5)*step[1]
			for k := 0; k < res; k++ {
				p[2] = b.Min[2] + (float64(k)+0.5)*step[2]
				for n, c := range s.cells {
					if cellBounds[n].Contains(p) && c.Contains(p) {
						inside++
						break
					}
				}
			}
		}
	}
	return float64(inside) * step[0] * step[1] * step[2]
}

// ApproxEqual reports whether two solids have the same cells, corner for
// corner, within tol
func (s *Solid) ApproxEqual(other *Solid, tol float64) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() && other.IsEmpty()
	}
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		for j := range s.cells[i] {
			if !s.cells[i][j].ApproxEqualThreshold(other.cells[i][j], tol) {
				return false
			}
		}
	}
	return true
}
