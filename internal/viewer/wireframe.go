package viewer

import (
	"github.com/alexiusacademia/goframe/internal/kernel"
)

// Segment is one wireframe edge in viewer space
type Segment struct {
	A, B kernel.Vec3
}

// Wireframe turns every cell edge of s into a segment in viewer space:
// centred on the solid's bounding box, scaled by scale and turned Y-up
// (model Z becomes viewer Y, model Y becomes viewer -Z).
func Wireframe(s *kernel.Solid, scale float64) []Segment {
	if s == nil || s.IsEmpty() {
		return nil
	}
	centre := s.Bounds().Center()
	toView := func(p kernel.Vec3) kernel.Vec3 {
		d := p.Sub(centre).Mul(scale)
		return kernel.Vec3{d[0], d[2], -d[1]}
	}

	cells := s.Cells()
	segments := make([]Segment, 0, 12*len(cells))
	for _, c := range cells {
		for _, e := range c.Edges() {
			segments = append(segments, Segment{A: toView(c[e[0]]), B: toView(c[e[1]])})
		}
	}
	return segments
}

// extent is the largest half-size of the segments along any viewer axis
func extent(segments []Segment) float64 {
	var r float64
	for _, s := range segments {
		for _, p := range []kernel.Vec3{s.A, s.B} {
			for _, x := range p {
				if x < 0 {
					x = -x
				}
				r = max(r, x)
			}
		}
	}
	return r
}
