package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/alexiusacademia/goframe/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// View selects the two model axes a drawing is projected onto
type View int

const (
	// Elevation looks along the building (Y): X across, Z up
	Elevation View = iota
	// Plan looks down from above: X across, Y along the building
	Plan
)

func (v View) String() string {
	if v == Plan {
		return "plan"
	}
	return "elevation"
}

func (v View) project(p kernel.Vec3) Point {
	if v == Plan {
		return Point{X: p[0], Y: p[1]}
	}
	return Point{X: p[0], Y: p[2]}
}

var roleColors = map[frame.Role]color.RGBA{
	frame.RoleColumn: {R: 70, G: 130, B: 180, A: 200},
	frame.RoleRafter: {R: 205, G: 92, B: 92, A: 200},
	frame.RolePurlin: {R: 218, G: 165, B: 32, A: 200},
}

// MemberShape is one member cell flattened onto a view
type MemberShape struct {
	Role    frame.Role
	Side    frame.Side
	Label   string
	Outline []Point
}

// ProjectModel flattens every member of the model onto a view. Each cell
// becomes the convex outline of its projected corners.
func ProjectModel(model *frame.Model, v View) ([]MemberShape, error) {
	k := kernel.New()
	var shapes []MemberShape
	for _, inst := range model.Instances {
		s, err := inst.Build(k)
		if err != nil {
			return nil, err
		}
		for _, c := range s.Cells() {
			pts := make([]Point, len(c))
			for i, corner := range c {
				pts[i] = v.project(corner)
			}
			hull := convexHull(pts)
			if len(hull) < 3 {
				continue
			}
			shapes = append(shapes, MemberShape{Role: inst.Role, Side: inst.Side, Label: inst.Label(), Outline: hull})
		}
	}
	return shapes, nil
}

// ExportElevation draws the frame as seen along the building
func ExportElevation(model *frame.Model, filename string) error {
	return exportView(model, Elevation, filename)
}

// ExportPlan draws the frame as seen from above
func ExportPlan(model *frame.Model, filename string) error {
	return exportView(model, Plan, filename)
}

func exportView(model *frame.Model, v View, filename string) error {
	shapes, err := ProjectModel(model, v)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - %s", model.Params.Name, strings.ToUpper(v.String()[:1])+v.String()[1:])
	p.X.Label.Text = "X (mm)"
	if v == Plan {
		p.Y.Label.Text = "Y (mm)"
	} else {
		p.Y.Label.Text = "Z (mm)"
	}
	p.Legend.Top = true

	seen := map[frame.Role]bool{}
	for _, s := range shapes {
		xys := make(plotter.XYs, len(s.Outline))
		for i, pt := range s.Outline {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return err
		}
		poly.Color = roleColors[s.Role]
		poly.LineStyle.Width = vg.Points(0.5)
		poly.LineStyle.Color = color.Black
		p.Add(poly)

		if !seen[s.Role] {
			seen[s.Role] = true
			p.Legend.Add(s.Role.String(), poly)
		}
	}

	if v == Elevation {
		prm := model.Params
		ridge := prm.EaveHeight() + prm.Rise()
		marks, err := plotter.NewScatter(plotter.XYs{
			{X: -prm.HalfSpan() + prm.ColumnOffset, Y: prm.EaveHeight()},
			{X: prm.ColumnOffset, Y: ridge},
		})
		if err != nil {
			return err
		}
		marks.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		marks.GlyphStyle.Radius = vg.Points(3)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs: []plotter.XY{
				{X: -prm.HalfSpan() + prm.ColumnOffset, Y: prm.EaveHeight()},
				{X: prm.ColumnOffset, Y: ridge},
			},
			Labels: []string{
				fmt.Sprintf(" eave %.0f", prm.EaveHeight()),
				fmt.Sprintf(" ridge %.0f", ridge),
			},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	return save(p, 10*vg.Inch, 7*vg.Inch, filename)
}

// ExportSection draws a member cross-section with its centroid
func ExportSection(prof section.Profile, filename string) error {
	if err := prof.Validate(); err != nil {
		return err
	}
	props := prof.CalculateProperties()

	p := plot.New()
	title := prof.Name
	if title == "" {
		title = prof.Kind.String()
	}
	p.Title.Text = fmt.Sprintf("Section %s", title)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Depth (mm)"

	outline := prof.Outline()
	xys := make(plotter.XYs, len(outline))
	for i, v := range outline {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	poly.LineStyle.Width = vg.Points(2)
	poly.LineStyle.Color = color.Black
	p.Add(poly)

	// neutral axis through the centroid
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.1 * props.Width, Y: props.CentroidY},
		{X: 1.1 * props.Width, Y: props.CentroidY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: 1.1 * props.Width, Y: props.CentroidY},
			{X: props.Width / 2, Y: -0.08 * props.Height},
		},
		Labels: []string{
			"N.A.",
			fmt.Sprintf("A=%.0fmm²  Ix=%.3gmm^4  %.1fkg/m", props.Area, props.Ix, props.MassPerMetre),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format named by the extension; anything other
// than png, svg or pdf gets a .png suffix
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// convexHull returns the hull of pts counter-clockwise (monotone chain)
func convexHull(pts []Point) []Point {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var uniq []Point
	for i, p := range sorted {
		if i > 0 && nearlySame(p, sorted[i-1]) {
			continue
		}
		uniq = append(uniq, p)
	}
	if len(uniq) < 3 {
		return uniq
	}

	hull := make([]Point, 0, 2*len(uniq))
	for _, p := range uniq {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(uniq) - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func nearlySame(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// overlapsRect reports whether the counter-clockwise convex polygon touches
// the axis-aligned rectangle, by looking for a separating axis
func overlapsRect(poly []Point, x0, y0, x1, y1 float64) bool {
	if len(poly) < 3 {
		return false
	}
	rect := []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	return !separated(poly, rect) && !separated(rect, poly)
}

// separated reports whether some edge of a has all of b strictly outside
func separated(a, b []Point) bool {
	for i := range a {
		p, q := a[i], a[(i+1)%len(a)]
		nx, ny := q.Y-p.Y, p.X-q.X
		outside := true
		for _, v := range b {
			if nx*(v.X-p.X)+ny*(v.Y-p.Y) <= 0 {
				outside = false
				break
			}
		}
		if outside {
			return true
		}
	}
	return false
}
