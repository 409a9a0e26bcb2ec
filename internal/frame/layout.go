package frame

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/alexiusacademia/goframe/internal/section"
)

// rafterAxis is the depth-axis direction rafters are tilted about
var rafterAxis = kernel.Vec3{0, -1, 0}

// BuildISection builds a wide-flange member from three boxes: bottom
// flange, top flange and web, fused in that order. The result spans
// [0,length]×[0,width]×[0,depth].
func BuildISection(b kernel.Backend, p section.Profile) (*kernel.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bottom, err := b.Box(p.Length, p.Width, p.FlangeThickness)
	if err != nil {
		return nil, err
	}

	top, err := b.Box(p.Length, p.Width, p.FlangeThickness)
	if err != nil {
		return nil, err
	}
	top = b.Transform(top, kernel.Translate(0, 0, p.Depth-p.FlangeThickness))

	web, err := b.Box(p.Length, p.WebThickness, p.WebHeight())
	if err != nil {
		return nil, err
	}
	web = b.Transform(web, kernel.Translate(0, (p.Width-p.WebThickness)/2, p.FlangeThickness))

	return kernel.UnionAll(b, bottom, top, web)
}

// BuildRafter builds the un-placed rafter: the rafter I-section cut to its
// true sloped length
func BuildRafter(b kernel.Backend, p Params) (*kernel.Solid, error) {
	return BuildISection(b, p.RafterProfile())
}

// PurlinInstances places the purlins across the bay. Elevations follow a
// two-slope profile split at count/2: the first half rises from the eaves
// toward midspan and the second half mirrors it.
func PurlinInstances(p Params) ([]Instance, error) {
	n := p.Purlin.Count
	if err := checkCount("purlin count", n); err != nil {
		return nil, err
	}

	prof := p.PurlinProfile()
	eave := p.EaveHeight()
	rise := p.PurlinRise()
	half := float64(n) / 2
	step := (p.BaySpan - p.Purlin.Width) / float64(n-1)

	instances := make([]Instance, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) * step

		var z float64
		if float64(i) < half {
			z = eave + rise - (half-float64(i))*(rise/half)
		} else {
			z = eave + rise - (float64(i)-half+1)*(rise/half)
		}

		instances = append(instances, Instance{
			Role:      RolePurlin,
			Row:       i,
			Profile:   prof,
			Placement: kernel.Translate(x, 0, z),
		})
	}
	return instances, nil
}

// ColumnInstances places two lines of columns, left and right, with
// PerSide columns each spaced evenly along the building
func ColumnInstances(p Params) ([]Instance, error) {
	n := p.Column.PerSide
	if err := checkCount("columns per side", n); err != nil {
		return nil, err
	}

	prof := p.ColumnProfile()
	spacing := p.ColumnSpacing()
	xLeft := -p.HalfSpan() + p.ColumnOffset
	xRight := p.HalfSpan() + p.ColumnOffset

	instances := make([]Instance, 0, 2*n)
	for i := 0; i < n; i++ {
		y := float64(i) * spacing
		instances = append(instances,
			Instance{Role: RoleColumn, Side: SideLeft, Row: i, Profile: prof, Placement: kernel.Translate(xLeft, y, 0)},
			Instance{Role: RoleColumn, Side: SideRight, Row: i, Profile: prof, Placement: kernel.Translate(xRight, y, 0)},
		)
	}
	return instances, nil
}

// RafterInstances places mirrored rafter pairs. The left rafter starts on
// the left column line at eave height and is tilted up by the roof angle.
// The right rafter is tilted down by the same angle and lifted by the roof
// rise so its low end lands at eave height.
func RafterInstances(p Params) ([]Instance, error) {
	n := p.Rafter.Count
	if err := checkCount("rafter count", n); err != nil {
		return nil, err
	}

	prof := p.RafterProfile()
	angle := p.AngleRadians()
	eave := p.EaveHeight()
	spacing := p.RafterSpacing()
	xLeft := -p.HalfSpan() + p.ColumnOffset
	xRight := p.HalfSpan() + p.ColumnOffset - p.ColumnOffset

	instances := make([]Instance, 0, 2*n)
	for i := 0; i < n; i++ {
		y := float64(i) * spacing

		leftAt := kernel.Vec3{xLeft, y, eave}
		left := kernel.Translate(xLeft, y, eave).RotateAbout(rafterAxis, leftAt, angle)

		rightAt := kernel.Vec3{xRight, y, eave}
		right := kernel.Translate(xRight, y, eave).
			RotateAbout(rafterAxis, rightAt, -angle).
			ThenShift(0, 0, p.Rise())

		instances = append(instances,
			Instance{Role: RoleRafter, Side: SideLeft, Row: i, Profile: prof, Placement: left},
			Instance{Role: RoleRafter, Side: SideRight, Row: i, Profile: prof, Placement: right},
		)
	}
	return instances, nil
}

// LayoutPurlins fuses the purlin row into one solid, left to right
func LayoutPurlins(b kernel.Backend, p Params) (*kernel.Solid, error) {
	instances, err := PurlinInstances(p)
	if err != nil {
		return nil, err
	}
	tmpl, err := buildTemplate(b, p.PurlinProfile())
	if err != nil {
		return nil, fmt.Errorf("purlin: %w", err)
	}

	placed := make([]*kernel.Solid, len(instances))
	for i, inst := range instances {
		placed[i] = b.Transform(tmpl, inst.Placement)
	}
	return kernel.UnionAll(b, placed...)
}

// LayoutColumns fuses both column lines into one solid
func LayoutColumns(b kernel.Backend, p Params) (*kernel.Solid, error) {
	instances, err := ColumnInstances(p)
	if err != nil {
		return nil, err
	}
	tmpl, err := BuildISection(b, p.ColumnProfile())
	if err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	return foldPairs(b, tmpl, instances)
}

// LayoutRafters fuses every rafter pair into one solid
func LayoutRafters(b kernel.Backend, p Params) (*kernel.Solid, error) {
	instances, err := RafterInstances(p)
	if err != nil {
		return nil, err
	}
	tmpl, err := BuildRafter(b, p)
	if err != nil {
		return nil, fmt.Errorf("rafter: %w", err)
	}
	return foldPairs(b, tmpl, instances)
}

// foldPairs unions each left/right pair, then folds the pairs into a
// running total in row order. instances must alternate left, right.
func foldPairs(b kernel.Backend, tmpl *kernel.Solid, instances []Instance) (*kernel.Solid, error) {
	if len(instances) == 0 || len(instances)%2 != 0 {
		return nil, fmt.Errorf("%w: need left/right pairs, got %d members", ErrInvalidCount, len(instances))
	}

	var total *kernel.Solid
	for i := 0; i < len(instances); i += 2 {
		left := b.Transform(tmpl, instances[i].Placement)
		right := b.Transform(tmpl, instances[i+1].Placement)

		pair, err := b.Union(left, right)
		if err != nil {
			return nil, err
		}
		if total == nil {
			total = pair
			continue
		}
		if total, err = b.Union(total, pair); err != nil {
			return nil, err
		}
	}
	return total, nil
}

// Assemble fuses the three sub-assemblies into the frame: columns, then
// purlins, then rafters
func Assemble(b kernel.Backend, columns, purlins, rafters *kernel.Solid) (*kernel.Solid, error) {
	return kernel.UnionAll(b, columns, purlins, rafters)
}
