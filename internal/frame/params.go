package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/goframe/internal/section"
)

var (
	// ErrInvalidProfile marks a degenerate member cross-section
	ErrInvalidProfile = section.ErrInvalidProfile

	// ErrInvalidCount marks a member count too small for the spacing formula
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidParams marks frame dimensions that cannot produce a frame
	ErrInvalidParams = errors.New("invalid frame parameters")
)

// ColumnParams describes the column I-section and how many stand on each side.
// Height is the I-section depth: columns are built standing up.
type ColumnParams struct {
	Section         string  `toml:"section"`
	Length          float64 `toml:"length"`
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	FlangeThickness float64 `toml:"flange_thickness"`
	WebThickness    float64 `toml:"web_thickness"`
	PerSide         int     `toml:"per_side"`
}

// RafterParams describes the rafter I-section, its pitch and how many pairs there are
type RafterParams struct {
	Section         string  `toml:"section"`
	Width           float64 `toml:"width"`
	Depth           float64 `toml:"depth"`
	FlangeThickness float64 `toml:"flange_thickness"`
	WebThickness    float64 `toml:"web_thickness"`
	Angle           float64 `toml:"angle"` // degrees
	Count           int     `toml:"count"`
}

// PurlinParams describes the purlin box section and how many run along the roof
type PurlinParams struct {
	Section string  `toml:"section"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Count   int     `toml:"count"`
}

// Params is the full, read-only set of frame dimensions (mm) and counts
type Params struct {
	Name  string `toml:"name"`
	Grade string `toml:"grade"`

	// BaySpan is the clear span across the frame (X)
	BaySpan float64 `toml:"bay_span"`
	// DepthSpan is the length of the building along the ridge (Y)
	DepthSpan float64 `toml:"depth_span"`
	// ColumnOffset moves the column lines along X; with BaySpan/2 the left
	// column line sits on X = 0
	ColumnOffset float64 `toml:"column_offset"`
	// PurlinReferenceSpan sets the roof rise used for purlin elevations.
	// BaySpan+PurlinSeat lifts the purlins onto the rafter top flanges.
	PurlinReferenceSpan float64 `toml:"purlin_reference_span"`

	Column ColumnParams `toml:"column"`
	Rafter RafterParams `toml:"rafter"`
	Purlin PurlinParams `toml:"purlin"`
}

// DefaultParams returns the reference frame: an 8 m bay, 6 m long, 4 m to
// the eaves, 30° roof
func DefaultParams() Params {
	return Params{
		Name:                "Portal Frame",
		Grade:               "a36",
		BaySpan:             8000,
		DepthSpan:           6000,
		ColumnOffset:        4000,
		PurlinReferenceSpan: 8400,
		Column: ColumnParams{
			Length:          100,
			Width:           200,
			Height:          4000,
			FlangeThickness: 200,
			WebThickness:    10,
			PerSide:         7,
		},
		Rafter: RafterParams{
			Width:           200,
			Depth:           100,
			FlangeThickness: 15,
			WebThickness:    4.67,
			Angle:           30,
			Count:           8,
		},
		Purlin: PurlinParams{
			Width:  125,
			Height: 175,
			Count:  13,
		},
	}
}

// PurlinSeat is how much the purlin reference span exceeds the bay span by
// default
const PurlinSeat = 400

// WithBaySpan returns a copy of p with a new bay span. The column offset and
// purlin reference span follow it: columns centred on the ridge, purlins
// seated on the rafters.
func (p Params) WithBaySpan(span float64) Params {
	p.BaySpan = span
	p.ColumnOffset = span / 2
	p.PurlinReferenceSpan = span + PurlinSeat
	return p
}

// HalfSpan is half the bay span, the horizontal run of one rafter
func (p Params) HalfSpan() float64 {
	return p.BaySpan / 2
}

// EaveHeight is where the rafters meet the column tops
func (p Params) EaveHeight() float64 {
	return p.Column.Height
}

// AngleRadians is the rafter pitch in radians
func (p Params) AngleRadians() float64 {
	return p.Rafter.Angle * math.Pi / 180
}

// RafterLength is the true (sloped) rafter length
func (p Params) RafterLength() float64 {
	return p.HalfSpan() / math.Cos(p.AngleRadians())
}

// Rise is the height of the ridge above the eaves
func (p Params) Rise() float64 {
	return p.HalfSpan() * math.Tan(p.AngleRadians())
}

// PurlinRise is the rise used to lay out purlin elevations
func (p Params) PurlinRise() float64 {
	return p.PurlinReferenceSpan / 2 * math.Tan(p.AngleRadians())
}

// ColumnSpacing is the distance between column rows along the building
func (p Params) ColumnSpacing() float64 {
	return p.DepthSpan / float64(p.Column.PerSide-1)
}

// RafterSpacing is the distance between rafter rows along the building
func (p Params) RafterSpacing() float64 {
	return p.DepthSpan / float64(p.Rafter.Count-1)
}

// ColumnProfile is the column I-section, standing on its end
func (p Params) ColumnProfile() section.Profile {
	c := p.Column
	prof := section.NewISection(c.Length, c.Width, c.Height, c.FlangeThickness, c.WebThickness)
	prof.Name = c.Section
	return prof
}

// RafterProfile is the rafter I-section cut to its true length
func (p Params) RafterProfile() section.Profile {
	r := p.Rafter
	prof := section.NewISection(p.RafterLength(), r.Width, r.Depth, r.FlangeThickness, r.WebThickness)
	prof.Name = r.Section
	return prof
}

// PurlinProfile is the purlin box running the full depth of the building
func (p Params) PurlinProfile() section.Profile {
	prof := section.NewBox(p.Purlin.Width, p.DepthSpan, p.Purlin.Height)
	prof.Name = p.Purlin.Section
	return prof
}

func checkCount(what string, n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %s must be at least 2 (got %d)", ErrInvalidCount, what, n)
	}
	return nil
}

// Validate checks counts first, then member profiles, then overall dimensions
func (p Params) Validate() error {
	if err := checkCount("columns per side", p.Column.PerSide); err != nil {
		return err
	}
	if err := checkCount("rafter count", p.Rafter.Count); err != nil {
		return err
	}
	if err := checkCount("purlin count", p.Purlin.Count); err != nil {
		return err
	}

	if p.Rafter.Angle < 0 || p.Rafter.Angle >= 90 || math.IsNaN(p.Rafter.Angle) {
		return fmt.Errorf("%w: rafter angle must be in [0, 90) degrees (got %g)", ErrInvalidParams, p.Rafter.Angle)
	}
	if p.BaySpan <= 0 {
		return fmt.Errorf("%w: bay span must be positive (got %g)", ErrInvalidParams, p.BaySpan)
	}
	if p.DepthSpan <= 0 {
		return fmt.Errorf("%w: depth span must be positive (got %g)", ErrInvalidParams, p.DepthSpan)
	}
	if p.PurlinReferenceSpan < 0 {
		return fmt.Errorf("%w: purlin reference span must not be negative (got %g)", ErrInvalidParams, p.PurlinReferenceSpan)
	}

	if err := p.ColumnProfile().Validate(); err != nil {
		return fmt.Errorf("column: %w", err)
	}
	if err := p.RafterProfile().Validate(); err != nil {
		return fmt.Errorf("rafter: %w", err)
	}
	if err := p.PurlinProfile().Validate(); err != nil {
		return fmt.Errorf("purlin: %w", err)
	}

	if p.Purlin.Width >= p.BaySpan {
		return fmt.Errorf("%w: purlin width %g leaves no room across the %g bay", ErrInvalidParams, p.Purlin.Width, p.BaySpan)
	}
	return nil
}

// Warnings lists geometry that generates but probably is not what was meant
func (p Params) Warnings() []string {
	var warnings []string
	if math.Abs(p.ColumnOffset-p.HalfSpan()) > 1e-9 {
		warnings = append(warnings, fmt.Sprintf(
			"column offset %g differs from half the bay span %g: the right rafter starts at x=%g, not at the ridge x=%g",
			p.ColumnOffset, p.HalfSpan(), p.HalfSpan(), p.ColumnOffset))
	}
	if math.Abs(p.PurlinReferenceSpan-p.BaySpan-PurlinSeat) > 1e-9 {
		warnings = append(warnings, fmt.Sprintf(
			"purlin reference span %g is not the bay span %g plus %d: purlin ridge height %.1f vs rafter ridge height %.1f",
			p.PurlinReferenceSpan, p.BaySpan, PurlinSeat, p.PurlinRise(), p.Rise()))
	}
	return warnings
}
