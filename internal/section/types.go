package section

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is the sentinel wrapped by every profile validation failure
var ErrInvalidProfile = errors.New("invalid profile")

// Kind distinguishes the member shapes the frame is built from
type Kind int

const (
	// ISection is a wide-flange member: two flanges joined by a web
	ISection Kind = iota
	// Box is a solid rectangular member (used for purlins)
	Box
)

func (k Kind) String() string {
	switch k {
	case ISection:
		return "I-section"
	case Box:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Profile represents a structural member profile.
// The member is defined in a local coordinate system where:
// - X-axis runs along the member length
// - Y-axis runs across the flange width
// - Z-axis runs through the depth (flange to flange)
type Profile struct {
	Name string `json:"name,omitempty" toml:"name"`
	Kind Kind   `json:"-" toml:"-"`

	Length float64 `json:"length" toml:"length"` // mm
	Width  float64 `json:"width" toml:"width"`   // Flange width (mm)
	Depth  float64 `json:"depth" toml:"depth"`   // Overall depth (mm)

	// I-section plate thicknesses, ignored for Box profiles
	FlangeThickness float64 `json:"flange_thickness,omitempty" toml:"flange_thickness"` // mm
	WebThickness    float64 `json:"web_thickness,omitempty" toml:"web_thickness"`       // mm
}

// NewISection creates a wide-flange profile
func NewISection(length, width, depth, flangeThickness, webThickness float64) Profile {
	return Profile{
		Kind:            ISection,
		Length:          length,
		Width:           width,
		Depth:           depth,
		FlangeThickness: flangeThickness,
		WebThickness:    webThickness,
	}
}

// NewBox creates a solid rectangular profile
func NewBox(length, width, depth float64) Profile {
	return Profile{Kind: Box, Length: length, Width: width, Depth: depth}
}

// WithLength returns a copy of the profile cut to a different length
func (p Profile) WithLength(length float64) Profile {
	p.Length = length
	return p
}

// WebHeight is the clear height of the web between the flanges
func (p Profile) WebHeight() float64 {
	return p.Depth - 2*p.FlangeThickness
}

// Validate checks if the profile definition is valid
func (p Profile) Validate() error {
	if p.Length <= 0 {
		return &ValidationError{fmt.Sprintf("length must be positive (got %g)", p.Length)}
	}
	if p.Width <= 0 {
		return &ValidationError{fmt.Sprintf("width must be positive (got %g)", p.Width)}
	}
	if p.Depth <= 0 {
		return &ValidationError{fmt.Sprintf("depth must be positive (got %g)", p.Depth)}
	}
	if p.Kind == Box {
		return nil
	}
	if p.FlangeThickness <= 0 {
		return &ValidationError{fmt.Sprintf("flange thickness must be positive (got %g)", p.FlangeThickness)}
	}
	if p.WebThickness <= 0 {
		return &ValidationError{fmt.Sprintf("web thickness must be positive (got %g)", p.WebThickness)}
	}
	if p.Depth <= 2*p.FlangeThickness {
		return &ValidationError{fmt.Sprintf("depth %g must exceed twice the flange thickness %g", p.Depth, p.FlangeThickness)}
	}
	if p.WebThickness >= p.Width {
		return &ValidationError{fmt.Sprintf("web thickness %g must be less than the flange width %g", p.WebThickness, p.Width)}
	}
	return nil
}

// Point represents a 2D coordinate in the cross-section plane
type Point struct {
	X float64 `json:"x"` // mm, across the width
	Y float64 `json:"y"` // mm, through the depth
}

// Properties holds calculated cross-section properties
type Properties struct {
	// Overall dimensions
	Width  float64 // mm
	Height float64 // mm
	Area   float64 // mm²

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moment of area about the horizontal centroidal axis
	Ix float64 // mm⁴

	// Per-member quantities
	Volume       float64 // mm³
	MassPerMetre float64 // kg/m
	Mass         float64 // kg
}

// ValidationError represents a profile validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return ErrInvalidProfile.Error() + ": " + e.msg
}

// Unwrap lets errors.Is match ErrInvalidProfile
func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}
