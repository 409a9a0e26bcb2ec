package nscp

import (
	"fmt"
	"sort"
	"strings"
)

// NSCP 2015 Structural Steel Constants

const (
	// Modulus of elasticity for structural steel (Section 502.3)
	Es = 200000.0 // MPa

	// Shear modulus (Section 502.3)
	G = 77200.0 // MPa

	// Unit mass of structural steel, used for take-off quantities
	SteelDensity = 7850.0 // kg/m³

	// Unit weight of structural steel (Section 204, minimum design dead loads)
	SteelUnitWeight = 77.0 // kN/m³
)

// Grade describes a structural steel grade
type Grade struct {
	Name string
	Fy   float64 // Yield strength (MPa)
	Fu   float64 // Tensile strength (MPa)
}

// Grades lists the structural steel grades recognized for members.
// Keys are lower-case for lookup.
var Grades = map[string]Grade{
	"a36":    {Name: "ASTM A36", Fy: 248, Fu: 400},
	"a572":   {Name: "ASTM A572 Gr. 50", Fy: 345, Fu: 450},
	"a992":   {Name: "ASTM A992", Fy: 345, Fu: 450},
	"ss400":  {Name: "JIS SS400", Fy: 245, Fu: 400},
	"q345":   {Name: "GB Q345", Fy: 345, Fu: 470},
	"s275jr": {Name: "EN S275JR", Fy: 275, Fu: 410},
}

// DefaultGrade is used when a frame definition names no grade
const DefaultGrade = "a36"

// LookupGrade finds a steel grade by name (case-insensitive)
func LookupGrade(name string) (Grade, error) {
	if name == "" {
		name = DefaultGrade
	}
	g, ok := Grades[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Grade{}, fmt.Errorf("unknown steel grade %q (known: %s)", name, strings.Join(GradeNames(), ", "))
	}
	return g, nil
}

// GradeNames returns the sorted lookup keys of Grades
func GradeNames() []string {
	names := make([]string, 0, len(Grades))
	for k := range Grades {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MassPerMetre converts a cross-sectional area in mm² to a linear mass in kg/m
func MassPerMetre(areaMM2 float64) float64 {
	// mm² -> m² is 1e-6; one metre of length
	return areaMM2 * 1e-6 * SteelDensity
}

// WeightPerMetre converts a cross-sectional area in mm² to a linear weight in kN/m
func WeightPerMetre(areaMM2 float64) float64 {
	return areaMM2 * 1e-6 * SteelUnitWeight
}
