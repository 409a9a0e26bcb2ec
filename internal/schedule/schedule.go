// Package schedule lists the members of a generated frame by mark, with
// lengths and steel masses, and exports the list as a spreadsheet or PDF.
package schedule

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
)

// Entry is one line of the schedule: identical members sharing a mark
type Entry struct {
	Mark     string
	Role     frame.Role
	Profile  section.Profile
	Count    int
	Length   float64 // mm, along the member
	Volume   float64 // mm³, one member
	UnitMass float64 // kg/m
	Mass     float64 // kg, all members
}

// Schedule is the member list of one frame
type Schedule struct {
	Title   string
	Grade   nscp.Grade
	Entries []Entry
}

var markPrefix = map[frame.Role]string{
	frame.RoleColumn: "C",
	frame.RoleRafter: "R",
	frame.RolePurlin: "P",
}

// memberLength is the length of a member along its own axis
func memberLength(p frame.Params, role frame.Role) float64 {
	switch role {
	case frame.RoleColumn:
		return p.EaveHeight()
	case frame.RoleRafter:
		return p.RafterLength()
	default:
		return p.DepthSpan
	}
}

// Build groups the model's members by role and profile. Marks are numbered
// per role in the order groups first appear: C1, C2, R1, P1 and so on.
func Build(model *frame.Model) (*Schedule, error) {
	p := model.Params
	grade, err := nscp.LookupGrade(p.Grade)
	if err != nil {
		return nil, err
	}

	s := &Schedule{Title: p.Name, Grade: grade}
	index := map[string]int{}
	next := map[frame.Role]int{}

	for _, inst := range model.Instances {
		key := fmt.Sprintf("%d/%+v", inst.Role, inst.Profile)
		if i, ok := index[key]; ok {
			s.Entries[i].Count++
			continue
		}

		next[inst.Role]++
		length := memberLength(p, inst.Role)
		volume := inst.Profile.CalculateProperties().Volume
		mass := volume * nscp.SteelDensity * 1e-9

		index[key] = len(s.Entries)
		s.Entries = append(s.Entries, Entry{
			Mark:     fmt.Sprintf("%s%d", markPrefix[inst.Role], next[inst.Role]),
			Role:     inst.Role,
			Profile:  inst.Profile,
			Count:    1,
			Length:   length,
			Volume:   volume,
			UnitMass: mass / (length / 1000),
		})
	}

	for i := range s.Entries {
		e := &s.Entries[i]
		e.Mass = float64(e.Count) * e.Volume * nscp.SteelDensity * 1e-9
	}
	return s, nil
}

// TotalCount is the number of members in the frame
func (s *Schedule) TotalCount() int {
	var n int
	for _, e := range s.Entries {
		n += e.Count
	}
	return n
}

// TotalMass is the steel mass of the frame in kg
func (s *Schedule) TotalMass() float64 {
	var m float64
	for _, e := range s.Entries {
		m += e.Mass
	}
	return m
}

// Designation describes the entry's section, e.g. "I 200x100x15x4.67"
func (e Entry) Designation() string {
	p := e.Profile
	if p.Name != "" {
		return p.Name
	}
	if p.Kind == section.Box {
		if e.Role == frame.RolePurlin {
			return fmt.Sprintf("Box %gx%g", p.Length, p.Depth)
		}
		return fmt.Sprintf("Box %gx%g", p.Width, p.Depth)
	}
	return fmt.Sprintf("I %gx%gx%gx%g", p.Width, p.Depth, p.FlangeThickness, p.WebThickness)
}

// Header names the columns of Row
func Header() []string {
	return []string{"Mark", "Member", "Section", "Qty", "Length (mm)", "Unit mass (kg/m)", "Mass (kg)"}
}

// Row formats the entry for tables and exports
func (e Entry) Row() []string {
	return []string{
		e.Mark,
		e.Role.String(),
		e.Designation(),
		fmt.Sprintf("%d", e.Count),
		fmt.Sprintf("%.1f", e.Length),
		fmt.Sprintf("%.2f", e.UnitMass),
		fmt.Sprintf("%.1f", e.Mass),
	}
}
