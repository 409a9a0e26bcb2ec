package frame

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/alexiusacademia/goframe/internal/section"
)

// Role is what a member does in the frame
type Role int

const (
	RoleColumn Role = iota
	RoleRafter
	RolePurlin
)

func (r Role) String() string {
	switch r {
	case RoleColumn:
		return "column"
	case RoleRafter:
		return "rafter"
	case RolePurlin:
		return "purlin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Side is the column line a member belongs to
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "-"
	}
}

// Instance is one placed member: a profile and the rigid transform that puts
// it in the frame
type Instance struct {
	Role      Role
	Side      Side
	Row       int
	Profile   section.Profile
	Placement kernel.Placement
}

// Label names the instance for logs and diagnostics, e.g. "rafter[3].left"
func (i Instance) Label() string {
	if i.Side == SideNone {
		return fmt.Sprintf("%s[%d]", i.Role, i.Row)
	}
	return fmt.Sprintf("%s[%d].%s", i.Role, i.Row, i.Side)
}

// Origin is where the member's local origin lands in the frame
func (i Instance) Origin() kernel.Vec3 {
	return i.Placement.Apply(kernel.Vec3{})
}

// buildTemplate creates the un-placed solid for a profile
func buildTemplate(b kernel.Backend, p section.Profile) (*kernel.Solid, error) {
	if p.Kind == section.Box {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return b.Box(p.Length, p.Width, p.Depth)
	}
	return BuildISection(b, p)
}

// Build creates the placed solid for a single instance
func (i Instance) Build(b kernel.Backend) (*kernel.Solid, error) {
	tmpl, err := buildTemplate(b, i.Profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.Label(), err)
	}
	return b.Transform(tmpl, i.Placement), nil
}
