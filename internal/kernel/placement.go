package kernel

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the coordinate type used throughout the kernel (mm)
type Vec3 = mgl64.Vec3

// Placement is a rigid transform applied to a member instance.
//
// The transform is applied in this order: translate by Translation, rotate
// by Angle (radians, right-handed) about Axis passing through Origin, then
// translate by Shift. A zero Axis means no rotation.
type Placement struct {
	Translation Vec3
	Axis        Vec3
	Angle       float64
	Origin      Vec3
	Shift       Vec3
}

// Identity is the placement that leaves a solid where it is
var Identity = Placement{}

// Translate returns a pure translation
func Translate(x, y, z float64) Placement {
	return Placement{Translation: Vec3{x, y, z}}
}

// RotateAbout returns a copy of p that also rotates by angle about axis through origin
func (p Placement) RotateAbout(axis, origin Vec3, angle float64) Placement {
	p.Axis = axis
	p.Origin = origin
	p.Angle = angle
	return p
}

// ThenShift returns a copy of p with an extra translation applied after rotation
func (p Placement) ThenShift(x, y, z float64) Placement {
	p.Shift = p.Shift.Add(Vec3{x, y, z})
	return p
}

// HasRotation reports whether the placement rotates
func (p Placement) HasRotation() bool {
	return p.Angle != 0 && p.Axis.Len() > 0
}

// Matrix compiles the placement into a homogeneous 4x4 matrix
func (p Placement) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(p.Translation[0], p.Translation[1], p.Translation[2])
	if p.HasRotation() {
		toOrigin := mgl64.Translate3D(-p.Origin[0], -p.Origin[1], -p.Origin[2])
		rot := mgl64.HomogRotate3D(p.Angle, p.Axis.Normalize())
		back := mgl64.Translate3D(p.Origin[0], p.Origin[1], p.Origin[2])
		m = back.Mul4(rot).Mul4(toOrigin).Mul4(m)
	}
	if p.Shift != (Vec3{}) {
		m = mgl64.Translate3D(p.Shift[0], p.Shift[1], p.Shift[2]).Mul4(m)
	}
	return m
}

// Apply transforms a single point
func (p Placement) Apply(v Vec3) Vec3 {
	return applyMatrix(p.Matrix(), v)
}

func applyMatrix(m mgl64.Mat4, v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}
