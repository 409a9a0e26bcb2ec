package kernel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-9), "want %v, got %v", want, got)
}

func TestBox(t *testing.T) {
	k := New()
	s, err := k.Box(100, 200, 300)
	require.NoError(t, err)

	b := s.Bounds()
	assertVec(t, Vec3{0, 0, 0}, b.Min)
	assertVec(t, Vec3{100, 200, 300}, b.Max)
	assert.InDelta(t, 100*200*300.0, s.CellVolume(), 1e-6)
	assert.Equal(t, 1, s.NumCells())
	assert.Contains(t, s.ID(), "box#")
}

func TestBoxDegenerate(t *testing.T) {
	k := New()
	for _, dims := range [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 1, math.NaN()}, {1, math.Inf(1), 1}} {
		_, err := k.Box(dims[0], dims[1], dims[2])
		assert.ErrorIs(t, err, ErrDegenerateBox, "dims %v", dims)
	}
}

func TestPlacementTranslate(t *testing.T) {
	p := Translate(1, 2, 3)
	assertVec(t, Vec3{1, 2, 3}, p.Apply(Vec3{}))
	assert.False(t, p.HasRotation())
}

func TestPlacementRotateAboutNegativeY(t *testing.T) {
	// Tilting a member lying along +X about -Y lifts its far end
	angle := math.Pi / 6
	origin := Vec3{10, 5, 100}
	p := Translate(10, 5, 100).RotateAbout(Vec3{0, -1, 0}, origin, angle)

	assertVec(t, origin, p.Apply(Vec3{}))

	end := p.Apply(Vec3{1000, 0, 0})
	assertVec(t, Vec3{10 + 1000*math.Cos(angle), 5, 100 + 1000*math.Sin(angle)}, end)

	down := Translate(10, 5, 100).RotateAbout(Vec3{0, -1, 0}, origin, -angle)
	end = down.Apply(Vec3{1000, 0, 0})
	assertVec(t, Vec3{10 + 1000*math.Cos(angle), 5, 100 - 1000*math.Sin(angle)}, end)
}

func TestPlacementShiftAfterRotation(t *testing.T) {
	p := Translate(0, 0, 0).RotateAbout(Vec3{0, 0, 1}, Vec3{}, math.Pi/2).ThenShift(0, 0, 7)
	assertVec(t, Vec3{0, 1, 7}, p.Apply(Vec3{1, 0, 0}))
}

func TestTransformPreservesVolume(t *testing.T) {
	k := New()
	s, err := k.Box(10, 20, 30)
	require.NoError(t, err)

	moved := k.Transform(s, Translate(5, 5, 5).RotateAbout(Vec3{1, 1, 0}, Vec3{5, 5, 5}, 0.7))
	assert.InDelta(t, s.CellVolume(), moved.CellVolume(), 1e-6)
	assert.NotEqual(t, s.ID(), moved.ID())

	// original untouched
	assertVec(t, Vec3{}, s.Bounds().Min)
	assert.Nil(t, k.Transform(nil, Identity))
}

func TestUnion(t *testing.T) {
	k := New()
	a, _ := k.Box(10, 10, 10)
	b, _ := k.Box(10, 10, 10)
	b = k.Transform(b, Translate(20, 0, 0))

	u, err := k.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, u.NumCells())
	assert.True(t, u.Contains(Vec3{5, 5, 5}))
	assert.True(t, u.Contains(Vec3{25, 5, 5}))
	assert.False(t, u.Contains(Vec3{15, 5, 5}))
	assertVec(t, Vec3{30, 10, 10}, u.Bounds().Max)
}

func TestUnionFailures(t *testing.T) {
	k := New()
	a, _ := k.Box(1, 1, 1)

	tests := []struct {
		name string
		l, r *Solid
	}{
		{name: "nil right", l: a, r: nil},
		{name: "nil left", l: nil, r: a},
		{name: "empty", l: a, r: &Solid{id: "empty#1"}},
		{name: "degenerate", l: a, r: &Solid{id: "flat#1", cells: []Cell{{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := k.Union(tt.l, tt.r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnionFailed))

			var ue *UnionError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.l.ID(), ue.Left)
			assert.Equal(t, tt.r.ID(), ue.Right)
		})
	}
}

func TestUnionAll(t *testing.T) {
	k := New()
	_, err := UnionAll(k)
	assert.ErrorIs(t, err, ErrEmptyFold)

	a, _ := k.Box(1, 1, 1)
	single, err := UnionAll(k, a)
	require.NoError(t, err)
	assert.Same(t, a, single)

	_, err = UnionAll(k, &Solid{id: "empty#9"})
	assert.ErrorIs(t, err, ErrUnionFailed)

	var parts []*Solid
	for i := 0; i < 4; i++ {
		p, _ := k.Box(1, 1, 1)
		parts = append(parts, k.Transform(p, Translate(float64(2*i), 0, 0)))
	}
	all, err := UnionAll(k, parts...)
	require.NoError(t, err)
	assert.Equal(t, 4, all.NumCells())
	assert.InDelta(t, 4.0, all.CellVolume(), 1e-9)
}

func TestVolumeOrderIndependent(t *testing.T) {
	k := New()
	a, _ := k.Box(10, 10, 10)
	b, _ := k.Box(10, 10, 10)
	b = k.Transform(b, Translate(5, 0, 0))
	c, _ := k.Box(4, 4, 4)
	c = k.Transform(c, Translate(3, 3, 3).RotateAbout(Vec3{0, 0, 1}, Vec3{3, 3, 3}, 0.4))

	abc, err := UnionAll(k, a, b, c)
	require.NoError(t, err)
	cba, err := UnionAll(k, c, b, a)
	require.NoError(t, err)
	bac, err := UnionAll(k, b, a, c)
	require.NoError(t, err)

	v := abc.Volume(40)
	assert.Equal(t, v, cba.Volume(40))
	assert.Equal(t, v, bac.Volume(40))

	// a ∪ b overlap by half; c lies inside a
	assert.InDelta(t, 1500, v, 1500*0.02)
	assert.Greater(t, abc.CellVolume(), v)
}

func TestVolumeOfEmpty(t *testing.T) {
	var s *Solid
	assert.Zero(t, s.Volume(10))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "<nil>", s.ID())
}

func TestApproxEqual(t *testing.T) {
	k1, k2 := New(), New()
	a, _ := k1.Box(1, 2, 3)
	b, _ := k2.Box(1, 2, 3)
	assert.True(t, a.ApproxEqual(b, 1e-12))

	c := k2.Transform(b, Translate(0, 0, 1e-3))
	assert.False(t, a.ApproxEqual(c, 1e-6))
	assert.True(t, a.ApproxEqual(c, 1e-2))

	u, _ := k1.Union(a, a)
	assert.False(t, a.ApproxEqual(u, 1))
}

func TestCellFacesPointOutward(t *testing.T) {
	k := New()
	s, _ := k.Box(2, 3, 4)
	s = k.Transform(s, Translate(1, 1, 1).RotateAbout(Vec3{0, 1, 0}, Vec3{1, 1, 1}, 0.3))
	cell := s.Cells()[0]
	center := s.Bounds().Center()

	for _, f := range cell.Faces() {
		e1 := cell[f[1]].Sub(cell[f[0]])
		e2 := cell[f[2]].Sub(cell[f[1]])
		normal := e1.Cross(e2)
		out := cell[f[0]].Sub(center)
		assert.Positive(t, normal.Dot(out), "face %v", f)
	}
}
