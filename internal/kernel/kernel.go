// Package kernel is the solid modeling backend the frame layout is built on.
//
// It offers the three capabilities the layout needs: axis-aligned box
// primitives, rigid transforms, and boolean union. Solids are compounds of
// convex cells; a union keeps the cells of both operands, so the point set
// of the result is exactly the union of the operands' point sets.
package kernel

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

var (
	// ErrUnionFailed is wrapped by every rejected union
	ErrUnionFailed = errors.New("union failed")

	// ErrDegenerateBox is returned for boxes with non-positive or non-finite extents
	ErrDegenerateBox = errors.New("degenerate box")

	// ErrEmptyFold is returned when asked to union an empty sequence
	ErrEmptyFold = errors.New("nothing to union")
)

// UnionError reports a union the backend refused, naming both operands
type UnionError struct {
	Left   string
	Right  string
	Reason string
}

func (e *UnionError) Error() string {
	return fmt.Sprintf("%s: %s ∪ %s: %s", ErrUnionFailed, e.Left, e.Right, e.Reason)
}

// Unwrap lets errors.Is match ErrUnionFailed
func (e *UnionError) Unwrap() error {
	return ErrUnionFailed
}

// Backend is a solid modeling kernel
type Backend interface {
	// Box creates an axis-aligned box with one corner at the origin
	Box(dx, dy, dz float64) (*Solid, error)

	// Transform returns a rigidly moved copy of s
	Transform(s *Solid, p Placement) *Solid

	// Union returns the boolean union of a and b
	Union(a, b *Solid) (*Solid, error)
}

// CellKernel is the default Backend
type CellKernel struct {
	seq atomic.Uint64
}

// New creates a CellKernel
func New() *CellKernel {
	return &CellKernel{}
}

func (k *CellKernel) nextID(prefix string) string {
	return fmt.Sprintf("%s#%d", prefix, k.seq.Add(1))
}

// Box creates an axis-aligned box spanning [0,dx]×[0,dy]×[0,dz]
func (k *CellKernel) Box(dx, dy, dz float64) (*Solid, error) {
	for _, d := range []float64{dx, dy, dz} {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: extents %g × %g × %g", ErrDegenerateBox, dx, dy, dz)
		}
	}

	var c Cell
	for i := range c {
		c[i] = Vec3{
			float64(i&1) * dx,
			float64(i>>1&1) * dy,
			float64(i>>2&1) * dz,
		}
	}
	return &Solid{id: k.nextID("box"), cells: []Cell{c}}, nil
}

// Transform returns a copy of s moved by p
func (k *CellKernel) Transform(s *Solid, p Placement) *Solid {
	if s == nil {
		return nil
	}
	m := p.Matrix()
	cells := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		for j, v := range c {
			cells[i][j] = applyMatrix(m, v)
		}
	}
	return &Solid{id: k.nextID("xform"), cells: cells}
}

// Union returns a ∪ b. It fails when either operand is missing, empty, or
// contains a degenerate cell.
func (k *CellKernel) Union(a, b *Solid) (*Solid, error) {
	if err := checkOperand(a, b, a); err != nil {
		return nil, err
	}
	if err := checkOperand(a, b, b); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, len(a.cells)+len(b.cells))
	cells = append(cells, a.cells...)
	cells = append(cells, b.cells...)
	return &Solid{id: k.nextID("union"), cells: cells}, nil
}

func checkOperand(a, b, op *Solid) error {
	if op == nil {
		return &UnionError{Left: a.ID(), Right: b.ID(), Reason: "missing operand"}
	}
	if len(op.cells) == 0 {
		return &UnionError{Left: a.ID(), Right: b.ID(), Reason: fmt.Sprintf("%s is empty", op.ID())}
	}
	for i, c := range op.cells {
		if c.Degenerate() {
			return &UnionError{Left: a.ID(), Right: b.ID(), Reason: fmt.Sprintf("%s cell %d is degenerate", op.ID(), i)}
		}
	}
	return nil
}

// UnionAll folds solids left to right with b.Union
func UnionAll(b Backend, solids ...*Solid) (*Solid, error) {
	if len(solids) == 0 {
		return nil, ErrEmptyFold
	}
	acc := solids[0]
	if len(solids) == 1 {
		if acc.IsEmpty() {
			return nil, &UnionError{Left: acc.ID(), Right: "<none>", Reason: "empty operand"}
		}
		return acc, nil
	}
	for _, s := range solids[1:] {
		next, err := b.Union(acc, s)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}
