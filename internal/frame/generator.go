// Package frame lays out a steel portal frame: two lines of I-section
// columns, pairs of sloped I-section rafters meeting at a ridge, and a row of
// box purlins, fused into a single solid.
//
// All dimensions come from an immutable Params value. Layout routines are
// pure functions of Params; they only touch the solid modeling backend to
// create, move and fuse boxes.
package frame

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/charmbracelet/log"
)

// Model is one generated frame: its parameters, every placed member, the
// three sub-assemblies and the fused result
type Model struct {
	Params    Params
	Instances []Instance

	Columns *kernel.Solid
	Purlins *kernel.Solid
	Rafters *kernel.Solid
	Solid   *kernel.Solid
}

// Count returns how many instances have the given role
func (m *Model) Count(role Role) int {
	var n int
	for _, inst := range m.Instances {
		if inst.Role == role {
			n++
		}
	}
	return n
}

// Generator builds frame models on a backend
type Generator struct {
	backend kernel.Backend
	params  Params
	logger  *log.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger routes stage logging to l
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator for params on backend b
func NewGenerator(b kernel.Backend, params Params, opts ...Option) *Generator {
	g := &Generator{
		backend: b,
		params:  params,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates the parameters, lays out every member and fuses the
// frame. Parameters are checked before any solid is built, so a bad count
// fails without touching the backend.
func (g *Generator) Generate() (*Model, error) {
	p := g.params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, w := range p.Warnings() {
		g.logger.Warn(w)
	}

	model := &Model{Params: p}

	columns, err := ColumnInstances(p)
	if err != nil {
		return nil, err
	}
	purlins, err := PurlinInstances(p)
	if err != nil {
		return nil, err
	}
	rafters, err := RafterInstances(p)
	if err != nil {
		return nil, err
	}
	model.Instances = make([]Instance, 0, len(columns)+len(purlins)+len(rafters))
	model.Instances = append(model.Instances, columns...)
	model.Instances = append(model.Instances, purlins...)
	model.Instances = append(model.Instances, rafters...)

	start := time.Now()
	if model.Columns, err = LayoutColumns(g.backend, p); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	g.logger.Debug("columns laid out", "count", len(columns), "spacing", p.ColumnSpacing())

	if model.Purlins, err = LayoutPurlins(g.backend, p); err != nil {
		return nil, fmt.Errorf("purlins: %w", err)
	}
	g.logger.Debug("purlins laid out", "count", len(purlins), "rise", p.PurlinRise())

	if model.Rafters, err = LayoutRafters(g.backend, p); err != nil {
		return nil, fmt.Errorf("rafters: %w", err)
	}
	g.logger.Debug("rafters laid out", "count", len(rafters), "length", p.RafterLength())

	if model.Solid, err = Assemble(g.backend, model.Columns, model.Purlins, model.Rafters); err != nil {
		return nil, fmt.Errorf("assembly: %w", err)
	}
	g.logger.Debug("frame assembled",
		"members", len(model.Instances),
		"cells", model.Solid.NumCells(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return model, nil
}

// Generate builds a frame with default options
func Generate(b kernel.Backend, params Params) (*Model, error) {
	return NewGenerator(b, params).Generate()
}
