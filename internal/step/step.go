// Package step writes solids as ISO 10303-21 (STEP) files using the AP214
// automotive design schema.
//
// Each cell of a solid becomes a MANIFOLD_SOLID_BREP bounded by six planar
// faces; all of them are collected under one ADVANCED_BREP_SHAPE_REPRESENTATION
// attached to a single product.
package step

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/goframe/internal/kernel"
)

// ErrExportFailed wraps every export failure
var ErrExportFailed = errors.New("step export failed")

// Schema is the FILE_SCHEMA written in the header
const Schema = "AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }"

// Options fills the header and product names
type Options struct {
	Product      string
	FileName     string
	Author       string
	Organization string
	Timestamp    time.Time
}

func (o Options) withDefaults() Options {
	if o.Product == "" {
		o.Product = "portal_frame"
	}
	if o.FileName == "" {
		o.FileName = o.Product + ".stp"
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now()
	}
	return o
}

// WriteFile writes s to path. The file is written next to its destination
// and renamed into place, so a failed export leaves nothing behind.
func WriteFile(path string, s *kernel.Solid, opts Options) (err error) {
	if opts.FileName == "" {
		opts.FileName = filepath.Base(path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".goframe-*.stp.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, s, opts); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

// Write encodes s as a STEP file to w
func Write(w io.Writer, s *kernel.Solid, opts Options) error {
	if s == nil || s.IsEmpty() {
		return fmt.Errorf("%w: nothing to export", ErrExportFailed)
	}
	opts = opts.withDefaults()

	e := &encoder{w: bufio.NewWriter(w)}
	e.header(opts)

	e.line("DATA;")
	shape := e.product(opts.Product)
	ctx := e.context()
	origin := e.axis(kernel.Vec3{}, kernel.Vec3{0, 0, 1}, kernel.Vec3{1, 0, 0})

	items := []int{origin}
	for i, c := range s.Cells() {
		items = append(items, e.cell(fmt.Sprintf("%s cell %d", opts.Product, i+1), c))
	}
	rep := e.add("ADVANCED_BREP_SHAPE_REPRESENTATION(%s,%s,%s)", str(opts.Product), refs(items), ref(ctx))
	e.add("SHAPE_DEFINITION_REPRESENTATION(%s,%s)", ref(shape), ref(rep))
	e.line("ENDSEC;")
	e.line("END-ISO-10303-21;")

	if e.err == nil {
		e.err = e.w.Flush()
	}
	if e.err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, e.err)
	}
	return nil
}

// encoder numbers entities as it writes them and keeps the first write error
type encoder struct {
	w    *bufio.Writer
	next int
	err  error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s + "\n")
}

// add writes one DATA entity and returns its instance number
func (e *encoder) add(format string, args ...any) int {
	e.next++
	e.line(fmt.Sprintf("#%d=%s;", e.next, fmt.Sprintf(format, args...)))
	return e.next
}

func (e *encoder) header(o Options) {
	e.line("ISO-10303-21;")
	e.line("HEADER;")
	e.line(fmt.Sprintf("FILE_DESCRIPTION((%s),'2;1');", str("steel portal frame")))
	e.line(fmt.Sprintf("FILE_NAME(%s,%s,(%s),(%s),%s,%s,'');",
		str(o.FileName),
		str(o.Timestamp.UTC().Format("2006-01-02T15:04:05")),
		str(o.Author),
		str(o.Organization),
		str("goframe"),
		str("goframe")))
	e.line(fmt.Sprintf("FILE_SCHEMA((%s));", str(Schema)))
	e.line("ENDSEC;")
}

// product writes the product structure and returns its shape definition
func (e *encoder) product(name string) int {
	app := e.add("APPLICATION_CONTEXT('core data for automotive mechanical design processes')")
	e.add("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2000,%s)", ref(app))
	pctx := e.add("PRODUCT_CONTEXT('',%s,'mechanical')", ref(app))
	dctx := e.add("PRODUCT_DEFINITION_CONTEXT('part definition',%s,'design')", ref(app))
	prod := e.add("PRODUCT(%s,%s,'',(%s))", str(name), str(name), ref(pctx))
	e.add("PRODUCT_RELATED_PRODUCT_CATEGORY('part',$,(%s))", ref(prod))
	form := e.add("PRODUCT_DEFINITION_FORMATION('','',%s)", ref(prod))
	def := e.add("PRODUCT_DEFINITION('design','',%s,%s)", ref(form), ref(dctx))
	return e.add("PRODUCT_DEFINITION_SHAPE('','',%s)", ref(def))
}

// context writes millimetre units and the geometric context
func (e *encoder) context() int {
	length := e.add("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angle := e.add("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solid := e.add("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	unc := e.add("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-07),%s,'distance_accuracy_value','confusion accuracy')", ref(length))
	return e.add("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((%s))"+
		"GLOBAL_UNIT_ASSIGNED_CONTEXT((%s,%s,%s))REPRESENTATION_CONTEXT('Context #1','3D Context with UNIT and UNCERTAINTY'))",
		ref(unc), ref(length), ref(angle), ref(solid))
}

func (e *encoder) point(p kernel.Vec3) int {
	return e.add("CARTESIAN_POINT('',%s)", triple(p))
}

func (e *encoder) direction(d kernel.Vec3) int {
	return e.add("DIRECTION('',%s)", triple(d.Normalize()))
}

func (e *encoder) axis(at, normal, xdir kernel.Vec3) int {
	p := e.point(at)
	n := e.direction(normal)
	r := e.direction(xdir)
	return e.add("AXIS2_PLACEMENT_3D('',%s,%s,%s)", ref(p), ref(n), ref(r))
}

// cell writes one hexahedral cell as a manifold B-rep and returns it
func (e *encoder) cell(name string, c kernel.Cell) int {
	var points, vertices [8]int
	for i, p := range c {
		points[i] = e.point(p)
		vertices[i] = e.add("VERTEX_POINT('',%s)", ref(points[i]))
	}

	cellEdges := c.Edges()
	var curves [12]int
	for i, ed := range cellEdges {
		a, b := c[ed[0]], c[ed[1]]
		span := b.Sub(a)
		dir := e.direction(span)
		vec := e.add("VECTOR('',%s,%s)", ref(dir), num(span.Len()))
		line := e.add("LINE('',%s,%s)", ref(points[ed[0]]), ref(vec))
		curves[i] = e.add("EDGE_CURVE('',%s,%s,%s,.T.)", ref(vertices[ed[0]]), ref(vertices[ed[1]]), ref(line))
	}

	var faces []int
	for _, f := range c.Faces() {
		loop := make([]int, 0, 4)
		for k := 0; k < 4; k++ {
			from, to := f[k], f[(k+1)%4]
			idx, forward := findEdge(cellEdges, from, to)
			loop = append(loop, e.add("ORIENTED_EDGE('',*,*,%s,%s)", ref(curves[idx]), logical(forward)))
		}
		edgeLoop := e.add("EDGE_LOOP('',%s)", refs(loop))
		bound := e.add("FACE_OUTER_BOUND('',%s,.T.)", ref(edgeLoop))

		u := c[f[1]].Sub(c[f[0]])
		v := c[f[2]].Sub(c[f[0]])
		plane := e.add("PLANE('',%s)", ref(e.axis(c[f[0]], u.Cross(v), u)))
		faces = append(faces, e.add("ADVANCED_FACE('',(%s),%s,.T.)", ref(bound), ref(plane)))
	}

	shell := e.add("CLOSED_SHELL('',%s)", refs(faces))
	return e.add("MANIFOLD_SOLID_BREP(%s,%s)", str(name), ref(shell))
}

// findEdge locates the edge joining two corners and reports whether it runs
// from a to b
func findEdge(edges [12][2]int, a, b int) (int, bool) {
	for i, ed := range edges {
		if ed[0] == a && ed[1] == b {
			return i, true
		}
		if ed[0] == b && ed[1] == a {
			return i, false
		}
	}
	panic(fmt.Sprintf("step: corners %d and %d share no edge", a, b))
}

func ref(id int) string {
	return "#" + strconv.Itoa(id)
}

func refs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = ref(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func logical(b bool) string {
	if b {
		return ".T."
	}
	return ".F."
}

// num formats a STEP REAL, which always carries a decimal point
func num(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

func triple(v kernel.Vec3) string {
	return "(" + num(v[0]) + "," + num(v[1]) + "," + num(v[2]) + ")"
}

// str quotes a STEP string; quotes are doubled and non-ASCII is replaced
func str(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\'':
			sb.WriteString("''")
		case r == '\\':
			sb.WriteString("\\\\")
		case r < 0x20 || r > 0x7e:
			sb.WriteByte('?')
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
