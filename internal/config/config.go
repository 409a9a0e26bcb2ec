// Package config resolves frame parameters from defaults, an optional TOML
// file, the environment and command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/joho/godotenv"
)

const (
	// EnvConfig names a TOML file to load when --config is not given
	EnvConfig = "GOFRAME_CONFIG"
	// EnvOutput overrides the STEP output path
	EnvOutput = "GOFRAME_OUTPUT"

	// DefaultOutput is where the STEP file goes when nothing else says
	DefaultOutput = "portal_frame.stp"
)

// File is the layout of a TOML frame definition
type File struct {
	Output  string       `toml:"output"`
	Catalog string       `toml:"catalog"`
	Frame   frame.Params `toml:"frame"`
}

// Config is the resolved configuration
type Config struct {
	Params  frame.Params
	Output  string
	Catalog section.Catalog
	// Source is the file the configuration was read from, if any
	Source string
}

// Overrides carries command-line values; nil fields are left alone
type Overrides struct {
	ColumnsPerSide *int
	RafterCount    *int
	PurlinCount    *int
	Angle          *float64
	BaySpan        *float64
	DepthSpan      *float64
	ColumnOffset   *float64
	Grade          *string
	Output         *string
}

// LoadEnv reads .env files into the environment. Missing files are not an
// error; variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("loading %s: %w", strings.Join(present, ", "), err)
	}
	return nil
}

// Default returns the built-in frame with the built-in section catalog
func Default() *Config {
	return &Config{
		Params:  frame.DefaultParams(),
		Output:  DefaultOutput,
		Catalog: section.Builtin,
	}
}

// Load builds a configuration. path falls back to $GOFRAME_CONFIG; with
// neither set the defaults are used. Keys missing from the file keep their
// default values, unknown keys are an error. $GOFRAME_OUTPUT wins over the
// file's output.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if out := os.Getenv(EnvOutput); out != "" {
		cfg.Output = out
	}

	params, err := Resolve(cfg.Params, cfg.Catalog)
	if err != nil {
		return nil, err
	}
	cfg.Params = params
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f := File{Output: c.Output, Frame: c.Params}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if f.Catalog != "" {
		catPath := f.Catalog
		if !filepath.IsAbs(catPath) {
			catPath = filepath.Join(filepath.Dir(path), catPath)
		}
		extra, err := section.LoadFromFile(catPath)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.Catalog = c.Catalog.Merge(extra)
	}

	// a new bay span carries the offset and purlin reference span with it
	// unless the file sets them too
	if md.IsDefined("frame", "bay_span") {
		moved := f.Frame.WithBaySpan(f.Frame.BaySpan)
		if !md.IsDefined("frame", "column_offset") {
			f.Frame.ColumnOffset = moved.ColumnOffset
		}
		if !md.IsDefined("frame", "purlin_reference_span") {
			f.Frame.PurlinReferenceSpan = moved.PurlinReferenceSpan
		}
	}

	c.Params = f.Frame
	c.Output = f.Output
	c.Source = path
	return nil
}

// Apply copies the set overrides into the configuration. A bay span moves
// the column offset to half the span and the purlin reference span with it;
// an explicit column offset still wins.
func (c *Config) Apply(o Overrides) {
	p := &c.Params
	if o.ColumnsPerSide != nil {
		p.Column.PerSide = *o.ColumnsPerSide
	}
	if o.RafterCount != nil {
		p.Rafter.Count = *o.RafterCount
	}
	if o.PurlinCount != nil {
		p.Purlin.Count = *o.PurlinCount
	}
	if o.Angle != nil {
		p.Rafter.Angle = *o.Angle
	}
	if o.BaySpan != nil {
		*p = p.WithBaySpan(*o.BaySpan)
	}
	if o.DepthSpan != nil {
		p.DepthSpan = *o.DepthSpan
	}
	if o.ColumnOffset != nil {
		p.ColumnOffset = *o.ColumnOffset
	}
	if o.Grade != nil {
		p.Grade = *o.Grade
	}
	if o.Output != nil && *o.Output != "" {
		c.Output = *o.Output
	}
}

// ErrSectionKind is returned when a named section has the wrong shape for
// the member it is assigned to
var ErrSectionKind = errors.New("wrong section kind")

// Resolve replaces rafter and purlin dimensions with those of the named
// catalog sections. Rafters take I-sections, purlins take boxes. A column
// section name is kept as a label: column dimensions are always explicit.
func Resolve(p frame.Params, cat section.Catalog) (frame.Params, error) {
	if name := p.Rafter.Section; name != "" {
		prof, err := cat.Lookup(name, 1)
		if err != nil {
			return p, fmt.Errorf("rafter: %w", err)
		}
		if prof.Kind != section.ISection {
			return p, fmt.Errorf("rafter: %w: %s is a %s, need an I-section", ErrSectionKind, name, prof.Kind)
		}
		p.Rafter.Width = prof.Width
		p.Rafter.Depth = prof.Depth
		p.Rafter.FlangeThickness = prof.FlangeThickness
		p.Rafter.WebThickness = prof.WebThickness
	}

	if name := p.Purlin.Section; name != "" {
		prof, err := cat.Lookup(name, 1)
		if err != nil {
			return p, fmt.Errorf("purlin: %w", err)
		}
		if prof.Kind != section.Box {
			return p, fmt.Errorf("purlin: %w: %s is a %s, need a box", ErrSectionKind, name, prof.Kind)
		}
		p.Purlin.Width = prof.Width
		p.Purlin.Height = prof.Depth
	}
	return p, nil
}
