package section

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog maps designations to cross-section dimensions. Lengths are zero;
// the frame cuts each catalog profile to the length it needs.
type Catalog map[string]Profile

// Builtin holds the hot-rolled shapes commonly used for light portal frames
var Builtin = Catalog{
	"W150x13":    {Name: "W150x13", Kind: ISection, Width: 100, Depth: 148, FlangeThickness: 4.9, WebThickness: 4.3},
	"W200x22":    {Name: "W200x22", Kind: ISection, Width: 102, Depth: 206, FlangeThickness: 8.0, WebThickness: 6.2},
	"W250x33":    {Name: "W250x33", Kind: ISection, Width: 146, Depth: 258, FlangeThickness: 9.1, WebThickness: 6.1},
	"W310x39":    {Name: "W310x39", Kind: ISection, Width: 165, Depth: 310, FlangeThickness: 9.7, WebThickness: 5.8},
	"W360x45":    {Name: "W360x45", Kind: ISection, Width: 171, Depth: 352, FlangeThickness: 9.8, WebThickness: 6.9},
	"HEA200":     {Name: "HEA200", Kind: ISection, Width: 200, Depth: 190, FlangeThickness: 10, WebThickness: 6.5},
	"IPE200":     {Name: "IPE200", Kind: ISection, Width: 100, Depth: 200, FlangeThickness: 8.5, WebThickness: 5.6},
	"IPE300":     {Name: "IPE300", Kind: ISection, Width: 150, Depth: 300, FlangeThickness: 10.7, WebThickness: 7.1},
	"BOX125x175": {Name: "BOX125x175", Kind: Box, Width: 125, Depth: 175},
}

// catalogEntry is the JSON form of a catalog profile
type catalogEntry struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind,omitempty"` // "i" (default) or "box"
	Width           float64 `json:"width"`
	Depth           float64 `json:"depth"`
	FlangeThickness float64 `json:"flange_thickness,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty"`
}

// LoadFromFile loads a profile catalog from a JSON file of the form
//
//	[{"name": "W200x22", "width": 102, "depth": 206, "flange_thickness": 8, "web_thickness": 6.2}]
//
// Entries are validated with a nominal unit length.
func LoadFromFile(filepath string) (Catalog, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	catalog := Catalog{}
	for i, e := range entries {
		if e.Name == "" {
			return nil, &ValidationError{fmt.Sprintf("catalog entry %d has no name", i+1)}
		}
		p := Profile{
			Name:            e.Name,
			Kind:            ISection,
			Width:           e.Width,
			Depth:           e.Depth,
			FlangeThickness: e.FlangeThickness,
			WebThickness:    e.WebThickness,
		}
		if e.Kind == "box" {
			p.Kind = Box
		}
		if err := p.WithLength(1).Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
		}
		catalog[e.Name] = p
	}

	return catalog, nil
}

// Lookup returns the named profile cut to length
func (c Catalog) Lookup(name string, length float64) (Profile, error) {
	p, ok := c[name]
	if !ok {
		return Profile{}, &ValidationError{fmt.Sprintf("unknown section %q", name)}
	}
	return p.WithLength(length), nil
}

// Names returns the sorted designations in the catalog
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Merge returns a catalog with the entries of other added to (and overriding) c
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
