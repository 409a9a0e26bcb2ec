package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{name: "column", profile: NewISection(100, 200, 4000, 200, 10)},
		{name: "rafter", profile: NewISection(4618.8, 200, 100, 15, 4.67)},
		{name: "purlin box ignores plates", profile: NewBox(125, 6000, 175)},
		{name: "zero length", profile: NewISection(0, 200, 100, 15, 5), wantErr: true},
		{name: "negative width", profile: NewISection(10, -1, 100, 15, 5), wantErr: true},
		{name: "flanges meet", profile: NewISection(10, 200, 30, 15, 5), wantErr: true},
		{name: "flanges overlap", profile: NewISection(10, 200, 20, 15, 5), wantErr: true},
		{name: "web as wide as flange", profile: NewISection(10, 200, 100, 15, 200), wantErr: true},
		{name: "missing web", profile: NewISection(10, 200, 100, 15, 0), wantErr: true},
		{name: "box zero depth", profile: NewBox(125, 6000, 0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProfile), "error %v should wrap ErrInvalidProfile", err)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestISectionProperties(t *testing.T) {
	p := NewISection(1000, 200, 100, 15, 5)
	props := p.CalculateProperties()

	wantArea := 2*200*15.0 + 5*70.0
	assert.InDelta(t, wantArea, props.Area, 1e-9)
	assert.InDelta(t, 200, props.Width, 1e-9)
	assert.InDelta(t, 100, props.Height, 1e-9)
	assert.InDelta(t, 100, props.CentroidX, 1e-9)
	assert.InDelta(t, 50, props.CentroidY, 1e-9)
	assert.InDelta(t, wantArea*1000, props.Volume, 1e-6)

	// Ix = b*h^3/12 - (b - tw)*hw^3/12
	wantIx := 200*100*100*100/12.0 - 195*70*70*70/12.0
	assert.InDelta(t, wantIx, props.Ix, 1e-6)
	assert.InDelta(t, wantArea*1e-6*7850, props.MassPerMetre, 1e-9)
	assert.InDelta(t, props.MassPerMetre, props.Mass, 1e-9)
}

func TestBoxOutline(t *testing.T) {
	p := NewBox(125, 6000, 175)
	assert.Len(t, p.Outline(), 4)
	assert.InDelta(t, 6000*175.0, p.CalculateProperties().Area, 1e-9)
}

func TestOutlineIsCounterClockwise(t *testing.T) {
	outline := NewISection(1, 200, 100, 15, 5).Outline()
	var signed float64
	for i := range outline {
		j := (i + 1) % len(outline)
		signed += outline[i].X*outline[j].Y - outline[j].X*outline[i].Y
	}
	assert.Positive(t, signed)
}

func TestCatalogLookup(t *testing.T) {
	p, err := Builtin.Lookup("IPE200", 6000)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, p.Length)
	assert.Equal(t, ISection, p.Kind)
	require.NoError(t, p.Validate())

	_, err = Builtin.Lookup("W999", 1)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestBuiltinCatalogValid(t *testing.T) {
	for _, name := range Builtin.Names() {
		p, err := Builtin.Lookup(name, 1000)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`[
		{"name": "UB203", "width": 133, "depth": 203, "flange_thickness": 7.8, "web_thickness": 5.7},
		{"name": "Z150", "kind": "box", "width": 65, "depth": 150}
	]`), 0o644))

	cat, err := LoadFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"UB203", "Z150"}, cat.Names())
	assert.Equal(t, Box, cat["Z150"].Kind)

	merged := Builtin.Merge(cat)
	assert.Len(t, merged, len(Builtin)+2)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name": "X", "width": 100, "depth": 20, "flange_thickness": 15, "web_thickness": 5}]`), 0o644))
	_, err = LoadFromFile(bad)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I-section", ISection.String())
	assert.Equal(t, "box", Box.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
