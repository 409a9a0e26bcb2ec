package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGrade(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantFy  float64
		wantErr bool
	}{
		{name: "default", input: "", wantFy: 248},
		{name: "exact", input: "a572", wantFy: 345},
		{name: "mixed case", input: " SS400 ", wantFy: 245},
		{name: "unknown", input: "s999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := LookupGrade(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "a36")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFy, g.Fy)
		})
	}
}

func TestGradeNamesSorted(t *testing.T) {
	names := GradeNames()
	require.Len(t, names, len(Grades))
	assert.IsNonDecreasing(t, names)
}

func TestMassPerMetre(t *testing.T) {
	// 10000 mm² = 0.01 m², times 7850 kg/m³
	assert.InDelta(t, 78.5, MassPerMetre(10000), 1e-9)
	assert.InDelta(t, 0.77, WeightPerMetre(10000), 1e-9)
}
