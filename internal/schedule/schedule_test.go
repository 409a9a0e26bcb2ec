package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildDefault(t *testing.T) *Schedule {
	t.Helper()
	model, err := frame.Generate(kernel.New(), frame.DefaultParams())
	require.NoError(t, err)
	s, err := Build(model)
	require.NoError(t, err)
	return s
}

func TestBuildMarks(t *testing.T) {
	s := buildDefault(t)
	require.Len(t, s.Entries, 3)

	byMark := map[string]Entry{}
	for _, e := range s.Entries {
		byMark[e.Mark] = e
	}
	require.Contains(t, byMark, "C1")
	require.Contains(t, byMark, "R1")
	require.Contains(t, byMark, "P1")

	assert.Equal(t, 14, byMark["C1"].Count)
	assert.Equal(t, 16, byMark["R1"].Count)
	assert.Equal(t, 13, byMark["P1"].Count)
	assert.Equal(t, 43, s.TotalCount())
	assert.Equal(t, "ASTM A36", s.Grade.Name)
}

func TestBuildMasses(t *testing.T) {
	s := buildDefault(t)
	p := frame.DefaultParams()

	for _, e := range s.Entries {
		switch e.Role {
		case frame.RoleColumn:
			// two 100x200x200 flange blocks and a 100x10x3600 web
			assert.InDelta(t, 2*100*200*200+100*10*3600.0, e.Volume, 1e-6)
			assert.InDelta(t, 4000, e.Length, 1e-9)
		case frame.RolePurlin:
			assert.InDelta(t, 125*6000*175.0, e.Volume, 1e-6)
			assert.InDelta(t, 125*175*nscp.SteelDensity*1e-6, e.UnitMass, 1e-9)
			assert.Equal(t, "Box 125x175", e.Designation())
		case frame.RoleRafter:
			area := 2*200*15 + 4.67*70
			assert.InEpsilon(t, area*p.RafterLength(), e.Volume, 1e-9)
			assert.InEpsilon(t, area*nscp.SteelDensity*1e-6, e.UnitMass, 1e-9)
			assert.Equal(t, "I 200x100x15x4.67", e.Designation())
		}
		assert.InEpsilon(t, float64(e.Count)*e.UnitMass*e.Length/1000, e.Mass, 1e-9)
	}

	var sum float64
	for _, e := range s.Entries {
		sum += e.Mass
	}
	assert.InDelta(t, sum, s.TotalMass(), 1e-9)
}

func TestBuildUnknownGrade(t *testing.T) {
	p := frame.DefaultParams()
	p.Grade = "unobtainium"
	model, err := frame.Generate(kernel.New(), p)
	require.NoError(t, err)

	_, err = Build(model)
	assert.Error(t, err)
}

func TestNamedSectionDesignation(t *testing.T) {
	p := frame.DefaultParams()
	p.Rafter.Section = "W200x22"
	model, err := frame.Generate(kernel.New(), p)
	require.NoError(t, err)

	s, err := Build(model)
	require.NoError(t, err)
	for _, e := range s.Entries {
		if e.Role == frame.RoleRafter {
			assert.Equal(t, "W200x22", e.Designation())
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	s := buildDefault(t)
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, s.WriteXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Portal Frame", title)

	head, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Mark", head)

	mark, err := f.GetCellValue(sheetName, "A5")
	require.NoError(t, err)
	assert.Equal(t, "C1", mark)

	total, err := f.GetCellValue(sheetName, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)

	qty, err := f.GetCellValue(sheetName, "D8")
	require.NoError(t, err)
	assert.Equal(t, "43", qty)
}

func TestWritePDF(t *testing.T) {
	s := buildDefault(t)
	path := filepath.Join(t.TempDir(), "schedule.pdf")
	require.NoError(t, s.WritePDF(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.24, round(1.236, 2))
	assert.Equal(t, 1030.3, round(1030.2890625, 1))
}
