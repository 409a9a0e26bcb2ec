package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/goframe/internal/frame"
)

// Point represents a 2D coordinate on a drawing
type Point struct {
	X float64
	Y float64
}

var drawOrder = map[frame.Role]int{
	frame.RoleColumn: 0,
	frame.RoleRafter: 1,
	frame.RolePurlin: 2,
}

const (
	minASCIICols = 20
	minASCIIRows = 8
)

// glyph picks the character a member is drawn with
func glyph(s MemberShape) rune {
	switch s.Role {
	case frame.RoleColumn:
		return '#'
	case frame.RolePurlin:
		return 'o'
	case frame.RoleRafter:
		if s.Side == frame.SideRight {
			return '\\'
		}
		return '/'
	}
	return '?'
}

// DrawASCIIElevation renders the frame elevation into a cols × rows
// character grid. Small grids are widened to a readable minimum.
func DrawASCIIElevation(model *frame.Model, cols, rows int) (string, error) {
	cols = max(cols, minASCIICols)
	rows = max(rows, minASCIIRows)

	shapes, err := ProjectModel(model, Elevation)
	if err != nil {
		return "", err
	}
	if len(shapes) == 0 {
		return "", fmt.Errorf("nothing to draw")
	}

	minX, maxX := shapes[0].Outline[0].X, shapes[0].Outline[0].X
	minY, maxY := shapes[0].Outline[0].Y, shapes[0].Outline[0].Y
	for _, s := range shapes {
		for _, p := range s.Outline {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}
	dx := (maxX - minX) / float64(cols)
	dy := (maxY - minY) / float64(rows)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	// purlins sit on the rafters, so draw them last
	sort.SliceStable(shapes, func(i, j int) bool {
		return drawOrder[shapes[i].Role] < drawOrder[shapes[j].Role]
	})
	for _, s := range shapes {
		ch := glyph(s)
		for r := 0; r < rows; r++ {
			top := maxY - float64(r)*dy
			for c := 0; c < cols; c++ {
				left := minX + float64(c)*dx
				if overlapsRect(s.Outline, left, top-dy, left+dx, top) {
					grid[r][c] = ch
				}
			}
		}
	}

	p := model.Params
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s ELEVATION\n", strings.ToUpper(p.Name)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len(p.Name)+10)))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for r, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		switch r {
		case 0:
			sb.WriteString(fmt.Sprintf(" ◄─ %.0f mm", maxY))
		case rows - 1:
			sb.WriteString(fmt.Sprintf(" ◄─ %.0f mm", minY))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("   %-*s%s\n", cols/2, fmt.Sprintf("%.0f", minX), fmt.Sprintf("%*.0f", cols-cols/2, maxX)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ### = Column\n")
	sb.WriteString("  / \\ = Rafter (left, right)\n")
	sb.WriteString("  ooo = Purlin\n")
	sb.WriteString(fmt.Sprintf("  Eave at %.0f mm, ridge at %.0f mm, pitch %.1f°\n",
		p.EaveHeight(), p.EaveHeight()+p.Rise(), p.Rafter.Angle))

	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-len([]rune(s)))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
