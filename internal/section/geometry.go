package section

import (
	"math"

	"github.com/alexiusacademia/goframe/internal/nscp"
)

// Outline returns the cross-section boundary, counter-clockwise from the
// bottom-left corner of the bottom flange
func (p Profile) Outline() []Point {
	if p.Kind == Box {
		return []Point{
			{X: 0, Y: 0},
			{X: p.Width, Y: 0},
			{X: p.Width, Y: p.Depth},
			{X: 0, Y: p.Depth},
		}
	}

	tf := p.FlangeThickness
	webLeft := (p.Width - p.WebThickness) / 2
	webRight := webLeft + p.WebThickness

	return []Point{
		{X: 0, Y: 0},
		{X: p.Width, Y: 0},
		{X: p.Width, Y: tf},
		{X: webRight, Y: tf},
		{X: webRight, Y: p.Depth - tf},
		{X: p.Width, Y: p.Depth - tf},
		{X: p.Width, Y: p.Depth},
		{X: 0, Y: p.Depth},
		{X: 0, Y: p.Depth - tf},
		{X: webLeft, Y: p.Depth - tf},
		{X: webLeft, Y: tf},
		{X: 0, Y: tf},
	}
}

// CalculateProperties computes geometric and mass properties of the profile
func (p Profile) CalculateProperties() *Properties {
	props := &Properties{}

	vertices := p.Outline()
	if len(vertices) < 3 {
		return props
	}

	minX, maxX := vertices[0].X, vertices[0].X
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	props.Width = maxX - minX
	props.Height = maxY - minY

	props.Area, props.CentroidX, props.CentroidY = areaAndCentroid(vertices)
	props.Ix = secondMoment(vertices) - props.Area*props.CentroidY*props.CentroidY

	props.Volume = props.Area * p.Length
	props.MassPerMetre = nscp.MassPerMetre(props.Area)
	props.Mass = props.MassPerMetre * p.Length / 1000

	return props
}

// areaAndCentroid uses the shoelace formula
func areaAndCentroid(vertices []Point) (area, cx, cy float64) {
	n := len(vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMoment is the second moment of area about the X axis (y = 0)
func secondMoment(vertices []Point) float64 {
	n := len(vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		sum += (vertices[i].Y*vertices[i].Y + vertices[i].Y*vertices[j].Y + vertices[j].Y*vertices[j].Y) * cross
	}
	return math.Abs(sum / 12)
}
