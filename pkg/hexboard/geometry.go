// pkg/hexboard/geometry.go
package hexboard

import (
	"fmt"
	"math"
)

// Point is either a relative lattice offset or an absolute pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add возвращает сумму двух точек
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale maps a lattice offset into pixel space.
func (p Point) Scale(xUnit, yUnit float64) Point {
	return Point{X: p.X * xUnit, Y: p.Y * yUnit}
}

// Geometry holds the constants every later pipeline stage is derived from.
type Geometry struct {
	ExternalAngleRad  float64 `json:"external_angle_rad"`
	InnerRadialLength float64 `json:"inner_radial_length"`
	XUnit             float64 `json:"x_unit"`
	YUnit             float64 `json:"y_unit"`
	RowCount          int     `json:"row_count"`
}

// ComputeGeometry derives the unit sizes of one lattice step.
func ComputeGeometry(p Params) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}

	extAngle := math.Pi / float64(p.EdgeCount) * 2
	inner := p.RadialLength - p.BorderBeam
	// The last term leaves room for half a cell plus the slanted border.
	xUnit := inner / (2*float64(p.CirclesPerSide-1) + 1/math.Sin(extAngle))
	yUnit := xUnit * math.Tan(extAngle)

	if math.IsNaN(xUnit) || math.IsInf(xUnit, 0) || math.IsNaN(yUnit) || math.IsInf(yUnit, 0) {
		return Geometry{}, fmt.Errorf("%w: unit size is not finite for edge count %d",
			ErrInvalidParameters, p.EdgeCount)
	}

	return Geometry{
		ExternalAngleRad:  extAngle,
		InnerRadialLength: inner,
		XUnit:             xUnit,
		YUnit:             yUnit,
		RowCount:          2*p.CirclesPerSide - 1,
	}, nil
}

// OuterPolygon traces a regular polygon circumscribed by a circle of radius
// radialLength. The first vertex is repeated at the end to close it.
func OuterPolygon(origin Point, radialLength float64, edgeCount int, extAngle float64) []Point {
	vertices := make([]Point, 0, edgeCount+1)
	for i := 0; i <= edgeCount; i++ {
		angle := float64(i) * extAngle
		vertices = append(vertices, Point{
			X: origin.X + radialLength*math.Cos(angle),
			Y: origin.Y + radialLength*math.Sin(angle),
		})
	}
	return vertices
}

// InnerPolygon is the outline of the playing field, the outer polygon moved
// in by the border beam.
func InnerPolygon(origin Point, edgeCount int, geo Geometry) []Point {
	return OuterPolygon(origin, geo.InnerRadialLength, edgeCount, geo.ExternalAngleRad)
}

// Canvas is the drawing area the board is centered in.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize squares the canvas to its shorter side.
func (c Canvas) Normalize() Canvas {
	side := math.Min(c.Width, c.Height)
	return Canvas{Width: side, Height: side}
}

func (c Canvas) Center() Point {
	return Point{X: c.Width / 2, Y: c.Height / 2}
}
