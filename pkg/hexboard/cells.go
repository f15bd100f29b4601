// pkg/hexboard/cells.go
package hexboard

import "fmt"

// Cell is one playable position in pixel space.
type Cell struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Index  int     `json:"index"`
}

// Contains reports whether pt lies inside the cell circle.
func (c Cell) Contains(pt Point) bool {
	dx := pt.X - c.Center.X
	dy := pt.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// CellCenters scales the translation matrix into pixel space and numbers the
// cells in row-major order.
func CellCenters(matrix [][]Point, origin Point, xUnit, yUnit, cellGap float64) ([][]Cell, error) {
	radius := xUnit - cellGap
	if radius <= 0 {
		return nil, fmt.Errorf("%w: cell radius %.3f (unit %.3f, gap %.3f)",
			ErrDegenerateCellSize, radius, xUnit, cellGap)
	}

	cells := make([][]Cell, 0, len(matrix))
	index := 0
	for _, offsets := range matrix {
		row := make([]Cell, 0, len(offsets))
		for _, rel := range offsets {
			row = append(row, Cell{
				Center: origin.Add(rel.Scale(xUnit, yUnit)),
				Radius: radius,
				Index:  index,
			})
			index++
		}
		cells = append(cells, row)
	}
	return cells, nil
}
