// pkg/hexboard/labels.go
package hexboard

import "strconv"

// LabelPosition is a piece of marker text anchored in pixel space.
type LabelPosition struct {
	Position Point  `json:"position"`
	Text     string `json:"text"`
}

// LabelPositions annotates the board rows (letters, left of each row) and two
// column edges: the top edge and the upper right edge.
func LabelPositions(matrix [][]Point, origin Point, xUnit, yUnit float64, circlesPerSide int) (rowLabels, colLabels []LabelPosition) {
	if len(matrix) == 0 {
		return nil, nil
	}

	rowLabels = make([]LabelPosition, 0, len(matrix))
	for i, row := range matrix {
		first := row[0].Scale(xUnit, yUnit)
		rowLabels = append(rowLabels, LabelPosition{
			Position: Point{X: origin.X + first.X - 2*xUnit, Y: origin.Y + first.Y},
			Text:     rowLetter(i),
		})
	}

	colLabels = make([]LabelPosition, 0, len(matrix[0])+circlesPerSide)
	for col, rel := range matrix[0] {
		p := rel.Scale(xUnit, yUnit)
		colLabels = append(colLabels, LabelPosition{
			Position: Point{X: origin.X + p.X, Y: origin.Y + p.Y - 2*xUnit},
			Text:     strconv.Itoa(col),
		})
	}

	for row := 0; row < circlesPerSide && row < len(matrix); row++ {
		last := matrix[row][len(matrix[row])-1].Scale(xUnit, yUnit)
		colLabels = append(colLabels, LabelPosition{
			Position: Point{X: origin.X + last.X + 2*xUnit, Y: origin.Y + last.Y},
			Text:     strconv.Itoa(row + circlesPerSide),
		})
	}
	return rowLabels, colLabels
}

func rowLetter(i int) string {
	return string(rune('A' + i))
}
