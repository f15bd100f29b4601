// pkg/hexboard/matrix.go
package hexboard

import "go-abalone-board/pkg/utils"

// BuildTranslationMatrix produces the relative lattice offsets of every cell,
// one row per lattice line y in [-(circlesPerSide-1), circlesPerSide-1].
// Horizontal offsets step by 2 so that neighbouring rows interleave.
func BuildTranslationMatrix(circlesPerSide, rowCount int) [][]Point {
	if circlesPerSide < 1 {
		return nil
	}
	matrix := make([][]Point, 0, rowCount)
	for y := -(circlesPerSide - 1); y <= circlesPerSide-1; y++ {
		noOfCols := rowCount - utils.Abs(y)
		row := make([]Point, 0, noOfCols)
		for x := -(noOfCols - 1); x <= noOfCols-1; x += 2 {
			row = append(row, Point{X: float64(x), Y: float64(y)})
		}
		matrix = append(matrix, row)
	}
	return matrix
}

