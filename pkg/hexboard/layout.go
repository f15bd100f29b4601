// pkg/hexboard/layout.go
package hexboard

import "fmt"

// Layout is the complete geometry of one board, ready for any renderer.
type Layout struct {
	Params    Params           `json:"params"`
	Origin    Point            `json:"origin"`
	Players   PlayerCount      `json:"players"`
	Geometry  Geometry         `json:"geometry"`
	Outer     []Point          `json:"outer_polygon"`
	Inner     []Point          `json:"inner_polygon"`
	Matrix    [][]Point        `json:"translation_matrix"`
	Cells     [][]Cell         `json:"cells"`
	RowLabels []LabelPosition  `json:"row_labels"`
	ColLabels []LabelPosition  `json:"col_labels"`
	Placement []PlacementIndex `json:"placement"`
	Pieces    []PlacedPiece    `json:"pieces"`
}

// Compute runs the whole pipeline. Either every stage succeeds or no layout
// is returned.
func Compute(p Params, origin Point, players PlayerCount) (*Layout, error) {
	if !players.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPlayerCount, int(players))
	}
	geo, err := ComputeGeometry(p)
	if err != nil {
		return nil, err
	}

	outer := OuterPolygon(origin, p.RadialLength, p.EdgeCount, geo.ExternalAngleRad)
	inner := InnerPolygon(origin, p.EdgeCount, geo)
	matrix := BuildTranslationMatrix(p.CirclesPerSide, geo.RowCount)

	cells, err := CellCenters(matrix, origin, geo.XUnit, geo.YUnit, p.CellGap)
	if err != nil {
		return nil, err
	}
	rowLabels, colLabels := LabelPositions(matrix, origin, geo.XUnit, geo.YUnit, p.CirclesPerSide)

	placement, err := Placement(matrix, p.CirclesPerSide, geo.RowCount, players)
	if err != nil {
		return nil, err
	}
	pieces, err := PieceCenters(placement, matrix, origin, geo.XUnit, geo.YUnit, p.CellGap)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Params:    p,
		Origin:    origin,
		Players:   players,
		Geometry:  geo,
		Outer:     outer,
		Inner:     inner,
		Matrix:    matrix,
		Cells:     cells,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Placement: placement,
		Pieces:    pieces,
	}, nil
}

// CellCount returns the number of playable cells.
func (l *Layout) CellCount() int {
	n := 0
	for _, row := range l.Cells {
		n += len(row)
	}
	return n
}

// CellAt finds the cell under a pixel position.
func (l *Layout) CellAt(pt Point) (Cell, bool) {
	lo, hi := l.Bounds()
	if pt.X < lo.X || pt.X > hi.X || pt.Y < lo.Y || pt.Y > hi.Y {
		return Cell{}, false
	}
	for _, row := range l.Cells {
		for _, cell := range row {
			if cell.Contains(pt) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}

// PiecesFor returns the starting pieces that belong to playerID.
func (l *Layout) PiecesFor(playerID int) []PlacedPiece {
	var out []PlacedPiece
	for _, piece := range l.Pieces {
		if piece.PlayerID == playerID {
			out = append(out, piece)
		}
	}
	return out
}

// Bounds returns the smallest rectangle containing the outer polygon.
func (l *Layout) Bounds() (lo, hi Point) {
	if len(l.Outer) == 0 {
		return l.Origin, l.Origin
	}
	lo, hi = l.Outer[0], l.Outer[0]
	for _, v := range l.Outer[1:] {
		if v.X < lo.X {
			lo.X = v.X
		}
		if v.Y < lo.Y {
			lo.Y = v.Y
		}
		if v.X > hi.X {
			hi.X = v.X
		}
		if v.Y > hi.Y {
			hi.Y = v.Y
		}
	}
	return lo, hi
}
