// pkg/hexboard/placement.go
package hexboard

import "fmt"

// PlacementIndex marks a lattice cell occupied by a player at game start.
type PlacementIndex struct {
	Row      int `json:"row"`
	Col      int `json:"col"`
	PlayerID int `json:"player_id"`
}

// PlacedPiece is a starting piece resolved into pixel space.
type PlacedPiece struct {
	Center   Point   `json:"center"`
	Radius   float64 `json:"radius"`
	PlayerID int     `json:"player_id"`
}

// claims collects placements and drops anything outside the matrix or
// already occupied, so formations never overlap.
type claims struct {
	matrix [][]Point
	taken  map[[2]int]struct{}
	out    []PlacementIndex
}

func newClaims(matrix [][]Point) *claims {
	return &claims{matrix: matrix, taken: make(map[[2]int]struct{})}
}

func (c *claims) claim(row, col, playerID int) {
	if row < 0 || row >= len(c.matrix) || col < 0 || col >= len(c.matrix[row]) {
		return
	}
	key := [2]int{row, col}
	if _, ok := c.taken[key]; ok {
		return
	}
	c.taken[key] = struct{}{}
	c.out = append(c.out, PlacementIndex{Row: row, Col: col, PlayerID: playerID})
}

func (c *claims) claimRow(row, playerID int) {
	if row < 0 || row >= len(c.matrix) {
		return
	}
	for col := range c.matrix[row] {
		c.claim(row, col, playerID)
	}
}

// rowEnd returns the last column index of row, or -1 for a missing row.
func (c *claims) rowEnd(row int) int {
	if row < 0 || row >= len(c.matrix) {
		return -1
	}
	return len(c.matrix[row]) - 1
}

// TwoPlayerPlacement builds the truncated-triangle opening: player 1 at the
// top corner, player 2 mirrored at the bottom. Each formation is a block of
// full rows followed by a three-cell residue centred on the next row.
func TwoPlayerPlacement(matrix [][]Point, circlesPerSide, rowCount int) []PlacementIndex {
	c := newClaims(matrix)
	edge := circlesPerSide - 3

	row := 0
	for ; row < edge; row++ {
		c.claimRow(row, 1)
	}
	if edge > 0 {
		for col := edge; col < circlesPerSide; col++ {
			c.claim(row, col, 1)
		}
	}

	row = rowCount - 1
	for ; row >= rowCount-edge; row-- {
		c.claimRow(row, 2)
	}
	if edge > 0 {
		for col := edge; col < circlesPerSide; col++ {
			c.claim(row, col, 2)
		}
	}
	return c.out
}

// ThreePlayerPlacement gives each player a wedge: player 1 top left,
// player 2 top right, player 3 bottom.
func ThreePlayerPlacement(matrix [][]Point, circlesPerSide, rowCount int) []PlacementIndex {
	c := newClaims(matrix)
	yextent := threePlayerExtent(circlesPerSide)

	// Player 1: leftmost columns of the upper half, then a shrinking residue.
	for row := 0; row < circlesPerSide; row++ {
		for col := 0; col < yextent; col++ {
			c.claim(row, col, 1)
		}
	}
	county := yextent - 1
	for row, n := circlesPerSide, 0; n < yextent; row, n = row+1, n+1 {
		for col := 0; col < county; col++ {
			c.claim(row, col, 1)
		}
		county--
	}

	// Player 2: the same wedge mirrored to the right edge.
	for row := 0; row < circlesPerSide; row++ {
		last := c.rowEnd(row)
		for n := 0; n < yextent; n++ {
			c.claim(row, last-n, 2)
		}
	}
	county = yextent - 1
	for row, n := circlesPerSide, 0; n < yextent; row, n = row+1, n+1 {
		last := c.rowEnd(row)
		for k := 0; k < county; k++ {
			c.claim(row, last-k, 2)
		}
		county--
	}

	// Player 3: full rows from the bottom edge up.
	for row, n := rowCount-1, 0; n < yextent; row, n = row-1, n+1 {
		c.claimRow(row, 3)
	}
	county = yextent - 1
	for row, n := rowCount-1, 0; n < yextent; row, n = row-1, n+1 {
		last := c.rowEnd(row)
		for k := 0; k < county; k++ {
			c.claim(row, last-k, 3)
		}
		county--
	}
	return c.out
}

// threePlayerExtent is the wedge width: 1 for 3-4 circles per side,
// 2 for 5-6, 3 for 7-8 and so on.
func threePlayerExtent(circlesPerSide int) int {
	even := circlesPerSide
	if even%2 != 0 {
		even++
	}
	return (even-4)/2 + 1
}

// Placement dispatches to the formation for the requested player count.
func Placement(matrix [][]Point, circlesPerSide, rowCount int, players PlayerCount) ([]PlacementIndex, error) {
	switch players {
	case TwoPlayers:
		return TwoPlayerPlacement(matrix, circlesPerSide, rowCount), nil
	case ThreePlayers:
		return ThreePlayerPlacement(matrix, circlesPerSide, rowCount), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPlayerCount, int(players))
	}
}

// PieceCenters resolves placement indices into pixel-space pieces.
func PieceCenters(placement []PlacementIndex, matrix [][]Point, origin Point, xUnit, yUnit, cellGap float64) ([]PlacedPiece, error) {
	if len(placement) == 0 {
		return nil, nil
	}
	radius := xUnit - cellGap - PieceInset
	if radius <= 0 {
		return nil, fmt.Errorf("%w: piece radius %.3f (unit %.3f, gap %.3f, inset %.0f)",
			ErrDegenerateCellSize, radius, xUnit, cellGap, PieceInset)
	}

	pieces := make([]PlacedPiece, 0, len(placement))
	for _, pi := range placement {
		if pi.Row < 0 || pi.Row >= len(matrix) || pi.Col < 0 || pi.Col >= len(matrix[pi.Row]) {
			return nil, fmt.Errorf("%w: placement (%d,%d) is outside the board",
				ErrInvalidParameters, pi.Row, pi.Col)
		}
		pieces = append(pieces, PlacedPiece{
			Center:   origin.Add(matrix[pi.Row][pi.Col].Scale(xUnit, yUnit)),
			Radius:   radius,
			PlayerID: pi.PlayerID,
		})
	}
	return pieces, nil
}
