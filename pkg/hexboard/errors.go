// pkg/hexboard/errors.go
package hexboard

import "errors"

var (
	// ErrInvalidParameters is returned before any computation when the board
	// parameters cannot describe a board.
	ErrInvalidParameters = errors.New("invalid board parameters")

	// ErrDegenerateCellSize is returned when a cell or piece radius comes out
	// non-positive.
	ErrDegenerateCellSize = errors.New("degenerate cell size")

	ErrUnsupportedPlayerCount = errors.New("unsupported player count")
)
