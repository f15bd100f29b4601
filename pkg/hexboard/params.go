// pkg/hexboard/params.go
package hexboard

import (
	"fmt"
	"math"
)

const (
	DefaultEdgeCount      = 6
	DefaultCirclesPerSide = 5
	DefaultBorderBeam     = 10.0
	DefaultRadialLength   = 210.0
	DefaultCellGap        = 0.0

	// PieceInset keeps a starting piece strictly inside its host cell.
	PieceInset = 6.0
)

// Params holds the geometric inputs of one layout computation.
type Params struct {
	EdgeCount      int     `json:"edge_count"`
	CirclesPerSide int     `json:"circles_per_side"`
	BorderBeam     float64 `json:"border_beam"`
	RadialLength   float64 `json:"radial_length"`
	CellGap        float64 `json:"cell_gap"`
}

// DefaultParams returns the standard five-per-side hexagonal board.
func DefaultParams() Params {
	return Params{
		EdgeCount:      DefaultEdgeCount,
		CirclesPerSide: DefaultCirclesPerSide,
		BorderBeam:     DefaultBorderBeam,
		RadialLength:   DefaultRadialLength,
		CellGap:        DefaultCellGap,
	}
}

// Validate checks everything that can be rejected before computing anything.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"border beam", p.BorderBeam},
		{"radial length", p.RadialLength},
		{"cell gap", p.CellGap},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, f.name)
		}
	}
	// The lattice steps are derived from the hexagon's angle; any other
	// polygon tilts or collapses the rows.
	if p.EdgeCount != DefaultEdgeCount {
		return fmt.Errorf("%w: edge count %d, only %d is supported",
			ErrInvalidParameters, p.EdgeCount, DefaultEdgeCount)
	}
	if p.CirclesPerSide < 1 {
		return fmt.Errorf("%w: circles per side %d, need at least 1", ErrInvalidParameters, p.CirclesPerSide)
	}
	if p.BorderBeam < 0 {
		return fmt.Errorf("%w: border beam %.2f is negative", ErrInvalidParameters, p.BorderBeam)
	}
	if p.CellGap < 0 {
		return fmt.Errorf("%w: cell gap %.2f is negative", ErrInvalidParameters, p.CellGap)
	}
	if p.RadialLength-p.BorderBeam <= 0 {
		return fmt.Errorf("%w: radial length %.2f must exceed border beam %.2f",
			ErrInvalidParameters, p.RadialLength, p.BorderBeam)
	}
	return nil
}

// PlayerCount selects a starting formation.
type PlayerCount int

const (
	TwoPlayers   PlayerCount = 2
	ThreePlayers PlayerCount = 3
)

func (pc PlayerCount) Valid() bool {
	return pc == TwoPlayers || pc == ThreePlayers
}
