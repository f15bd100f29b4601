// internal/config/board_file.go
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-abalone-board/pkg/hexboard"
)

// BoardFile mirrors the JSON board description. Pointer fields distinguish
// "unset" from zero so defaults are substituted exactly once, here.
type BoardFile struct {
	EdgeCount      *int     `json:"edge_count,omitempty"`
	CirclesPerSide *int     `json:"circles_per_side,omitempty"`
	BorderBeam     *float64 `json:"border_beam,omitempty"`
	RadialLength   *float64 `json:"radial_length,omitempty"`
	CellGap        *float64 `json:"cell_gap,omitempty"`
	Players        *int     `json:"players,omitempty"`
	CanvasWidth    *float64 `json:"canvas_width,omitempty"`
	CanvasHeight   *float64 `json:"canvas_height,omitempty"`
	LockSquare     *bool    `json:"lock_square,omitempty"`
}

// Board is a fully resolved configuration.
type Board struct {
	Params     hexboard.Params
	Players    hexboard.PlayerCount
	Canvas     hexboard.Canvas
	LockSquare bool
}

// DefaultBoard returns the configuration used when nothing is supplied.
func DefaultBoard() Board {
	return Board{
		Params:     hexboard.DefaultParams(),
		Players:    DefaultPlayers,
		Canvas:     hexboard.Canvas{Width: ScreenWidth, Height: ScreenHeight},
		LockSquare: true,
	}
}

// Origin returns the board center, squaring the canvas first when locked.
func (b Board) Origin() hexboard.Point {
	return b.DrawCanvas().Center()
}

// DrawCanvas is the canvas actually drawn on.
func (b Board) DrawCanvas() hexboard.Canvas {
	if b.LockSquare {
		return b.Canvas.Normalize()
	}
	return b.Canvas
}

// Resolve fills unset fields from the defaults.
func (f BoardFile) Resolve() Board {
	b := DefaultBoard()
	if f.EdgeCount != nil {
		b.Params.EdgeCount = *f.EdgeCount
	}
	if f.CirclesPerSide != nil {
		b.Params.CirclesPerSide = *f.CirclesPerSide
	}
	if f.BorderBeam != nil {
		b.Params.BorderBeam = *f.BorderBeam
	}
	if f.RadialLength != nil {
		b.Params.RadialLength = *f.RadialLength
	}
	if f.CellGap != nil {
		b.Params.CellGap = *f.CellGap
	}
	if f.Players != nil {
		b.Players = hexboard.PlayerCount(*f.Players)
	}
	if f.CanvasWidth != nil {
		b.Canvas.Width = *f.CanvasWidth
	}
	if f.CanvasHeight != nil {
		b.Canvas.Height = *f.CanvasHeight
	}
	if f.LockSquare != nil {
		b.LockSquare = *f.LockSquare
	}
	return b
}

// Validate checks the parts of the configuration the layout engine does not.
func (b Board) Validate() error {
	if err := b.Params.Validate(); err != nil {
		return err
	}
	if !b.Players.Valid() {
		return fmt.Errorf("%w: %d", hexboard.ErrUnsupportedPlayerCount, int(b.Players))
	}
	if b.Canvas.Width <= 0 || b.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %.0fx%.0f", hexboard.ErrInvalidParameters, b.Canvas.Width, b.Canvas.Height)
	}
	return nil
}

// LoadBoard reads a board file. An empty path yields the defaults.
func LoadBoard(path string) (Board, error) {
	if path == "" {
		return DefaultBoard(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("failed to read board file: %w", err)
	}

	var f BoardFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Board{}, fmt.Errorf("failed to unmarshal board file: %w", err)
	}

	b := f.Resolve()
	if err := b.Validate(); err != nil {
		return Board{}, fmt.Errorf("board file %s: %w", path, err)
	}
	log.Printf("loaded board %s: %d per side, %d players\n", path, b.Params.CirclesPerSide, int(b.Players))
	return b, nil
}
