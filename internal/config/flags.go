// internal/config/flags.go
package config

import (
	"flag"

	"go-abalone-board/pkg/hexboard"
)

// Flags binds the board file path and per-field overrides to a flag set.
// Only flags given explicitly on the command line override the file.
type Flags struct {
	fs *flag.FlagSet

	File           string
	CirclesPerSide int
	BorderBeam     float64
	RadialLength   float64
	CellGap        float64
	Players        int
	Width          float64
	Height         float64
	LockSquare     bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := DefaultBoard()
	f := &Flags{fs: fs}
	fs.StringVar(&f.File, "board", "", "JSON board file (defaults are used for unset fields)")
	fs.IntVar(&f.CirclesPerSide, "side", d.Params.CirclesPerSide, "circles per side")
	fs.Float64Var(&f.BorderBeam, "beam", d.Params.BorderBeam, "border beam width")
	fs.Float64Var(&f.RadialLength, "radius", d.Params.RadialLength, "radial length of the outer hexagon")
	fs.Float64Var(&f.CellGap, "gap", d.Params.CellGap, "gap subtracted from each cell radius")
	fs.IntVar(&f.Players, "players", int(d.Players), "starting formation: 2 or 3 players")
	fs.Float64Var(&f.Width, "width", d.Canvas.Width, "canvas width")
	fs.Float64Var(&f.Height, "height", d.Canvas.Height, "canvas height")
	fs.BoolVar(&f.LockSquare, "square", d.LockSquare, "square the canvas to its shorter side")
	return f
}

// Load reads the board file and applies the explicitly set flags on top.
// Call it after the flag set has been parsed.
func (f *Flags) Load() (Board, error) {
	b, err := LoadBoard(f.File)
	if err != nil {
		return Board{}, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "side":
			b.Params.CirclesPerSide = f.CirclesPerSide
		case "beam":
			b.Params.BorderBeam = f.BorderBeam
		case "radius":
			b.Params.RadialLength = f.RadialLength
		case "gap":
			b.Params.CellGap = f.CellGap
		case "players":
			b.Players = hexboard.PlayerCount(f.Players)
		case "width":
			b.Canvas.Width = f.Width
		case "height":
			b.Canvas.Height = f.Height
		case "square":
			b.LockSquare = f.LockSquare
		}
	})
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}
