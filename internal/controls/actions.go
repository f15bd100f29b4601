// internal/controls/actions.go
package controls

import (
	"go-abalone-board/internal/config"
	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/utils"
)

// Action is one user request that changes board parameters.
type Action int

const (
	NoAction Action = iota
	MoreCircles
	FewerCircles
	WiderGap
	NarrowerGap
	WiderBeam
	NarrowerBeam
	LongerRadius
	ShorterRadius
	TogglePlayers
	ResetBoard
)

var actionNames = map[Action]string{
	NoAction:      "none",
	MoreCircles:   "more-circles",
	FewerCircles:  "fewer-circles",
	WiderGap:      "wider-gap",
	NarrowerGap:   "narrower-gap",
	WiderBeam:     "wider-beam",
	NarrowerBeam:  "narrower-beam",
	LongerRadius:  "longer-radius",
	ShorterRadius: "shorter-radius",
	TogglePlayers: "toggle-players",
	ResetBoard:    "reset",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Apply returns the board after the action and whether anything changed.
// Values are only nudged within sane ranges; anything the engine would
// reject is still left for the engine to report.
func Apply(b config.Board, a Action) (config.Board, bool) {
	next := b
	p := &next.Params
	switch a {
	case MoreCircles:
		p.CirclesPerSide = utils.Clamp(p.CirclesPerSide+1, config.MinCirclesPerSide, config.MaxCirclesPerSide)
	case FewerCircles:
		p.CirclesPerSide = utils.Clamp(p.CirclesPerSide-1, config.MinCirclesPerSide, config.MaxCirclesPerSide)
	case WiderGap:
		p.CellGap += config.CellGapStep
	case NarrowerGap:
		p.CellGap = nonNegative(p.CellGap - config.CellGapStep)
	case WiderBeam:
		p.BorderBeam += config.BorderBeamStep
	case NarrowerBeam:
		p.BorderBeam = nonNegative(p.BorderBeam - config.BorderBeamStep)
	case LongerRadius:
		p.RadialLength += config.RadialLengthStep
	case ShorterRadius:
		p.RadialLength = nonNegative(p.RadialLength - config.RadialLengthStep)
	case TogglePlayers:
		if next.Players == hexboard.TwoPlayers {
			next.Players = hexboard.ThreePlayers
		} else {
			next.Players = hexboard.TwoPlayers
		}
	case ResetBoard:
		d := config.DefaultBoard()
		next.Params = d.Params
		next.Players = d.Players
	}
	return next, next != b
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
