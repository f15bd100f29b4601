// internal/state/keys.go
package state

import (
	"go-abalone-board/internal/controls"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key    ebiten.Key
	action controls.Action
}{
	{ebiten.KeyEqual, controls.MoreCircles},
	{ebiten.KeyMinus, controls.FewerCircles},
	{ebiten.KeyBracketRight, controls.WiderGap},
	{ebiten.KeyBracketLeft, controls.NarrowerGap},
	{ebiten.KeyPageUp, controls.WiderBeam},
	{ebiten.KeyPageDown, controls.NarrowerBeam},
	{ebiten.KeyArrowUp, controls.LongerRadius},
	{ebiten.KeyArrowDown, controls.ShorterRadius},
	{ebiten.KeyP, controls.TogglePlayers},
	{ebiten.KeyBackspace, controls.ResetBoard},
}

// pollAction returns the first parameter action pressed this frame.
func pollAction() controls.Action {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			return ka.action
		}
	}
	return controls.NoAction
}

const helpLine = "+/- side [/] gap PgUp/Dn beam Up/Dn radius P I S C"
