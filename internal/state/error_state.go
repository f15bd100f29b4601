// internal/state/error_state.go
package state

import (
	"go-abalone-board/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*ErrorState)(nil)

// ErrorState replaces the board while the parameters are rejected. Nothing
// of the failed layout is drawn.
type ErrorState struct {
	stateMachine *StateMachine
	board        *BoardState
	err          error
}

func NewErrorState(sm *StateMachine, board *BoardState, err error) *ErrorState {
	return &ErrorState{
		stateMachine: sm,
		board:        board,
		err:          err,
	}
}

func (s *ErrorState) Enter() {}

// Update keeps the parameter keys live; a successful relayout switches the
// machine back to the board.
func (s *ErrorState) Update(deltaTime float64) {
	s.board.handleKeys()
}

func (s *ErrorState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.board.statusFace
	text.Draw(screen, "configuration error", face, 20, 40, config.ErrorColor)
	text.Draw(screen, s.err.Error(), face, 20, 60, config.ErrorColor)
	text.Draw(screen, "adjust the parameters or press Backspace to reset", face, 20, 90, config.StatusColor)
	s.board.drawStatus(screen, "")
}

func (s *ErrorState) Exit() {}
