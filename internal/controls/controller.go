// internal/controls/controller.go
package controls

import (
	"log"

	"go-abalone-board/internal/config"
	"go-abalone-board/internal/event"
	"go-abalone-board/pkg/hexboard"
)

// LayoutReadyData is the payload of event.LayoutReady.
type LayoutReadyData struct {
	Board  config.Board
	Layout *hexboard.Layout
}

// LayoutFailedData is the payload of event.LayoutFailed.
type LayoutFailedData struct {
	Board config.Board
	Err   error
}

// Controller owns the current board configuration. Every change is
// announced as ParamsChanged and answered with a complete recomputation.
type Controller struct {
	board      config.Board
	dispatcher *event.Dispatcher

	// result of the latest recomputation; nil while the board is rejected
	layout  *hexboard.Layout
	laidOut config.Board
}

func NewController(board config.Board, d *event.Dispatcher) *Controller {
	c := &Controller{board: board, dispatcher: d}
	d.Subscribe(event.ParamsChanged, c)
	return c
}

func (c *Controller) Board() config.Board {
	return c.board
}

// Do applies an action and triggers a re-layout if it changed anything.
func (c *Controller) Do(a Action) bool {
	next, changed := Apply(c.board, a)
	if !changed {
		return false
	}
	log.Printf("controls: %s", a)
	c.SetBoard(next)
	return true
}

// SetBoard replaces the configuration outright.
func (c *Controller) SetBoard(b config.Board) {
	c.board = b
	c.dispatcher.Dispatch(event.Event{Type: event.ParamsChanged, Data: b})
}

// Relayout recomputes the current board without changing it.
func (c *Controller) Relayout() {
	c.dispatcher.Dispatch(event.Event{Type: event.ParamsChanged, Data: c.board})
}

// OnEvent recomputes the full layout for a ParamsChanged event.
func (c *Controller) OnEvent(e event.Event) {
	b, ok := e.Data.(config.Board)
	if !ok {
		return
	}
	layout, err := Compute(b)
	if err != nil {
		log.Printf("controls: layout rejected: %v", err)
		c.layout = nil
		c.dispatcher.Dispatch(event.Event{Type: event.LayoutFailed, Data: LayoutFailedData{Board: b, Err: err}})
		return
	}
	c.layout, c.laidOut = layout, b
	c.dispatcher.Dispatch(event.Event{Type: event.LayoutReady, Data: LayoutReadyData{Board: b, Layout: layout}})
}

// Exportable returns the layout of the current board together with the
// canvas it was computed for. ok is false while the current board is
// rejected or has not been laid out yet.
func (c *Controller) Exportable() (l *hexboard.Layout, canvas hexboard.Canvas, ok bool) {
	if c.layout == nil || c.laidOut != c.board {
		return nil, hexboard.Canvas{}, false
	}
	return c.layout, c.laidOut.DrawCanvas(), true
}

// Compute validates a configuration and runs the layout pipeline on it.
func Compute(b config.Board) (*hexboard.Layout, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return hexboard.Compute(b.Params, b.Origin(), b.Players)
}
