// internal/state/board_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"go-abalone-board/internal/config"
	"go-abalone-board/internal/controls"
	"go-abalone-board/internal/event"
	"go-abalone-board/internal/export"
	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/render"
	"go-abalone-board/pkg/render/window"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Убеждаемся, что BoardState соответствует интерфейсу State
var _ State = (*BoardState)(nil)

// BoardState shows the current layout and turns key presses into
// parameter changes.
type BoardState struct {
	sm         *StateMachine
	ctrl       *controls.Controller
	exporter   *export.Exporter
	renderer   *window.BoardRenderer
	style      render.Style
	statusFace font.Face
	board      config.Board
	hovered    *hexboard.Cell
	message    string
	lastAction time.Time
}

// NewBoardState wires the controller events to the viewer and computes the
// first layout. If the starting configuration is rejected the machine is
// left in the error state.
func NewBoardState(sm *StateMachine, board config.Board, style render.Style, exportDir string) (*BoardState, error) {
	d := event.NewDispatcher()
	statusFace, err := window.NewFontFace(12)
	if err != nil {
		return nil, err
	}
	canvas := board.DrawCanvas()
	renderer, err := window.NewBoardRenderer(nil, style, int(canvas.Width), int(canvas.Height))
	if err != nil {
		return nil, err
	}

	bs := &BoardState{
		sm:         sm,
		exporter:   export.NewExporter(exportDir, style, d),
		renderer:   renderer,
		style:      style,
		statusFace: statusFace,
		board:      board,
	}
	d.Subscribe(event.LayoutReady, event.ListenerFunc(bs.onLayoutReady))
	d.Subscribe(event.LayoutFailed, event.ListenerFunc(bs.onLayoutFailed))
	d.Subscribe(event.BoardExported, event.ListenerFunc(bs.onExported))

	sm.SetState(bs)
	bs.ctrl = controls.NewController(board, d)
	bs.ctrl.Relayout()
	return bs, nil
}

func (b *BoardState) onLayoutReady(e event.Event) {
	data := e.Data.(controls.LayoutReadyData)
	b.board = data.Board
	b.renderer.SetLayout(data.Layout)
	b.hovered = nil
	b.message = render.StatusLine(data.Layout)
	if b.sm.Current() != b {
		b.sm.SetState(b)
	}
}

func (b *BoardState) onLayoutFailed(e event.Event) {
	data := e.Data.(controls.LayoutFailedData)
	b.board = data.Board
	b.sm.SetState(NewErrorState(b.sm, b, data.Err))
}

func (b *BoardState) onExported(e event.Event) {
	res := e.Data.(export.Result)
	b.message = fmt.Sprintf("exported %d bytes to %s", res.Bytes, res.Target)
	log.Println(b.message)
}

func (b *BoardState) Enter() {}

func (b *BoardState) Update(deltaTime float64) {
	b.handleKeys()

	layout := b.renderer.Layout()
	if layout == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	if cell, ok := layout.CellAt(hexboard.Point{X: float64(x), Y: float64(y)}); ok {
		b.hovered = &cell
	} else {
		b.hovered = nil
	}
}

// handleKeys is shared with the error state so a rejected board can be fixed
// from where it failed.
func (b *BoardState) handleKeys() {
	if time.Since(b.lastAction) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	if a := pollAction(); a != controls.NoAction {
		b.lastAction = time.Now()
		b.ctrl.Do(a)
		return
	}

	layout, canvas, exportable := b.ctrl.Exportable()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		b.style.ShowCellIndices = !b.style.ShowCellIndices
		b.rebuildRenderer()
	case exportable && inpututil.IsKeyJustPressed(ebiten.KeyS):
		if _, err := b.exporter.SaveSVG(layout, canvas); err != nil {
			b.message = err.Error()
			log.Printf("export: %v", err)
		}
	case exportable && inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := b.exporter.CopySVG(layout, canvas); err != nil {
			b.message = err.Error()
			log.Printf("export: %v", err)
		}
	}
}

func (b *BoardState) rebuildRenderer() {
	canvas := b.board.DrawCanvas()
	renderer, err := window.NewBoardRenderer(b.renderer.Layout(), b.style, int(canvas.Width), int(canvas.Height))
	if err != nil {
		log.Printf("renderer: %v", err)
		return
	}
	b.renderer = renderer
}

func (b *BoardState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	b.renderer.Draw(screen, b.hovered)
	b.drawStatus(screen, b.message)
}

func (b *BoardState) drawStatus(screen *ebiten.Image, msg string) {
	h := screen.Bounds().Dy()
	text.Draw(screen, msg, b.statusFace, 6, h-config.StatusHeight-8, config.StatusColor)
	text.Draw(screen, helpLine, b.statusFace, 6, h-8, config.StatusColor)
}

func (b *BoardState) Exit() {}
