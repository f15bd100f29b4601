// cmd/abalone/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-abalone-board/internal/config"
	"go-abalone-board/internal/state"
	"go-abalone-board/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	exportDir := flag.String("out", ".", "directory for exported SVG files")
	flag.Parse()

	board, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	if _, err := state.NewBoardState(sm, board, render.DefaultStyle(), *exportDir); err != nil {
		log.Fatal(err)
	}

	canvas := board.DrawCanvas()
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          int(canvas.Width),
		height:         int(canvas.Height) + 2*config.StatusHeight,
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Abalone Board")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
