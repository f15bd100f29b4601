// cmd/abalone-term/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-abalone-board/internal/config"
	"go-abalone-board/internal/controls"
	"go-abalone-board/internal/event"
	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// runeActions maps single keys to parameter actions.
var runeActions = map[rune]controls.Action{
	'+': controls.MoreCircles,
	'=': controls.MoreCircles,
	'-': controls.FewerCircles,
	']': controls.WiderGap,
	'[': controls.NarrowerGap,
	'>': controls.WiderBeam,
	'<': controls.NarrowerBeam,
	'k': controls.LongerRadius,
	'j': controls.ShorterRadius,
	'p': controls.TogglePlayers,
	'r': controls.ResetBoard,
}

const termHelp = "+/- side  [/] gap  </> beam  j/k radius  p players  r reset  q quit"

// viewer redraws the screen whenever the controller publishes a result.
type viewer struct {
	screen tcell.Screen
	style  render.Style
	layout *hexboard.Layout
	err    error
}

func (v *viewer) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case controls.LayoutReadyData:
		v.layout, v.err = d.Layout, nil
	case controls.LayoutFailedData:
		v.err = d.Err
	}
	v.draw()
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	plain := tcell.StyleDefault
	if v.err != nil {
		drawLine(v.screen, 0, 0, "error: "+v.err.Error(), plain.Foreground(tcell.ColorRed))
	} else if cols, rows := render.TermSize(v.layout); cols > w || rows+2 > h {
		drawLine(v.screen, 0, 0, fmt.Sprintf("terminal too small: need %dx%d", cols, rows+2),
			plain.Foreground(tcell.ColorYellow))
	} else if v.layout != nil {
		render.DrawTerminal(v.screen, v.layout, v.style)
		drawLine(v.screen, 0, 0, render.StatusLine(v.layout), plain)
	}
	drawLine(v.screen, 0, h-1, termHelp, plain.Dim(true))
	v.screen.Show()
}

func drawLine(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}

// actionFor translates a key event; quit reports whether the viewer should exit.
func actionFor(ev *tcell.EventKey) (a controls.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return controls.NoAction, true
	case tcell.KeyUp:
		return controls.LongerRadius, false
	case tcell.KeyDown:
		return controls.ShorterRadius, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return controls.NoAction, true
		}
		return runeActions[ev.Rune()], false
	}
	return controls.NoAction, false
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	board, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	dispatcher := event.NewDispatcher()
	v := &viewer{screen: screen, style: render.DefaultStyle()}
	dispatcher.Subscribe(event.LayoutReady, v)
	dispatcher.Subscribe(event.LayoutFailed, v)
	ctrl := controls.NewController(board, dispatcher)
	ctrl.Relayout()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case *tcell.EventKey:
			a, quit := actionFor(ev)
			if quit {
				return
			}
			ctrl.Do(a)
		}
	}
}
