// pkg/render/term.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-abalone-board/pkg/hexboard"
)

const (
	TermEmptyCell = 'o'
	termMargin    = 3
)

// TermSize is the number of terminal columns and rows a layout needs,
// markers included.
func TermSize(l *hexboard.Layout) (cols, rows int) {
	if l == nil || len(l.Matrix) == 0 {
		return 0, 0
	}
	span := 2 * (l.Geometry.RowCount - 1)
	return span + 1 + 2*termMargin, len(l.Matrix) + 2
}

// DrawTerminal draws the board on a character grid. Lattice offsets map one
// to one onto terminal cells, which keeps the hex interleave intact without
// any pixel scaling.
func DrawTerminal(screen tcell.Screen, l *hexboard.Layout, style Style) {
	if l == nil || len(l.Matrix) == 0 {
		return
	}
	width, height := screen.Size()
	ox := width / 2
	oy := height / 2

	board := tcell.StyleDefault.Foreground(termColor(style.CellFill))
	marker := tcell.StyleDefault.Foreground(tcell.ColorGray)

	at := func(rel hexboard.Point) (int, int) {
		return ox + int(math.Round(rel.X)), oy + int(math.Round(rel.Y))
	}

	for _, row := range l.Matrix {
		for _, rel := range row {
			x, y := at(rel)
			setCell(screen, x, y, TermEmptyCell, board)
		}
	}

	for _, p := range l.Placement {
		if p.Row >= len(l.Matrix) || p.Col >= len(l.Matrix[p.Row]) {
			continue
		}
		x, y := at(l.Matrix[p.Row][p.Col])
		st := tcell.StyleDefault.Foreground(termColor(style.PlayerColor(p.PlayerID))).Bold(true)
		setCell(screen, x, y, rune('0'+p.PlayerID%10), st)
	}

	if !style.ShowMarkers {
		return
	}
	for i, row := range l.Matrix {
		if i >= len(l.RowLabels) {
			break
		}
		x, y := at(row[0])
		drawString(screen, x-2, y, l.RowLabels[i].Text, marker)
	}
	top := len(l.Matrix[0])
	for i, lbl := range l.ColLabels {
		if i < top {
			x, y := at(l.Matrix[0][i])
			drawString(screen, x, y-1, lbl.Text, marker)
			continue
		}
		row := i - top
		if row >= len(l.Matrix) {
			break
		}
		x, y := at(l.Matrix[row][len(l.Matrix[row])-1])
		drawString(screen, x+2, y, lbl.Text, marker)
	}
}

func setCell(screen tcell.Screen, x, y int, r rune, st tcell.Style) {
	w, h := screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	screen.SetContent(x, y, r, nil, st)
}

func drawString(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		setCell(screen, x+i, y, r, st)
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// StatusLine summarises the parameters behind a layout.
func StatusLine(l *hexboard.Layout) string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("side %d  players %d  gap %.1f  cells %d  pieces %d",
		l.Params.CirclesPerSide, int(l.Players), l.Params.CellGap, l.CellCount(), len(l.Pieces))
}
