// pkg/render/window/board_renderer.go
package window

import (
	"image/color"
	"strconv"

	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type BoardRenderer struct {
	layout       *hexboard.Layout
	style        render.Style
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	markerFace   font.Face
	indexFace    font.Face
	boardImage   *ebiten.Image // предрендеренная доска, перерисовывается при смене раскладки
}

// NewFontFace builds a face from the embedded Go font.
func NewFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func NewBoardRenderer(layout *hexboard.Layout, style render.Style, screenWidth, screenHeight int) (*BoardRenderer, error) {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	markerFace, err := NewFontFace(style.MarkerFontSize)
	if err != nil {
		return nil, err
	}
	indexFace, err := NewFontFace(style.IndexFontSize)
	if err != nil {
		return nil, err
	}

	r := &BoardRenderer{
		style:        style,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		markerFace:   markerFace,
		indexFace:    indexFace,
		boardImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.SetLayout(layout)
	return r, nil
}

// SetLayout swaps in a freshly computed layout and redraws the static board.
func (r *BoardRenderer) SetLayout(layout *hexboard.Layout) {
	r.layout = layout
	r.RenderBoardImage()
}

func (r *BoardRenderer) Layout() *hexboard.Layout {
	return r.layout
}

// RenderBoardImage draws everything that only changes with the layout.
func (r *BoardRenderer) RenderBoardImage() {
	r.boardImage.Clear()
	if r.layout == nil {
		return
	}
	l := r.layout

	if r.style.CanvasFill.A > 0 {
		r.boardImage.Fill(r.style.CanvasFill)
	}
	vector.StrokeRect(r.boardImage, 0, 0, float32(r.screenWidth), float32(r.screenHeight),
		float32(r.style.CanvasBorderWidth), r.style.CanvasBorderColor, false)

	r.drawPolygon(r.boardImage, l.Outer, r.style.OuterBorderFill, r.style.OuterBorderStroke, r.style.OuterBorderWidth)
	if r.style.InnerBorderWidth > 0 {
		r.drawPolygon(r.boardImage, l.Inner, color.RGBA{}, r.style.InnerBorderStroke, r.style.InnerBorderWidth)
	}

	for _, row := range l.Cells {
		for _, c := range row {
			r.drawDisc(r.boardImage, c.Center, c.Radius, r.style.CellFill, r.style.CellStroke)
		}
	}
	for _, p := range l.Pieces {
		r.drawDisc(r.boardImage, p.Center, p.Radius, r.style.PlayerColor(p.PlayerID), r.style.PieceStroke)
	}

	if r.style.ShowCellIndices {
		for _, row := range l.Cells {
			for _, c := range row {
				r.drawLabel(r.boardImage, r.indexFace, strconv.Itoa(c.Index), c.Center, r.style.TextColor)
			}
		}
	}
	if r.style.ShowMarkers {
		for _, lbl := range l.RowLabels {
			r.drawLabel(r.boardImage, r.markerFace, lbl.Text, lbl.Position, r.style.TextColor)
		}
		for _, lbl := range l.ColLabels {
			r.drawLabel(r.boardImage, r.markerFace, lbl.Text, lbl.Position, r.style.TextColor)
		}
	}
}

// Draw blits the pre-rendered board and outlines the hovered cell, if any.
func (r *BoardRenderer) Draw(screen *ebiten.Image, hovered *hexboard.Cell) {
	screen.DrawImage(r.boardImage, nil)
	if hovered == nil {
		return
	}
	highlight := render.DarkenColor(r.style.CellFill)
	vector.StrokeCircle(screen, float32(hovered.Center.X), float32(hovered.Center.Y), float32(hovered.Radius),
		float32(r.style.CellStrokeWidth), highlight, true)
	r.drawLabel(screen, r.indexFace, strconv.Itoa(hovered.Index), hovered.Center, r.style.TextColor)
}

func (r *BoardRenderer) drawDisc(target *ebiten.Image, center hexboard.Point, radius float64, fill, stroke color.RGBA) {
	cx, cy, rad := float32(center.X), float32(center.Y), float32(radius)
	vector.DrawFilledCircle(target, cx, cy, rad, fill, true)
	if r.style.CellStrokeWidth > 0 {
		vector.StrokeCircle(target, cx, cy, rad, float32(r.style.CellStrokeWidth), stroke, true)
	}
}

func (r *BoardRenderer) drawPolygon(target *ebiten.Image, pts []hexboard.Point, fill, stroke color.RGBA, width float64) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	if fill.A > 0 {
		r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
		paintVertices(r.fillVs, fill)
		target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	paintVertices(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// drawLabel centres text on pos.
func (r *BoardRenderer) drawLabel(target *ebiten.Image, face font.Face, label string, pos hexboard.Point, clr color.RGBA) {
	bounds := text.BoundString(face, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, face, int(pos.X)-textWidth/2, int(pos.Y)+textHeight/2, clr)
}
