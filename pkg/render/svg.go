// pkg/render/svg.go
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"go-abalone-board/pkg/hexboard"
)

// errWriter remembers the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// WriteSVG draws the layout as a standalone SVG document: canvas border,
// outer and inner polygons, cells, starting pieces, cell indices and board markers.
func WriteSVG(w io.Writer, l *hexboard.Layout, canvas hexboard.Canvas, style Style) error {
	if l == nil {
		return errors.New("render: nil layout")
	}
	ew := &errWriter{w: w}
	doc := svg.New(ew)

	doc.Start(canvas.Width, canvas.Height)
	doc.Rect(0, 0, canvas.Width, canvas.Height, `class="canvas"`,
		fmt.Sprintf("stroke:%s;fill:%s;stroke-width:%g",
			cssColor(style.CanvasBorderColor), cssColor(style.CanvasFill), style.CanvasBorderWidth))

	xs, ys := splitPoints(l.Outer)
	doc.Polygon(xs, ys, `class="outerborder"`,
		fmt.Sprintf("stroke:%s;fill:%s;stroke-width:%g",
			cssColor(style.OuterBorderStroke), cssColor(style.OuterBorderFill), style.OuterBorderWidth))

	if style.InnerBorderWidth > 0 {
		xs, ys := splitPoints(l.Inner)
		doc.Polygon(xs, ys, `class="innerborder"`,
			fmt.Sprintf("stroke:%s;fill:none;stroke-width:%g",
				cssColor(style.InnerBorderStroke), style.InnerBorderWidth))
	}

	cellStyle := fmt.Sprintf("stroke:%s;fill:%s;stroke-width:%g",
		cssColor(style.CellStroke), cssColor(style.CellFill), style.CellStrokeWidth)
	doc.Gid("cells")
	for _, row := range l.Cells {
		for _, c := range row {
			doc.Circle(c.Center.X, c.Center.Y, c.Radius, `class="cell"`, cellStyle)
		}
	}
	doc.Gend()

	doc.Gid("pieces")
	for _, p := range l.Pieces {
		doc.Circle(p.Center.X, p.Center.Y, p.Radius,
			`class="piece"`, `data-player="`+strconv.Itoa(p.PlayerID)+`"`,
			fmt.Sprintf("stroke:%s;fill:%s;stroke-width:%g",
				cssColor(style.PieceStroke), cssColor(style.PlayerColor(p.PlayerID)), style.CellStrokeWidth))
	}
	doc.Gend()

	if style.ShowCellIndices {
		indexStyle := textStyle(style.IndexFont, style.IndexFontSize, style.TextColor)
		doc.Gid("indices")
		for _, row := range l.Cells {
			for _, c := range row {
				doc.Text(c.Center.X, c.Center.Y, strconv.Itoa(c.Index), indexStyle)
			}
		}
		doc.Gend()
	}

	if style.ShowMarkers {
		markerStyle := textStyle(style.MarkerFont, style.MarkerFontSize, style.TextColor)
		doc.Gid("markers")
		for _, lbl := range l.RowLabels {
			doc.Text(lbl.Position.X, lbl.Position.Y, lbl.Text, markerStyle)
		}
		for _, lbl := range l.ColLabels {
			doc.Text(lbl.Position.X, lbl.Position.Y, lbl.Text, markerStyle)
		}
		doc.Gend()
	}

	doc.End()
	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}
	return nil
}

// SVGBytes renders the layout into memory.
func SVGBytes(l *hexboard.Layout, canvas hexboard.Canvas, style Style) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, canvas, style); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func splitPoints(pts []hexboard.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func textStyle(family string, size float64, c color.RGBA) string {
	return fmt.Sprintf("font-family:%s;font-size:%gpx;fill:%s;text-anchor:middle;dominant-baseline:central",
		family, size, cssColor(c))
}
