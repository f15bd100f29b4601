// pkg/render/style.go
package render

import (
	"fmt"
	"image/color"
)

// Style holds every visual setting the renderers share. Geometry never
// depends on it.
type Style struct {
	CanvasBorderColor color.RGBA
	CanvasFill        color.RGBA // zero alpha means no fill
	CanvasBorderWidth float64

	OuterBorderStroke color.RGBA
	OuterBorderFill   color.RGBA
	OuterBorderWidth  float64

	InnerBorderStroke color.RGBA
	InnerBorderWidth  float64 // zero hides the playing-field outline

	CellStroke      color.RGBA
	CellFill        color.RGBA
	CellStrokeWidth float64

	PlayerColors []color.RGBA
	PieceStroke  color.RGBA

	TextColor      color.RGBA
	MarkerFont     string
	MarkerFontSize float64
	IndexFont      string
	IndexFontSize  float64

	ShowCellIndices bool
	ShowMarkers     bool
}

// DefaultStyle is the classic green board with cyan pieces.
func DefaultStyle() Style {
	green := color.RGBA{0x00, 0xc2, 0x99, 0xff}
	return Style{
		CanvasBorderColor: color.RGBA{0xff, 0xac, 0x39, 0xff},
		CanvasBorderWidth: 3,

		OuterBorderStroke: green,
		OuterBorderFill:   green,
		OuterBorderWidth:  5,

		InnerBorderStroke: color.RGBA{0x00, 0x8f, 0x71, 0xff},
		InnerBorderWidth:  1,

		CellStroke:      color.RGBA{0, 0, 0, 0xff},
		CellFill:        green,
		CellStrokeWidth: 5,

		PlayerColors: []color.RGBA{
			{0x00, 0xff, 0xee, 0xff},
			{0xff, 0x8c, 0x42, 0xff},
			{0x9b, 0x5d, 0xe5, 0xff},
		},
		PieceStroke: color.RGBA{0, 0, 0, 0xff},

		TextColor:      color.RGBA{0x14, 0x14, 0x1e, 0xff},
		MarkerFont:     "sans-serif",
		MarkerFontSize: 12,
		IndexFont:      "sans-serif",
		IndexFontSize:  12,

		ShowCellIndices: true,
		ShowMarkers:     true,
	}
}

// PlayerColor returns the fill for a player id (1-based), cycling when there
// are more players than colors.
func (s Style) PlayerColor(playerID int) color.RGBA {
	if len(s.PlayerColors) == 0 {
		return s.CellFill
	}
	i := playerID - 1
	if i < 0 {
		i = 0
	}
	return s.PlayerColors[i%len(s.PlayerColors)]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// cssColor formats a color for an SVG attribute.
func cssColor(c color.RGBA) string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
