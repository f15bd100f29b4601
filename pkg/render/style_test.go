package render

import (
	"image/color"
	"testing"
)

func TestPlayerColor_Cycles(t *testing.T) {
	s := DefaultStyle()
	if s.PlayerColor(1) != s.PlayerColors[0] {
		t.Fatalf("expected player 1 to use the first color")
	}
	if s.PlayerColor(4) != s.PlayerColors[0] {
		t.Fatalf("expected player 4 to wrap to the first color")
	}
	s.PlayerColors = nil
	if s.PlayerColor(2) != s.CellFill {
		t.Fatalf("expected cell fill when no player colors are set")
	}
}

func TestCSSColor(t *testing.T) {
	if got := cssColor(color.RGBA{0x00, 0xc2, 0x99, 0xff}); got != "#00c299" {
		t.Fatalf("expected #00c299, got %s", got)
	}
	if got := cssColor(color.RGBA{}); got != "none" {
		t.Fatalf("expected none for transparent, got %s", got)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("expected halved channels, got %v", got)
	}
}
