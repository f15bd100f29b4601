package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"go-abalone-board/pkg/hexboard"
)

func writeBoardFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write board file: %v", err)
	}
	return path
}

func TestLoadBoard_EmptyPathGivesDefaults(t *testing.T) {
	b, err := LoadBoard("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != DefaultBoard() {
		t.Fatalf("expected defaults, got %+v", b)
	}
	if b.Params.CirclesPerSide != 5 || b.Params.BorderBeam != 10 || b.Params.RadialLength != 210 || b.Params.CellGap != 0 {
		t.Fatalf("unexpected default params %+v", b.Params)
	}
}

func TestLoadBoard_PartialFileKeepsDefaults(t *testing.T) {
	path := writeBoardFile(t, `{"circles_per_side": 6, "cell_gap": 0, "players": 3, "canvas_width": 800, "canvas_height": 600}`)
	b, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Params.CirclesPerSide != 6 || b.Players != hexboard.ThreePlayers {
		t.Fatalf("expected file values, got %+v", b)
	}
	if b.Params.RadialLength != hexboard.DefaultRadialLength || b.Params.EdgeCount != 6 {
		t.Fatalf("expected defaults for unset fields, got %+v", b.Params)
	}
	if got := b.Origin(); got != (hexboard.Point{X: 300, Y: 300}) {
		t.Fatalf("expected squared canvas centre (300,300), got %v", got)
	}
}

func TestLoadBoard_Errors(t *testing.T) {
	if _, err := LoadBoard(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a wrapped not-exist error, got %v", err)
	}
	if _, err := LoadBoard(writeBoardFile(t, `{"circles_per_side": "five"}`)); err == nil {
		t.Fatalf("expected a decode error")
	}
	if _, err := LoadBoard(writeBoardFile(t, `{"border_beam": 250}`)); !errors.Is(err, hexboard.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
	for _, body := range []string{`{"edge_count": 3}`, `{"edge_count": 4}`} {
		if _, err := LoadBoard(writeBoardFile(t, body)); !errors.Is(err, hexboard.ErrInvalidParameters) {
			t.Fatalf("%s: expected ErrInvalidParameters, got %v", body, err)
		}
	}
	if _, err := LoadBoard(writeBoardFile(t, `{"players": 4}`)); !errors.Is(err, hexboard.ErrUnsupportedPlayerCount) {
		t.Fatalf("expected ErrUnsupportedPlayerCount, got %v", err)
	}
}

func TestBoard_UnlockedCanvasKeepsAspect(t *testing.T) {
	b := DefaultBoard()
	b.Canvas = hexboard.Canvas{Width: 800, Height: 600}
	b.LockSquare = false
	if got := b.Origin(); got != (hexboard.Point{X: 400, Y: 300}) {
		t.Fatalf("expected centre (400,300), got %v", got)
	}
}

func TestFlags_OverrideOnlyExplicitValues(t *testing.T) {
	path := writeBoardFile(t, `{"circles_per_side": 7, "cell_gap": 2}`)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-board", path, "-players", "3"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := f.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Params.CirclesPerSide != 7 || b.Params.CellGap != 2 {
		t.Fatalf("expected file values to survive, got %+v", b.Params)
	}
	if b.Players != hexboard.ThreePlayers {
		t.Fatalf("expected players flag to apply, got %d", b.Players)
	}
}

func TestFlags_RejectInvalidOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-side", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := f.Load(); !errors.Is(err, hexboard.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}
