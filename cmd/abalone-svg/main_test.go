package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-abalone-board/internal/config"
	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/render"
)

func TestEmit_SVG(t *testing.T) {
	var buf bytes.Buffer
	if err := emit(&buf, config.DefaultBoard(), "svg", render.DefaultStyle()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(doc), "<?xml") || !strings.Contains(doc, "<svg") {
		t.Fatalf("expected an svg document, got %.120s", doc)
	}
	if n := strings.Count(doc, "<circle"); n != 61+28 {
		t.Fatalf("expected 89 circles, got %d", n)
	}
}

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	board := config.DefaultBoard()
	board.Players = hexboard.ThreePlayers
	if err := emit(&buf, board, "json", render.DefaultStyle()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var l hexboard.Layout
	if err := json.Unmarshal(buf.Bytes(), &l); err != nil {
		t.Fatalf("expected valid JSON: %v", err)
	}
	if l.CellCount() != 61 || len(l.Pieces) != 33 || l.Players != hexboard.ThreePlayers {
		t.Fatalf("unexpected layout: %d cells, %d pieces, %d players", l.CellCount(), len(l.Pieces), l.Players)
	}
}

func TestEmit_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := emit(&buf, config.DefaultBoard(), "png", render.DefaultStyle()); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
	board := config.DefaultBoard()
	board.Params.CellGap = 100
	if err := emit(&buf, board, "svg", render.DefaultStyle()); !errors.Is(err, hexboard.ErrDegenerateCellSize) {
		t.Fatalf("expected ErrDegenerateCellSize, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for failed layouts, got %d bytes", buf.Len())
	}
}

func TestWriteOutput_NoFileForRejectedBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	board := config.DefaultBoard()
	board.Params.CellGap = 100
	if err := writeOutput(path, board, "svg", render.DefaultStyle()); !errors.Is(err, hexboard.ErrDegenerateCellSize) {
		t.Fatalf("expected ErrDegenerateCellSize, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no output file, got %v", err)
	}

	if err := writeOutput(path, config.DefaultBoard(), "json", render.DefaultStyle()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("expected a JSON document in %s", path)
	}
}
