package render

import (
	"errors"
	"strings"
	"testing"

	"go-abalone-board/pkg/hexboard"
)

func defaultLayout(t *testing.T, players hexboard.PlayerCount) *hexboard.Layout {
	t.Helper()
	canvas := hexboard.Canvas{Width: 500, Height: 500}
	l, err := hexboard.Compute(hexboard.DefaultParams(), canvas.Center(), players)
	if err != nil {
		t.Fatalf("unexpected layout error: %v", err)
	}
	return l
}

func TestWriteSVG_CountsShapes(t *testing.T) {
	l := defaultLayout(t, hexboard.TwoPlayers)
	out, err := SVGBytes(l, hexboard.Canvas{Width: 500, Height: 500}, DefaultStyle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.HasPrefix(strings.TrimSpace(doc), "<?xml") {
		t.Fatalf("expected an XML prolog, got %.40q", doc)
	}
	if n := strings.Count(doc, "<circle"); n != 61+28 {
		t.Fatalf("expected %d circles, got %d", 61+28, n)
	}
	if n := strings.Count(doc, `data-player="2"`); n != 14 {
		t.Fatalf("expected 14 pieces for player 2, got %d", n)
	}
	if n := strings.Count(doc, "<text"); n != 61+9+10 {
		t.Fatalf("expected %d text elements, got %d", 61+9+10, n)
	}
	if n := strings.Count(doc, "<polygon"); n != 2 {
		t.Fatalf("expected outer and inner polygons, got %d", n)
	}
	if !strings.Contains(doc, `class="innerborder"`) {
		t.Fatalf("expected the playing-field outline")
	}
	if !strings.Contains(doc, "#00c299") {
		t.Fatalf("expected the board color in the output")
	}
}

func TestWriteSVG_OptionalGroups(t *testing.T) {
	style := DefaultStyle()
	style.ShowCellIndices = false
	style.ShowMarkers = false
	style.InnerBorderWidth = 0
	out, err := SVGBytes(defaultLayout(t, hexboard.ThreePlayers), hexboard.Canvas{Width: 500, Height: 500}, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Contains(doc, `id="indices"`) || strings.Contains(doc, `id="markers"`) {
		t.Fatalf("expected index and marker groups to be omitted")
	}
	if strings.Contains(doc, `class="innerborder"`) {
		t.Fatalf("expected no inner outline with zero width")
	}
	if n := strings.Count(doc, `data-player="3"`); n != 11 {
		t.Fatalf("expected 11 pieces for player 3, got %d", n)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteSVG_PropagatesWriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, defaultLayout(t, hexboard.TwoPlayers), hexboard.Canvas{Width: 500, Height: 500}, DefaultStyle())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestWriteSVG_NilLayout(t *testing.T) {
	var sb strings.Builder
	if err := WriteSVG(&sb, nil, hexboard.Canvas{}, DefaultStyle()); err == nil {
		t.Fatalf("expected an error for a nil layout")
	}
}
