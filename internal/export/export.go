// internal/export/export.go
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"go-abalone-board/internal/event"
	"go-abalone-board/pkg/hexboard"
	"go-abalone-board/pkg/render"
)

// Result is the payload of event.BoardExported.
type Result struct {
	Target string
	Bytes  int
}

// Exporter writes the SVG of a layout to disk or to the clipboard.
type Exporter struct {
	dir        string
	style      render.Style
	dispatcher *event.Dispatcher
	copyText   func(string) error
}

func NewExporter(dir string, style render.Style, d *event.Dispatcher) *Exporter {
	return &Exporter{dir: dir, style: style, dispatcher: d, copyText: clipboard.WriteAll}
}

// FileName is the default file name for a layout.
func FileName(l *hexboard.Layout) string {
	return fmt.Sprintf("abalone-%dside-%dp.svg", l.Params.CirclesPerSide, int(l.Players))
}

// SaveSVG writes the layout into the export directory and returns the path.
func (e *Exporter) SaveSVG(l *hexboard.Layout, canvas hexboard.Canvas) (string, error) {
	data, err := render.SVGBytes(l, canvas, e.style)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(e.dir, FileName(l))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write svg: %w", err)
	}
	e.announce(path, len(data))
	return path, nil
}

// CopySVG puts the SVG document on the system clipboard.
func (e *Exporter) CopySVG(l *hexboard.Layout, canvas hexboard.Canvas) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	data, err := render.SVGBytes(l, canvas, e.style)
	if err != nil {
		return err
	}
	if err := e.copyText(string(data)); err != nil {
		return fmt.Errorf("failed to copy svg: %w", err)
	}
	e.announce("clipboard", len(data))
	return nil
}

func (e *Exporter) announce(target string, n int) {
	if e.dispatcher == nil {
		return
	}
	e.dispatcher.Dispatch(event.Event{Type: event.BoardExported, Data: Result{Target: target, Bytes: n}})
}
