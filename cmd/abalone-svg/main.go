// cmd/abalone-svg/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-abalone-board/internal/config"
	"go-abalone-board/internal/controls"
	"go-abalone-board/pkg/render"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	format := flag.String("format", "svg", "output format: svg or json")
	output := flag.String("o", "", "output file (default stdout)")
	noIndices := flag.Bool("no-indices", false, "omit cell index numbers")
	noMarkers := flag.Bool("no-markers", false, "omit row and column markers")
	flag.Parse()

	board, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}

	style := render.DefaultStyle()
	style.ShowCellIndices = !*noIndices
	style.ShowMarkers = !*noMarkers

	if err := writeOutput(*output, board, *format, style); err != nil {
		log.Fatal(err)
	}
}

// writeOutput renders into memory first so that a rejected board never
// leaves a partial file behind. An empty path means stdout.
func writeOutput(path string, board config.Board, format string, style render.Style) error {
	var buf bytes.Buffer
	if err := emit(&buf, board, format, style); err != nil {
		return err
	}
	if path == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// emit computes the layout and writes it in the requested format.
func emit(w io.Writer, board config.Board, format string, style render.Style) error {
	layout, err := controls.Compute(board)
	if err != nil {
		return err
	}
	switch format {
	case "svg":
		return render.WriteSVG(w, layout, board.DrawCanvas(), style)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	default:
		return fmt.Errorf("unsupported format %q (supported: svg, json)", format)
	}
}
