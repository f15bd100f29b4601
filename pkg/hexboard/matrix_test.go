package hexboard

import (
	"errors"
	"testing"
)

func TestBuildTranslationMatrix_Shape(t *testing.T) {
	for cps := 1; cps <= 9; cps++ {
		rowCount := 2*cps - 1
		m := BuildTranslationMatrix(cps, rowCount)
		if len(m) != rowCount {
			t.Fatalf("cps=%d: expected %d rows, got %d", cps, rowCount, len(m))
		}
		for i := range m {
			j := rowCount - 1 - i
			if len(m[i]) != len(m[j]) {
				t.Fatalf("cps=%d: rows %d and %d differ in length (%d vs %d)", cps, i, j, len(m[i]), len(m[j]))
			}
		}
		if got := len(m[cps-1]); got != rowCount {
			t.Fatalf("cps=%d: expected middle row of %d, got %d", cps, rowCount, got)
		}
		if len(m[0]) != cps || len(m[rowCount-1]) != cps {
			t.Fatalf("cps=%d: expected edge rows of %d, got %d and %d", cps, cps, len(m[0]), len(m[rowCount-1]))
		}
		total := 0
		for _, row := range m {
			total += len(row)
		}
		if want := 3*cps*(cps-1) + 1; total != want {
			t.Fatalf("cps=%d: expected %d cells, got %d", cps, want, total)
		}
	}
}

func TestBuildTranslationMatrix_Offsets(t *testing.T) {
	m := BuildTranslationMatrix(5, 9)
	wantLens := []int{5, 6, 7, 8, 9, 8, 7, 6, 5}
	for i, row := range m {
		if len(row) != wantLens[i] {
			t.Fatalf("row %d: expected %d entries, got %d", i, wantLens[i], len(row))
		}
		y := float64(i - 4)
		for j, p := range row {
			if p.Y != y {
				t.Fatalf("row %d col %d: expected y=%.0f, got %.0f", i, j, y, p.Y)
			}
			wantX := float64(-(len(row) - 1) + 2*j)
			if p.X != wantX {
				t.Fatalf("row %d col %d: expected x=%.0f, got %.0f", i, j, wantX, p.X)
			}
		}
	}
}

func TestCellCenters_IndicesContiguous(t *testing.T) {
	m := BuildTranslationMatrix(5, 9)
	cells, err := CellCenters(m, Point{X: 250, Y: 250}, 20, 34.64, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next := 0
	for _, row := range cells {
		for _, c := range row {
			if c.Index != next {
				t.Fatalf("expected index %d, got %d", next, c.Index)
			}
			if c.Radius != 18 {
				t.Fatalf("expected radius 18, got %f", c.Radius)
			}
			next++
		}
	}
	if next != 61 {
		t.Fatalf("expected 61 cells, got %d", next)
	}
	centre := cells[4][4]
	if centre.Center != (Point{X: 250, Y: 250}) {
		t.Fatalf("expected middle cell at origin, got %v", centre.Center)
	}
}

func TestCellCenters_DegenerateRadius(t *testing.T) {
	m := BuildTranslationMatrix(5, 9)
	for _, gap := range []float64{20, 25} {
		if _, err := CellCenters(m, Point{}, 20, 34.64, gap); !errors.Is(err, ErrDegenerateCellSize) {
			t.Fatalf("gap=%.0f: expected ErrDegenerateCellSize, got %v", gap, err)
		}
	}
}

func TestCell_Contains(t *testing.T) {
	c := Cell{Center: Point{X: 10, Y: 10}, Radius: 5}
	if !c.Contains(Point{X: 13, Y: 14}) {
		t.Fatalf("expected (13,14) inside cell")
	}
	if c.Contains(Point{X: 16, Y: 10}) {
		t.Fatalf("expected (16,10) outside cell")
	}
}
