package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
	"github.com/latticeforge/mazelib/pkg/space"
)

func TestBlockSVGExporterProducesValidSVGEnvelope(t *testing.T) {
	sp, err := space.NewBoxSpace(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc, err := coordinator.NewBlockCoordinator(sp, []int{1, 1}, [][2]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc.MakePassageBetween(point.New(0, 0), point.New(1, 0))

	var buf bytes.Buffer
	if err := (BlockSVGExporter{}).ExportImage(bc, &buf); err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected an <svg> root element, got: %s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a closing </svg>, got: %s", out)
	}
	if !strings.Contains(out, "rect") {
		t.Fatalf("expected at least one rect element, got: %s", out)
	}
}

func TestBlockSVGExporterRejectsNonBlockCoordinator(t *testing.T) {
	sp, err := space.NewBoxSpace(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ic := coordinator.NewInlineCoordinator(sp)

	var buf bytes.Buffer
	if err := (BlockSVGExporter{}).ExportImage(ic, &buf); err == nil {
		t.Fatalf("expected an error exporting an inline coordinator as SVG")
	}
}

func TestDefaultSVGOptionsUsedWhenCellSizeUnset(t *testing.T) {
	sp, err := space.NewBoxSpace(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc, err := coordinator.NewBlockCoordinator(sp, []int{1, 1}, [][2]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	exp := BlockSVGExporter{} // zero-value Options: CellSize == 0
	if err := exp.ExportImage(bc, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultSVGOptions().CellSize * 2 // 2x2 cells
	if !strings.Contains(buf.String(), itoa(want)) {
		t.Fatalf("expected default cell size to produce a canvas width of %d", want)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
