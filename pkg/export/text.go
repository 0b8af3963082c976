package export

import (
	"fmt"
	"strings"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
)

// BlockTextGlyphs maps each CellType to the rune BlockTextExporter writes
// for it. Exposed so callers/tests can reference the mapping by name
// instead of duplicating magic runes.
var BlockTextGlyphs = map[cell.CellType]rune{
	cell.Unvisited: '?',
	cell.Wall:      '#',
	cell.Passage:   ' ',
	cell.Boundary:  '%',
}

// BlockTextExporter renders a 2D BlockCoordinator's full cell space
// (including spacer and padding cells) as a row-major grid of glyphs, one
// character per cell, rows separated by newlines. It is the module's
// reference text renderer for block-cell mazes.
type BlockTextExporter struct{}

// ExportText implements TextExporter.
func (BlockTextExporter) ExportText(coord coordinator.Coordinator, w ByteSink) error {
	bc, ok := coord.(*coordinator.BlockCoordinator)
	if !ok {
		return fmt.Errorf("export: BlockTextExporter requires a block coordinator")
	}
	full := bc.GetFullDimensions()
	if len(full) != 2 {
		return fmt.Errorf("export: BlockTextExporter supports 2D block coordinators only, got %d axes", len(full))
	}
	width, height := full[0], full[1]

	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := bc.GetByLocation(point.NewCellLocation(x, y))
			r, ok := BlockTextGlyphs[v.CellType]
			if !ok {
				r = '?'
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}

var _ TextExporter = BlockTextExporter{}
