// Package export defines the external contract surface spec.md §6
// names (exporters and solvers consuming a read-only coordinator view)
// and ships reference implementations for text and SVG rendering of
// block-cell mazes. File I/O and persistent formats beyond these two
// reference renderers are external collaborators' concern; a
// SchematicExporter is defined here with no implementation, matching
// original_source/src/interface/export.rs, which the distilled spec
// also left interface-only. The Solver contract lives in solver.go.
package export

import (
	"io"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
)

// ByteSink is any sequentially-writable stream an exporter writes to.
// Exporters never assume anything about the sink beyond io.Writer.
type ByteSink = io.Writer

// TextExporter renders a coordinator to a human-readable text sink.
type TextExporter interface {
	ExportText(coord coordinator.Coordinator, w ByteSink) error
}

// ImageExporter renders a coordinator to a raster or vector image sink.
type ImageExporter interface {
	ExportImage(coord coordinator.Coordinator, w ByteSink) error
}

// SchematicExporter serializes a coordinator's raw buffer contents (e.g.
// a Minecraft-schematic-style voxel dump) by CellID. No implementation
// ships in this module: buffer storage strategy and schematic formats are
// both out of scope per spec.md §1; this interface exists only so
// external collaborators have a fixed shape to implement against.
type SchematicExporter interface {
	ExportSchematic(coord coordinator.Coordinator, w ByteSink) error
}

// CellReader is the minimal read-only surface an exporter that reads cell
// values by point needs, narrower than the full Coordinator contract.
type CellReader interface {
	Get(p point.Point) cell.Value
}
