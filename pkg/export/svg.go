package export

import (
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/latticeforge/mazelib/pkg/cell"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/point"
)

// SVGOptions configures BlockSVGExporter's rendering.
type SVGOptions struct {
	CellSize        int    // Pixels per cell (default: 16)
	PassageColor    string // Fill for PASSAGE cells
	WallColor       string // Fill for WALL cells
	BoundaryColor   string // Fill for BOUNDARY cells
	UnvisitedColor  string // Fill for UNVISITED cells
	BackgroundColor string // Canvas background, drawn before cells
}

// DefaultSVGOptions returns sensible default rendering options, matching
// a conventional wall-dark/passage-light maze palette.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:        16,
		PassageColor:    "#f5f5f0",
		WallColor:       "#202020",
		BoundaryColor:   "#7a1f1f",
		UnvisitedColor:  "#9090a0",
		BackgroundColor: "#ffffff",
	}
}

// BlockSVGExporter renders a 2D BlockCoordinator's full cell space as an
// SVG grid of filled rectangles, one per cell, using
// github.com/ajstarks/svgo.
type BlockSVGExporter struct {
	Options SVGOptions
}

// ExportImage implements ImageExporter.
func (e BlockSVGExporter) ExportImage(coord coordinator.Coordinator, w ByteSink) error {
	bc, ok := coord.(*coordinator.BlockCoordinator)
	if !ok {
		return fmt.Errorf("export: BlockSVGExporter requires a block coordinator")
	}
	full := bc.GetFullDimensions()
	if len(full) != 2 {
		return fmt.Errorf("export: BlockSVGExporter supports 2D block coordinators only, got %d axes", len(full))
	}

	opts := e.Options
	if opts.CellSize <= 0 {
		opts = DefaultSVGOptions()
	}

	width, height := full[0], full[1]
	pxW, pxH := width*opts.CellSize, height*opts.CellSize

	canvas := svg.New(w)
	canvas.Start(pxW, pxH)
	canvas.Rect(0, 0, pxW, pxH, fmt.Sprintf("fill:%s", opts.BackgroundColor))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := bc.GetByLocation(point.NewCellLocation(x, y))
			canvas.Rect(
				x*opts.CellSize, y*opts.CellSize,
				opts.CellSize, opts.CellSize,
				fmt.Sprintf("fill:%s", colorFor(v.CellType, opts)),
			)
		}
	}

	canvas.End()
	return nil
}

func colorFor(t cell.CellType, opts SVGOptions) string {
	switch t {
	case cell.Passage:
		return opts.PassageColor
	case cell.Wall:
		return opts.WallColor
	case cell.Boundary:
		return opts.BoundaryColor
	default:
		return opts.UnvisitedColor
	}
}

var _ ImageExporter = BlockSVGExporter{}
