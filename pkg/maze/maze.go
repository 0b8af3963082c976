// Package maze is the top-level façade: it wires a config.Config into a
// coordinate space, a coordinator over it, an optional structural
// template, and a generator, producing a finished Maze.
//
// This mirrors the teacher's pkg/dungeon.DefaultGenerator pipeline shape
// (Config -> Graph -> Embed -> Carve -> Content -> Validate), generalized
// to this module's three-stage pipeline (Space -> Coordinator[+Template]
// -> Generate).
package maze

import (
	"fmt"

	"github.com/latticeforge/mazelib/pkg/config"
	"github.com/latticeforge/mazelib/pkg/coordinator"
	"github.com/latticeforge/mazelib/pkg/generate"
	"github.com/latticeforge/mazelib/pkg/rng"
	"github.com/latticeforge/mazelib/pkg/space"
	"github.com/latticeforge/mazelib/pkg/template"
)

// Maze is the result of running the generation pipeline: a coordinate
// space paired with the coordinator that carved it.
type Maze struct {
	Space       *space.BoxSpace
	Coordinator coordinator.Coordinator
	Seed        uint64
}

// Generate builds a complete Maze from cfg. It is deterministic: the same
// Config (including Seed) always produces the same Maze.
func Generate(cfg *config.Config) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("maze: invalid config: %w", err)
	}

	sp, err := space.NewBoxSpace(cfg.Dims...)
	if err != nil {
		return nil, fmt.Errorf("maze: building coordinate space: %w", err)
	}

	var coord coordinator.Coordinator
	switch cfg.CellKind {
	case config.CellKindBlock:
		bc, err := coordinator.NewBlockCoordinator(sp, cfg.EffectiveScale(), cfg.EffectivePadding())
		if err != nil {
			return nil, fmt.Errorf("maze: building block coordinator: %w", err)
		}
		coord = bc
	case config.CellKindInline:
		coord = coordinator.NewInlineCoordinator(sp)
	default:
		return nil, fmt.Errorf("maze: unsupported cell kind %q", cfg.CellKind)
	}

	if cfg.SolidBorder {
		template.SolidBorderTemplate{}.Apply(coord)
	}

	gen, err := generatorFor(cfg.Generator)
	if err != nil {
		return nil, err
	}

	r := rng.New(cfg.Seed, string(cfg.Generator))
	gen.Generate(coord, r)

	return &Maze{Space: sp, Coordinator: coord, Seed: cfg.Seed}, nil
}

// generatorFor maps a config.GeneratorKind to its pkg/generate
// implementation.
func generatorFor(kind config.GeneratorKind) (generate.Generator, error) {
	switch kind {
	case config.GeneratorNaryTree:
		return generate.NaryTree{}, nil
	case config.GeneratorHuntAndKill:
		return generate.HuntAndKill{}, nil
	case config.GeneratorRecursiveBacktracker:
		return generate.RecursiveBacktracker{}, nil
	case config.GeneratorPrims:
		return generate.Prims{}, nil
	case config.GeneratorBinaryTree:
		return generate.BinaryTree{}, nil
	default:
		return nil, fmt.Errorf("maze: unknown generator %q", kind)
	}
}
