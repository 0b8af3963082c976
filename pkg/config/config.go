// Package config defines the serializable generation recipe mazelib's
// top-level façade (pkg/maze) consumes: coordinate-space shape, cell
// class and its scaling/padding, generator choice, and seed. File I/O and
// CLI wiring are external collaborators' concern (spec.md §1); this
// package only defines the recipe and its validation, the way the
// teacher's pkg/dungeon/config.go defines a dungeon generation recipe.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CellKind selects which cell class a Coordinator uses.
type CellKind string

const (
	// CellKindBlock selects the block cell coordinator.
	CellKindBlock CellKind = "BLOCK"
	// CellKindInline selects the inline cell coordinator.
	CellKindInline CellKind = "INLINE"
)

// GeneratorKind selects which carving algorithm pkg/maze.Generate runs.
type GeneratorKind string

const (
	GeneratorNaryTree             GeneratorKind = "NARY_TREE"
	GeneratorHuntAndKill          GeneratorKind = "HUNT_AND_KILL"
	GeneratorRecursiveBacktracker GeneratorKind = "RECURSIVE_BACKTRACKER"
	GeneratorPrims                GeneratorKind = "PRIMS"
	GeneratorBinaryTree           GeneratorKind = "BINARY_TREE"
)

// ValidGeneratorKinds lists all valid generator selections.
var ValidGeneratorKinds = []GeneratorKind{
	GeneratorNaryTree,
	GeneratorHuntAndKill,
	GeneratorRecursiveBacktracker,
	GeneratorPrims,
	GeneratorBinaryTree,
}

// Config specifies all parameters needed to build a coordinate space, a
// coordinator over it, an optional solid border, and run a generator.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to let
	// callers supply their own source of entropy upstream; mazelib never
	// auto-seeds from wall-clock time itself (that would break
	// reproducibility for library consumers who forgot to override it).
	Seed uint64 `yaml:"seed" json:"seed"`

	// Dims is the box coordinate space's per-axis point counts, most
	// -minor axis first. Must have at least one entry, all positive.
	Dims []int `yaml:"dims" json:"dims"`

	// CellKind selects the coordinator's cell class.
	CellKind CellKind `yaml:"cellKind" json:"cellKind"`

	// Scale is the block coordinator's per-axis scale factor (cells per
	// point-to-point step). Ignored for CellKindInline. Defaults to 1 on
	// every axis if empty.
	Scale []int `yaml:"scale,omitempty" json:"scale,omitempty"`

	// Padding is the block coordinator's per-axis [negative, positive]
	// cell padding. Ignored for CellKindInline. Defaults to zero on
	// every axis if empty.
	Padding [][2]int `yaml:"padding,omitempty" json:"padding,omitempty"`

	// SolidBorder applies SolidBorderTemplate before generation.
	SolidBorder bool `yaml:"solidBorder" json:"solidBorder"`

	// Generator selects the carving algorithm.
	Generator GeneratorKind `yaml:"generator" json:"generator"`
}

// Validate checks Config for internal consistency. It does not know
// whether the chosen generator supports the given dimensionality (that
// is a pkg/maze.Generate-time concern, since only pkg/generate knows each
// generator's dimensionality restriction).
func (c *Config) Validate() error {
	if len(c.Dims) == 0 {
		return errors.New("config: dims must have at least one axis")
	}
	for i, d := range c.Dims {
		if d <= 0 {
			return fmt.Errorf("config: dims[%d] must be positive, got %d", i, d)
		}
	}

	switch c.CellKind {
	case CellKindBlock, CellKindInline:
	default:
		return fmt.Errorf("config: invalid cellKind %q, must be BLOCK or INLINE", c.CellKind)
	}

	if c.CellKind == CellKindBlock {
		if len(c.Scale) != 0 && len(c.Scale) != len(c.Dims) {
			return fmt.Errorf("config: scale has %d axes, dims has %d", len(c.Scale), len(c.Dims))
		}
		for i, s := range c.Scale {
			if s <= 0 {
				return fmt.Errorf("config: scale[%d] must be positive, got %d", i, s)
			}
		}
		if len(c.Padding) != 0 && len(c.Padding) != len(c.Dims) {
			return fmt.Errorf("config: padding has %d axes, dims has %d", len(c.Padding), len(c.Dims))
		}
		for i, p := range c.Padding {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("config: padding[%d] must be non-negative, got %v", i, p)
			}
		}
	}

	valid := false
	for _, g := range ValidGeneratorKinds {
		if c.Generator == g {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config: invalid generator %q", c.Generator)
	}

	return nil
}

// EffectiveScale returns Scale, defaulting every axis to 1 if Scale is
// empty.
func (c *Config) EffectiveScale() []int {
	if len(c.Scale) != 0 {
		return c.Scale
	}
	out := make([]int, len(c.Dims))
	for i := range out {
		out[i] = 1
	}
	return out
}

// EffectivePadding returns Padding, defaulting every axis to [0,0] if
// Padding is empty.
func (c *Config) EffectivePadding() [][2]int {
	if len(c.Padding) != 0 {
		return c.Padding
	}
	return make([][2]int, len(c.Dims))
}

// LoadYAML parses a Config from YAML bytes and validates it.
func LoadYAML(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return &c, nil
}

// ToYAML serializes c to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshaling YAML: %w", err)
	}
	return data, nil
}
