package config

import "testing"

func validConfig() *Config {
	return &Config{
		Seed:      0,
		Dims:      []int{9, 9},
		CellKind:  CellKindBlock,
		Scale:     []int{2, 2},
		Padding:   [][2]int{{1, 1}, {1, 1}},
		Generator: GeneratorHuntAndKill,
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsEmptyDims(t *testing.T) {
	c := validConfig()
	c.Dims = nil
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for empty dims")
	}
}

func TestValidateRejectsNonPositiveDim(t *testing.T) {
	c := validConfig()
	c.Dims = []int{3, 0}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for a zero dimension")
	}
}

func TestValidateRejectsBadCellKind(t *testing.T) {
	c := validConfig()
	c.CellKind = "ROUND"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for an invalid cell kind")
	}
}

func TestValidateRejectsMismatchedScaleAxes(t *testing.T) {
	c := validConfig()
	c.Scale = []int{2}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for scale axis count mismatch")
	}
}

func TestValidateRejectsNegativePadding(t *testing.T) {
	c := validConfig()
	c.Padding = [][2]int{{-1, 0}, {0, 0}}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for negative padding")
	}
}

func TestValidateIgnoresScaleForInlineCells(t *testing.T) {
	c := validConfig()
	c.CellKind = CellKindInline
	c.Scale = []int{99} // wrong axis count, but must be ignored for INLINE
	c.Padding = nil
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownGenerator(t *testing.T) {
	c := validConfig()
	c.Generator = "NOT_A_GENERATOR"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown generator")
	}
}

func TestEffectiveScaleDefaultsToOnes(t *testing.T) {
	c := validConfig()
	c.Scale = nil
	eff := c.EffectiveScale()
	for i, s := range eff {
		if s != 1 {
			t.Errorf("EffectiveScale()[%d] = %d, want 1", i, s)
		}
	}
}

func TestEffectivePaddingDefaultsToZero(t *testing.T) {
	c := validConfig()
	c.Padding = nil
	eff := c.EffectivePadding()
	for i, p := range eff {
		if p != [2]int{0, 0} {
			t.Errorf("EffectivePadding()[%d] = %v, want [0 0]", i, p)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	c := validConfig()
	data, err := c.ToYAML()
	if err != nil {
		t.Fatalf("unexpected error marshaling: %v", err)
	}
	got, err := LoadYAML(data)
	if err != nil {
		t.Fatalf("unexpected error unmarshaling: %v", err)
	}
	if got.CellKind != c.CellKind || got.Generator != c.Generator || len(got.Dims) != len(c.Dims) {
		t.Fatalf("round-tripped config differs: got %+v, want %+v", got, c)
	}
}

func TestLoadYAMLRejectsInvalidConfig(t *testing.T) {
	_, err := LoadYAML([]byte("dims: []\ncellKind: BLOCK\ngenerator: PRIMS\n"))
	if err == nil {
		t.Fatalf("expected validation error for empty dims")
	}
}
