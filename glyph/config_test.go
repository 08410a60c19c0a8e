// Package glyph contains unit tests for the configuration primitives
// (glyphConfig and Option) and the static data registries.
package glyph

import (
	"testing"
)

// TestNewGlyphConfigDefaults verifies deterministic defaults.
func TestNewGlyphConfigDefaults(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	cfg := newGlyphConfig()
	if cfg.size != DefaultCanvasSize {
		t.Errorf("default size: expected %v, got %v", DefaultCanvasSize, cfg.size)
	}
	if cfg.tokenRadius != DefaultTokenRadius {
		t.Errorf("default tokenRadius: expected %v, got %v", DefaultTokenRadius, cfg.tokenRadius)
	}
}

// TestOptionOverrides verifies in-order application (last wins).
func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	cfg := newGlyphConfig(WithSize(50), WithSize(80), WithTokenRadius(9))
	if cfg.size != 80 {
		t.Errorf("last-wins size: expected 80, got %v", cfg.size)
	}
	if cfg.tokenRadius != 9 {
		t.Errorf("tokenRadius: expected 9, got %v", cfg.tokenRadius)
	}
}

// TestOptionPanics verifies option constructors fail fast on bad input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		call func()
	}{
		{name: "WithSize zero", call: func() { WithSize(0) }},
		{name: "WithSize negative", call: func() { WithSize(-10) }},
		{name: "WithTokenRadius zero", call: func() { WithTokenRadius(0) }},
		{name: "WithTokenRadius negative", call: func() { WithTokenRadius(-1) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic, got none", tc.name)
				}
			}()
			tc.call()
		})
	}
}

// TestSymbolRegistry guards the archetype data contract: non-empty
// registry, unique names, every stroke inside the unit cell.
func TestSymbolRegistry(t *testing.T) {
	t.Parallel()

	if len(symbols) == 0 {
		t.Fatal("symbols registry is empty")
	}
	seen := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		if sym.Name == "" {
			t.Error("symbol with empty name")
		}
		if seen[sym.Name] {
			t.Errorf("duplicate symbol name %q", sym.Name)
		}
		seen[sym.Name] = true

		if len(sym.Strokes) == 0 {
			t.Errorf("symbol %q has no strokes", sym.Name)
		}
		for _, stroke := range sym.Strokes {
			if len(stroke) < minStrokePoints {
				t.Errorf("symbol %q: stroke with %d point(s)", sym.Name, len(stroke))
			}
			for _, p := range stroke {
				if p.X < symbolCoordMin || p.X > symbolCoordMax ||
					p.Y < symbolCoordMin || p.Y > symbolCoordMax {
					t.Errorf("symbol %q: point (%v,%v) outside unit cell", sym.Name, p.X, p.Y)
				}
			}
		}
	}
}

// TestBorderClassTables verifies both border tables cover every class.
func TestBorderClassTables(t *testing.T) {
	t.Parallel()

	for _, class := range []BorderClass{BorderFine, BorderRegular, BorderBold} {
		if _, ok := borderWidths[class]; !ok {
			t.Errorf("borderWidths missing class %d", class)
		}
		if _, ok := borderJitters[class]; !ok {
			t.Errorf("borderJitters missing class %d", class)
		}
	}
}

// TestVariantConfigsComplete verifies every declared variant has a
// tuning record and sane bounds.
func TestVariantConfigsComplete(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		cfg, ok := variantConfigs[v]
		if !ok {
			t.Fatalf("variantConfigs missing %q", v)
		}
		if cfg.StrokeWidth <= 0 {
			t.Errorf("%q: StrokeWidth must be positive", v)
		}
		if cfg.OpacityMin <= 0 || cfg.OpacityMax > 1 || cfg.OpacityMin > cfg.OpacityMax {
			t.Errorf("%q: opacity bounds out of order: [%v,%v]", v, cfg.OpacityMin, cfg.OpacityMax)
		}
		if cfg.ScaleMin <= 0 || cfg.ScaleMin > cfg.ScaleMax {
			t.Errorf("%q: scale bounds out of order: [%v,%v]", v, cfg.ScaleMin, cfg.ScaleMax)
		}
		if cfg.OffsetRange < 0 {
			t.Errorf("%q: OffsetRange must be non-negative", v)
		}
		if _, ok := variantMetadata[v]; !ok {
			t.Errorf("variantMetadata missing %q", v)
		}
	}
}
