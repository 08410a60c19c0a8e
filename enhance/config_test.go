package enhance

import (
	"testing"

	"github.com/anchorforge/sigil/match"
	"github.com/anchorforge/sigil/raster"
	"github.com/anchorforge/sigil/style"
)

func TestNewEnhanceConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newEnhanceConfig()
	if cfg.variations != DefaultVariations {
		t.Errorf("variations = %d, want %d", cfg.variations, DefaultVariations)
	}
	if cfg.minPassing != DefaultMinPassing {
		t.Errorf("minPassing = %d, want %d", cfg.minPassing, DefaultMinPassing)
	}
	if cfg.autoComposite {
		t.Error("autoComposite on by default")
	}
	if cfg.baseSeed != DefaultBaseSeed {
		t.Errorf("baseSeed = %d, want %d", cfg.baseSeed, DefaultBaseSeed)
	}
	if cfg.match != match.DefaultConfig() {
		t.Errorf("match config = %+v, want defaults", cfg.match)
	}
	if cfg.raster != nil {
		t.Errorf("raster options = %v, want none", cfg.raster)
	}
}

func TestNewEnhanceConfigLastWins(t *testing.T) {
	t.Parallel()

	mc := match.DefaultConfig()
	mc.Threshold = 0.9

	cfg := newEnhanceConfig(
		WithVariations(2),
		WithVariations(6),
		WithMinPassing(0),
		WithAutoComposite(),
		WithBaseSeed(-7),
		WithMatchConfig(mc),
		WithRasterOptions(raster.WithOutputSize(64)),
	)
	if cfg.variations != 6 {
		t.Errorf("variations = %d, want 6", cfg.variations)
	}
	if cfg.minPassing != 0 {
		t.Errorf("minPassing = %d, want 0", cfg.minPassing)
	}
	if !cfg.autoComposite {
		t.Error("autoComposite not set")
	}
	if cfg.baseSeed != -7 {
		t.Errorf("baseSeed = %d, want -7", cfg.baseSeed)
	}
	if cfg.match.Threshold != 0.9 {
		t.Errorf("match threshold = %v, want 0.9", cfg.match.Threshold)
	}
	if len(cfg.raster) != 1 {
		t.Errorf("raster options = %d, want 1", len(cfg.raster))
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func()
	}{
		{"variations zero", func() { WithVariations(0) }},
		{"variations over max", func() { WithVariations(MaxVariations + 1) }},
		{"negative min passing", func() { WithMinPassing(-1) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Fatalf("%s: no panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

func TestStricterTuning(t *testing.T) {
	t.Parallel()

	got := stricter(style.DefaultTuning)
	approx := func(a, b float64) bool { d := a - b; return d < 1e-9 && d > -1e-9 }

	if !approx(got.ConditioningScale, 1.30) {
		t.Errorf("conditioning = %v, want 1.30", got.ConditioningScale)
	}
	if !approx(got.GuidanceScale, 4.0) {
		t.Errorf("guidance = %v, want 4.0", got.GuidanceScale)
	}
	if !approx(got.DenoiseStrength, 0.23) {
		t.Errorf("denoise = %v, want 0.23", got.DenoiseStrength)
	}
	if !approx(got.GuidanceEnd, 1.0) {
		t.Errorf("guidance end = %v, want 1.0", got.GuidanceEnd)
	}
	if got.InferenceSteps != 40 {
		t.Errorf("steps = %d, want 40", got.InferenceSteps)
	}
	if got.GuidanceStart != 0 {
		t.Errorf("guidance start = %v, want unchanged 0", got.GuidanceStart)
	}

	// Clamps engage when the shift would leave the stable window.
	maxed := style.DefaultTuning
	maxed.ConditioningScale = 1.45
	maxed.GuidanceScale = 3.2
	maxed.DenoiseStrength = 0.16
	got = stricter(maxed)
	if !approx(got.ConditioningScale, 1.5) {
		t.Errorf("capped conditioning = %v, want 1.5", got.ConditioningScale)
	}
	if !approx(got.GuidanceScale, 3.0) {
		t.Errorf("floored guidance = %v, want 3.0", got.GuidanceScale)
	}
	if !approx(got.DenoiseStrength, 0.15) {
		t.Errorf("floored denoise = %v, want 0.15", got.DenoiseStrength)
	}
}
