// options.go - functional options for the enhancement run.
//
// Contract:
//   - Option constructors validate eagerly and panic on nonsense values;
//     Enhance itself never panics.
//   - Later options win. Zero options mean the documented defaults.

package enhance

import (
	"fmt"

	"github.com/anchorforge/sigil/match"
	"github.com/anchorforge/sigil/raster"
)

const (
	// DefaultVariations is how many renditions one run produces.
	DefaultVariations = 4

	// MaxVariations bounds a run; beyond it extra seeds stop improving
	// the pick and only burn backend time.
	MaxVariations = 8

	// DefaultMinPassing is how many variations must preserve structure
	// on their own before the retry round is skipped.
	DefaultMinPassing = 2
)

// Option adjusts the enhancer configuration.
type Option func(*enhanceConfig)

type enhanceConfig struct {
	variations    int
	minPassing    int
	autoComposite bool
	baseSeed      int64
	match         match.Config
	raster        []raster.Option
}

func newEnhanceConfig(opts ...Option) enhanceConfig {
	cfg := enhanceConfig{
		variations: DefaultVariations,
		minPassing: DefaultMinPassing,
		baseSeed:   DefaultBaseSeed,
		match:      match.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithVariations sets how many renditions one run produces.
// Panics unless 1 <= n <= MaxVariations.
func WithVariations(n int) Option {
	if n < 1 || n > MaxVariations {
		panic(fmt.Sprintf("enhance.WithVariations: n must be in [1, %d], got %d", MaxVariations, n))
	}

	return func(c *enhanceConfig) { c.variations = n }
}

// WithMinPassing sets how many variations must preserve structure before
// the retry round is skipped. Zero disables retries.
// Panics if n is negative.
func WithMinPassing(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("enhance.WithMinPassing: n must not be negative, got %d", n))
	}

	return func(c *enhanceConfig) { c.minPassing = n }
}

// WithAutoComposite draws the original strokes back over any variation
// that fails the structure check, trading texture for guaranteed
// geometry.
func WithAutoComposite() Option {
	return func(c *enhanceConfig) { c.autoComposite = true }
}

// WithBaseSeed anchors the first-round seed ladder.
func WithBaseSeed(seed int64) Option {
	return func(c *enhanceConfig) { c.baseSeed = seed }
}

// WithMatchConfig replaces the structure-scoring configuration.
func WithMatchConfig(cfg match.Config) Option {
	return func(c *enhanceConfig) { c.match = cfg }
}

// WithRasterOptions forwards options to the control-image pipeline.
func WithRasterOptions(opts ...raster.Option) Option {
	return func(c *enhanceConfig) { c.raster = append([]raster.Option(nil), opts...) }
}
