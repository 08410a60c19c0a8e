package match_test

import (
	"fmt"

	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/match"
	"github.com/anchorforge/sigil/raster"
)

// ExampleCompute scores a rendition that reproduced the sigil exactly.
func ExampleCompute() {
	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Balanced)
	mask := raster.ControlImage(sig, raster.WithOutputSize(128)).StrokeMask

	cfg := match.DefaultConfig()
	cfg.Extraction = match.MethodThreshold
	score := match.Compute(mask, mask, cfg)

	fmt.Println(score.Class)
	fmt.Println(score.Preserved)
	// Output:
	// Structure Preserved
	// true
}

// ExampleShouldRegenerate gates a batch on how many renditions held up.
func ExampleShouldRegenerate() {
	scores := []match.Score{
		{Preserved: true},
		{Preserved: false},
		{Preserved: true},
	}

	regen, passing := match.ShouldRegenerate(scores, 2)
	fmt.Println(regen)
	fmt.Println(passing)
	// Output:
	// false
	// [0 2]
}
