package rng_test

import (
	"testing"

	"github.com/anchorforge/sigil/rng"
)

// BenchmarkUnit measures the raw cost of a single deterministic draw.
func BenchmarkUnit(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += rng.Unit(int64(i))
	}
	_ = sink
}

// BenchmarkFacetDraw measures the full per-facet path used by the
// synthesizer: token seed, stream derivation, unit draw, range mapping.
func BenchmarkFacetDraw(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		base := rng.TokenSeed(i%8, 'S')
		sink += rng.Lerp(0.75, 1.1, rng.Unit(rng.Derive(base, int64(i%8))))
	}
	_ = sink
}
