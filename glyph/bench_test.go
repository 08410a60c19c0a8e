package glyph_test

import (
	"testing"

	"github.com/anchorforge/sigil/glyph"
)

// BenchmarkSynthesize measures a full Dense synthesis of six letters.
func BenchmarkSynthesize(b *testing.B) {
	letters := []rune("CLSTHD")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = glyph.Synthesize(letters, glyph.Dense)
	}
}

// BenchmarkSynthesizeLong stresses the per-letter path with a wide input.
func BenchmarkSynthesizeLong(b *testing.B) {
	letters := []rune("BCDFGHJKLMNPQRSTVWXZ")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = glyph.Synthesize(letters, glyph.Balanced)
	}
}
