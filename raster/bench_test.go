package raster_test

import (
	"testing"

	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/raster"
)

// benchmarkControlImage runs the full preprocessing pipeline at the
// given output resolution.
func benchmarkControlImage(b *testing.B, size int) {
	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Balanced)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = raster.ControlImage(sig, raster.WithOutputSize(size))
	}
}

func BenchmarkControlImage_256(b *testing.B)  { benchmarkControlImage(b, 256) }
func BenchmarkControlImage_512(b *testing.B)  { benchmarkControlImage(b, 512) }
func BenchmarkControlImage_1024(b *testing.B) { benchmarkControlImage(b, 1024) }

// BenchmarkRender isolates vector rasterization from the refinement
// stages that follow it.
func BenchmarkRender(b *testing.B) {
	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Dense)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = raster.Render(sig, raster.WithOutputSize(512))
	}
}

// BenchmarkDilate measures disk-kernel morphology at the default
// protection radius.
func BenchmarkDilate(b *testing.B) {
	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Balanced)
	mask := raster.ControlImage(sig, raster.WithOutputSize(512)).StrokeMask

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = raster.Dilate(mask, 6)
	}
}
