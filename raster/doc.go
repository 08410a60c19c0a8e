// Package raster turns sigil geometry into high-contrast control images.
//
// 🚀 What it does
//
// Diffusion-based enhancement needs a pixel view of the sigil: white
// strokes on black, thick enough to survive denoising, centered with a
// protective margin. This package rasterizes glyph.Sigil shapes directly
// (no SVG round-trip) and derives the masks compositing needs later:
//
//	res := raster.ControlImage(sig)
//	res.Control     // edge-enhanced control image
//	res.StrokeMask  // binary stroke regions
//	res.DilatedMask // strokes plus a buffer zone
//
// ✨ Key features
//
//   - Anti-aliased stroke rendering with round caps and joins, honoring
//     per-shape width and opacity.
//   - Grayscale morphology (Dilate, Erode, Gradient) with a disk
//     structuring element, shared with the match package.
//   - Stroke thickening, content centering with padded margins, and
//     unsharp-mask edge enhancement.
//
// ⚙️ Determinism
//
// Every function is a pure transformation of its inputs. The same sigil
// and options produce byte-identical pixel buffers on every run.
package raster
