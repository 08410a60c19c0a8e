// Package glyph synthesizes deterministic sigil geometry from distilled
// letters, producing abstract stroke compositions ready for serialization.
//
// 🚀 How synthesis works
//
//	Each letter is rendered as one archetype from a small closed stroke
//	family (spire, chevron, crossed, gate, bolt, trident, wedge). Every
//	placement facet — rotation, scale, mirror flips, polar offset around
//	the canvas center, opacity, archetype choice — is drawn from a seeded
//	generator keyed by the letter's position and code point, so identical
//	letters in identical positions always yield byte-identical geometry.
//
// ✨ Key features:
//   - three style variants (Dense, Balanced, Minimal) driven by static,
//     immutable configuration tables plus display metadata
//   - irregular hand-drawn border: 36 radially jittered samples joined by
//     quadratic midpoint smoothing; jitter seeds depend on the sample
//     index only, never on the input text
//   - fixed draw order: decorations behind, letter strokes above them,
//     border on top
//   - total: unknown variants fall back to Balanced, empty input degrades
//     to a centered primitive plus border — synthesis never fails
//
// ⚙️ Usage:
//
//	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Dense)
//	for _, s := range sig.Shapes { /* serialize */ }
//
// Synthesis is pure: no RNG state, no globals, no error paths. The only
// panics in this package live in option constructors.
package glyph
