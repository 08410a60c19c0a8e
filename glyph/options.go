// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// options.go — functional options for the synthesizer.
//
// Contract (strict):
//   • Options are functional (type Option func(*glyphConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Synthesis itself MUST NOT panic.
//   • No hidden globals; everything flows through glyphConfig.
//
// AI-Hints:
//   • WithSize changes the viewBox edge; all placement factors are
//     proportional, so sigils scale without distortion.
//   • WithTokenRadius trades letter size against whitespace; very large
//     values can push strokes beyond the border ring.

package glyph

// Option customizes synthesis by mutating a glyphConfig instance before
// geometry construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*glyphConfig)

// WithSize sets the square canvas edge length (viewBox spans 0..size).
// Panics if size <= 0 to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithSize(size float64) Option {
	if size <= 0 {
		// Fail fast: option constructors validate and panic.
		panic("glyph: WithSize(size<=0)")
	}
	return func(c *glyphConfig) {
		// Canvas edge; every placement factor scales off this value.
		c.size = size
	}
}

// WithTokenRadius sets the unit-cell radius letters are scaled by,
// expressed on the default 100-unit canvas (it zooms together with
// WithSize). Panics if radius <= 0.
// Complexity: O(1) time, O(1) space.
func WithTokenRadius(radius float64) Option {
	if radius <= 0 {
		// Fail fast to avoid degenerate (invisible) letters.
		panic("glyph: WithTokenRadius(radius<=0)")
	}
	return func(c *glyphConfig) {
		// Base letter size before the per-letter scale facet applies.
		c.tokenRadius = radius
	}
}
