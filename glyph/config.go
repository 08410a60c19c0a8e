// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • glyphConfig is the single source of truth for all canvas knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGlyphConfig applies options in-order (later overrides earlier).

package glyph

// glyphConfig aggregates canvas knobs used by Synthesize.
// It is passed by VALUE downstream (immutable to callers).
type glyphConfig struct {
	// size is the square canvas edge length.
	size float64
	// tokenRadius scales the [-1,1] archetype cell into canvas units.
	tokenRadius float64
}

// newGlyphConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newGlyphConfig(opts ...Option) glyphConfig {
	cfg := glyphConfig{
		size:        DefaultCanvasSize,
		tokenRadius: DefaultTokenRadius,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
