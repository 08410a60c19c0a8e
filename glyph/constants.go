// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// constants.go — shared synthesis constants (no magic numbers in impl files).
//
// Determinism:
//   - Facet stream indices and thresholds below are part of the public
//     deterministic output: changing any of them changes every generated
//     sigil. Treat them as frozen; extend append-only.

package glyph

// Canvas defaults. The canvas is always square; shapes are expressed in
// absolute canvas units so the serializer needs no extra scaling pass.
const (
	// DefaultCanvasSize is the square viewBox edge length.
	DefaultCanvasSize = 100.0
	// DefaultTokenRadius scales the [-1,1] archetype cell into canvas units.
	DefaultTokenRadius = 12.0
)

// Facet stream indices: facet k of a letter draws rng.Unit(rng.Derive(base, k)).
// Numbering is frozen; reordering would silently re-style every sigil.
const (
	facetRotation int64 = iota // full-turn stroke rotation
	facetScale                 // scale within the variant range
	facetFlipX                 // horizontal mirror decision
	facetFlipY                 // vertical mirror decision
	facetAngle                 // placement angle around canvas center
	facetRadius                // placement distance from canvas center
	facetOpacity               // stroke opacity within the variant range
	facetSymbol                // archetype selection
)

// Mirror thresholds applied to the [0,1) flip facet draws. The asymmetric
// vertical threshold keeps most letters upright.
const (
	flipXThreshold = 0.5
	flipYThreshold = 0.7
)

// Angle conversions.
const (
	// fullTurnDegrees maps a unit rotation draw onto degrees.
	fullTurnDegrees = 360.0
	// halfTurnDegrees converts degrees to radians via π/halfTurnDegrees.
	halfTurnDegrees = 180.0
)

// fallbackRadiusFactor sizes the centered primitive emitted for empty
// input, as a fraction of canvas size.
const fallbackRadiusFactor = 0.12
