// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// synth.go - deterministic geometry synthesis (the core pipeline stage).
//
// Purpose:
//   - Turn distilled letters into draw-ordered Shape primitives for one
//     style variant: seeded facets per letter, decorations per variant,
//     irregular border always.
//
// Contract:
//   - Synthesize never fails and never panics: unknown variants resolve to
//     Balanced, empty input yields the fallback primitive plus border.
//   - Output is a pure function of (letters, v, opts): repeated calls with
//     equal arguments produce deeply equal Sigils.
//   - Facet draws for letter i use base = rng.TokenSeed(i, letter) and the
//     frozen stream offsets facetRotation..facetSymbol (constants.go).
//
// Complexity:
//   - O(L·P + B) time and space for L letters, P points per archetype
//     (tiny constants) and the fixed border sample count B.

package glyph

import (
	"math"

	"github.com/anchorforge/sigil/rng"
)

// facets carries the eight seeded draws controlling one letter.
type facets struct {
	rotation float64 // degrees, [0,360)
	scale    float64 // within [ScaleMin,ScaleMax]
	flipX    bool
	flipY    bool
	angle    float64 // placement angle, radians [0,2π)
	radius   float64 // placement distance, canvas units [0,OffsetRange)
	opacity  float64 // within [OpacityMin,OpacityMax]
	symbol   int     // index into the symbols registry
}

// Synthesize builds the complete sigil geometry for letters in style v.
//
// Steps:
//  1. Resolve the variant configuration (total lookup; unknown → Balanced).
//  2. Place every letter: seeded facets pick archetype, transform and
//     polar offset around the canvas center.
//  3. Empty input degrades to a single centered primitive.
//  4. Assemble in the frozen draw order: decorations, letters, border.
//
// The returned Sigil echoes the caller's variant verbatim even when the
// configuration lookup fell back to Balanced.
func Synthesize(letters []rune, v Variant, opts ...Option) Sigil {
	cfg := newGlyphConfig(opts...)

	// Resolve once; decoration gating keys off the resolved value too.
	resolved := v
	if _, ok := variantConfigs[resolved]; !ok {
		resolved = Balanced
	}
	vc := variantConfigs[resolved]

	// Tuning values are expressed on the default canvas; zoom keeps custom
	// sizes proportional (a 200-unit sigil is the 100-unit one at 2×).
	zoom := cfg.size / DefaultCanvasSize
	vc.StrokeWidth *= zoom
	vc.OffsetRange *= zoom
	tokenRadius := cfg.tokenRadius * zoom

	center := Point{X: cfg.size / 2, Y: cfg.size / 2}

	// Empty input degrades to a centered primitive plus border; the
	// decoration layer is letter-driven and is skipped entirely.
	if len(letters) == 0 {
		return Sigil{
			Variant: v,
			Size:    cfg.size,
			Shapes: []Shape{
				Circle{
					Center:  center,
					Radius:  cfg.size * fallbackRadiusFactor,
					Width:   vc.StrokeWidth,
					Opacity: vc.OpacityMax,
				},
				borderPath(vc.Border, center, cfg.size),
			},
		}
	}

	// Place letters and remember anchors for connective decorations.
	paths := make([]Shape, 0, len(letters))
	anchors := make([]Point, 0, len(letters))
	for i, letter := range letters {
		f := drawFacets(i, letter, vc)
		anchor := Point{
			X: center.X + math.Cos(f.angle)*f.radius,
			Y: center.Y + math.Sin(f.angle)*f.radius,
		}
		paths = append(paths, letterPath(f, anchor, tokenRadius, vc.StrokeWidth))
		anchors = append(anchors, anchor)
	}

	shapes := decorationShapes(resolved, vc, anchors, center, cfg.size)
	shapes = append(shapes, paths...)
	shapes = append(shapes, borderPath(vc.Border, center, cfg.size))

	return Sigil{
		Variant: v,
		Size:    cfg.size,
		Letters: append([]rune(nil), letters...),
		Shapes:  shapes,
	}
}

// drawFacets performs the eight seeded draws for the letter at index.
// Every draw is an independent stream derived from the token base seed.
func drawFacets(index int, letter rune, vc Config) facets {
	base := rng.TokenSeed(index, letter)
	unit := func(stream int64) float64 {
		return rng.Unit(rng.Derive(base, stream))
	}

	symIdx := int(unit(facetSymbol) * float64(len(symbols)))
	if symIdx >= len(symbols) {
		symIdx = len(symbols) - 1
	}

	return facets{
		rotation: unit(facetRotation) * fullTurnDegrees,
		scale:    rng.Lerp(vc.ScaleMin, vc.ScaleMax, unit(facetScale)),
		flipX:    unit(facetFlipX) > flipXThreshold,
		flipY:    unit(facetFlipY) > flipYThreshold,
		angle:    unit(facetAngle) * 2 * math.Pi,
		radius:   unit(facetRadius) * vc.OffsetRange,
		opacity:  rng.Lerp(vc.OpacityMin, vc.OpacityMax, unit(facetOpacity)),
		symbol:   symIdx,
	}
}

// letterPath renders one archetype under the letter's facets as a single
// multi-stroke Path anchored at anchor. Point order per stroke:
// flip → scale → rotate → translate.
func letterPath(f facets, anchor Point, tokenRadius, width float64) Path {
	sym := symbols[f.symbol]
	radians := f.rotation * (math.Pi / halfTurnDegrees)
	sin, cos := math.Sincos(radians)
	scale := tokenRadius * f.scale

	p := Path{Width: width, Opacity: f.opacity}
	for _, stroke := range sym.Strokes {
		for j, pt := range stroke {
			x, y := pt.X, pt.Y
			if f.flipX {
				x = -x
			}
			if f.flipY {
				y = -y
			}
			x, y = x*scale, y*scale
			dst := Point{
				X: anchor.X + x*cos - y*sin,
				Y: anchor.Y + x*sin + y*cos,
			}
			if j == 0 {
				p.MoveTo(dst)
			} else {
				p.LineTo(dst)
			}
		}
	}

	return p
}
