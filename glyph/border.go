// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// border.go - the irregular outer border (always drawn, input-independent).
//
// Contract:
//   - Border geometry depends on canvas size and BorderClass only. Jitter
//     seeds are a fixed function of the sample index k, so every sigil of
//     a given class and size shares one border.
//   - 36 samples on a nominal ring are perturbed radially, then joined by
//     quadratic segments through successive midpoints and closed, which
//     reads as a steady hand-drawn line.

package glyph

import (
	"math"

	"github.com/anchorforge/sigil/rng"
)

const (
	// borderSamples is the fixed ring sample count.
	borderSamples = 36
	// borderRadiusFactor positions the nominal ring radius on the canvas.
	borderRadiusFactor = 0.41
	// borderSeedBase decorrelates border jitter from every letter stream;
	// per-sample seeds derive from it and k alone, never from input text.
	borderSeedBase int64 = 7741
)

// borderWidths maps BorderClass to stroke width in canvas units.
var borderWidths = map[BorderClass]float64{
	BorderFine:    1.2,
	BorderRegular: 1.8,
	BorderBold:    2.6,
}

// borderJitters maps BorderClass to the radial jitter amplitude
// ("boldness": heavier borders wobble more).
var borderJitters = map[BorderClass]float64{
	BorderFine:    1.4,
	BorderRegular: 2.2,
	BorderBold:    3.2,
}

// borderPath builds the closed smoothed border ring for the given class.
func borderPath(class BorderClass, center Point, size float64) Path {
	width, ok := borderWidths[class]
	if !ok {
		width = borderWidths[BorderRegular]
	}
	jitter, ok := borderJitters[class]
	if !ok {
		jitter = borderJitters[BorderRegular]
	}

	// Width and jitter are expressed on the default canvas; zoom them so
	// the border scales together with the rest of the sigil.
	zoom := size / DefaultCanvasSize
	width *= zoom
	jitter *= zoom

	nominal := size * borderRadiusFactor

	// Sample the jittered ring.
	pts := make([]Point, borderSamples)
	for k := 0; k < borderSamples; k++ {
		u := rng.Unit(rng.Derive(borderSeedBase, int64(k)))
		r := nominal + (u*2-1)*jitter
		angle := 2 * math.Pi * float64(k) / borderSamples
		pts[k] = Point{
			X: center.X + math.Cos(angle)*r,
			Y: center.Y + math.Sin(angle)*r,
		}
	}

	// Quadratics through successive midpoints keep the ring C1-smooth.
	p := Path{Width: width, Opacity: 1}
	p.MoveTo(midpoint(pts[borderSamples-1], pts[0]))
	for k := 0; k < borderSamples; k++ {
		p.QuadTo(pts[k], midpoint(pts[k], pts[(k+1)%borderSamples]))
	}
	p.Close()

	return p
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
