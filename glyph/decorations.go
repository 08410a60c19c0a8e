// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// decorations.go - connective and ornamental shapes (variant-gated).
//
// Contract:
//   - Decorations derive from already-placed letter anchors and static
//     canvas geometry, never from raw text.
//   - Gating: Dense = connectors + both rings + cardinal marks;
//     Balanced = connectors + the inner ring; Minimal = none.
//   - Emission order inside the decoration layer is frozen:
//     connectors, rings, cardinal marks.

package glyph

// Decoration tuning. Width factors apply to the variant stroke width;
// radius factors apply to canvas size.
const (
	connectorWidthFactor = 0.5
	connectorOpacity     = 0.35
	ringWidthFactor      = 0.4
	ringOpacity          = 0.3
	cardinalWidthFactor  = 0.6
	cardinalOpacity      = 0.5
	cardinalInnerFactor  = 0.38
	cardinalOuterFactor  = 0.44
)

// ringRadiusFactors lists the concentric ring radii; Dense draws all of
// them, Balanced the first only.
var ringRadiusFactors = [...]float64{0.30, 0.36}

// cardinalDirections are the N/E/S/W unit vectors (SVG y-down axis).
var cardinalDirections = [...]Point{
	{X: 0, Y: -1}, // north
	{X: 1, Y: 0},  // east
	{X: 0, Y: 1},  // south
	{X: -1, Y: 0}, // west
}

// decorationShapes assembles the decoration layer for the resolved
// variant. Anchors are the letter placement centers in emission order.
func decorationShapes(v Variant, vc Config, anchors []Point, center Point, size float64) []Shape {
	if !vc.Decorations {
		return nil
	}

	var shapes []Shape

	// Connectors trace the letter sequence.
	for i := 1; i < len(anchors); i++ {
		shapes = append(shapes, Line{
			From:    anchors[i-1],
			To:      anchors[i],
			Width:   vc.StrokeWidth * connectorWidthFactor,
			Opacity: connectorOpacity,
		})
	}

	// Concentric rings.
	ringCount := 1
	if v == Dense {
		ringCount = len(ringRadiusFactors)
	}
	for i := 0; i < ringCount; i++ {
		shapes = append(shapes, Circle{
			Center:  center,
			Radius:  size * ringRadiusFactors[i],
			Width:   vc.StrokeWidth * ringWidthFactor,
			Opacity: ringOpacity,
		})
	}

	// Cardinal marks are the Dense signature.
	if v == Dense {
		for _, dir := range cardinalDirections {
			shapes = append(shapes, Line{
				From: Point{
					X: center.X + dir.X*size*cardinalInnerFactor,
					Y: center.Y + dir.Y*size*cardinalInnerFactor,
				},
				To: Point{
					X: center.X + dir.X*size*cardinalOuterFactor,
					Y: center.Y + dir.Y*size*cardinalOuterFactor,
				},
				Width:   vc.StrokeWidth * cardinalWidthFactor,
				Opacity: cardinalOpacity,
			})
		}
	}

	return shapes
}
