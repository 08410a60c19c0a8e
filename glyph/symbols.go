// SPDX-License-Identifier: MIT
// Package: sigil/glyph
//
// symbols.go - canonical stroke archetypes (data-only).
//
// Purpose:
//   - Single source of truth for the abstract stroke families letters are
//     rendered with. Each archetype is one or more polylines over the unit
//     cell [-1,1]×[-1,1]; placement (flips, scale, rotation, translation)
//     lives in synth.go.
//
// Contract (for synth.go):
//   - Strokes are emitted in declared order (drawing order).
//   - Every coordinate lies in [-1,1]; makeSymbol enforces this at package
//     load and panics on violation, because a bad entry is a programming
//     error, not a runtime condition.
//   - Registry order is part of the deterministic output: the archetype
//     facet indexes into this array. Never reorder or remove entries; only
//     append new ones.
//
// Determinism:
//   - Data here are immutable after review. Appending an archetype changes
//     outputs for letters whose symbol facet lands on the new slot, so
//     treat additions as a breaking change for golden fixtures.

package glyph

// symbol groups the polyline strokes of one archetype.
type symbol struct {
	Name    string
	Strokes [][]Point
}

// Unit-cell bounds and the minimum points a polyline stroke needs.
const (
	symbolCoordMin  = -1.0
	symbolCoordMax  = 1.0
	minStrokePoints = 2
)

// makeSymbol validates and assembles one archetype entry.
// Panics on malformed data (load-time check, same spirit as option panics).
func makeSymbol(name string, strokes ...[]Point) symbol {
	if name == "" {
		panic("glyph: makeSymbol with empty name")
	}
	if len(strokes) == 0 {
		panic("glyph: symbol " + name + " has no strokes")
	}
	for _, stroke := range strokes {
		if len(stroke) < minStrokePoints {
			panic("glyph: symbol " + name + " has a stroke with fewer than two points")
		}
		for _, p := range stroke {
			if p.X < symbolCoordMin || p.X > symbolCoordMax ||
				p.Y < symbolCoordMin || p.Y > symbolCoordMax {
				panic("glyph: symbol " + name + " has a point outside the unit cell")
			}
		}
	}

	return symbol{Name: name, Strokes: strokes}
}

// symbols is the canonical archetype registry; selection order is frozen.
var symbols = [...]symbol{
	// spire - vertical mast with an apex chevron.
	// ..^..
	// ./|\.
	// ..|..
	// ..|..
	// ..|..
	makeSymbol("spire",
		[]Point{{X: 0, Y: 1}, {X: 0, Y: -1}},
		[]Point{{X: -0.45, Y: -0.5}, {X: 0, Y: -1}, {X: 0.45, Y: -0.5}},
	),

	// chevron - single wide peak.
	// ..^..
	// ./.\.
	// /...\
	makeSymbol("chevron",
		[]Point{{X: -1, Y: 0.6}, {X: 0, Y: -0.8}, {X: 1, Y: 0.6}},
	),

	// crossed - two diagonals meeting at center.
	// \.../
	// .\./.
	// ..X..
	// ./.\.
	// /...\
	makeSymbol("crossed",
		[]Point{{X: -0.8, Y: -0.8}, {X: 0.8, Y: 0.8}},
		[]Point{{X: 0.8, Y: -0.8}, {X: -0.8, Y: 0.8}},
	),

	// gate - squared arch, open at the bottom.
	// .___.
	// |...|
	// |...|
	// |...|
	makeSymbol("gate",
		[]Point{{X: -0.7, Y: 1}, {X: -0.7, Y: -0.7}, {X: 0.7, Y: -0.7}, {X: 0.7, Y: 1}},
	),

	// bolt - four-point lightning zigzag.
	// ..\..
	// ...\.
	// ./...
	// ..\..
	// ...\.
	makeSymbol("bolt",
		[]Point{{X: -0.5, Y: -1}, {X: 0.3, Y: -0.2}, {X: -0.3, Y: 0.2}, {X: 0.5, Y: 1}},
	),

	// trident - center shaft with squared outer prongs.
	// |.|.|
	// |.|.|
	// \_|_/
	// ..|..
	// ..|..
	makeSymbol("trident",
		[]Point{{X: 0, Y: 1}, {X: 0, Y: -1}},
		[]Point{{X: -0.6, Y: -1}, {X: -0.6, Y: -0.35}, {X: 0.6, Y: -0.35}, {X: 0.6, Y: -1}},
	),

	// wedge - closed upward triangle.
	// ..^..
	// ./.\.
	// /___\
	makeSymbol("wedge",
		[]Point{{X: -0.9, Y: 0.7}, {X: 0.9, Y: 0.7}, {X: 0, Y: -0.9}, {X: -0.9, Y: 0.7}},
	),
}
