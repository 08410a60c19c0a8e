// Package sigil turns a written intention into a deterministic vector
// seal — text distillation, seeded geometry synthesis and SVG
// serialization behind one small facade.
//
// 🚀 What is sigil?
//
//	A pure, reproducible pipeline that brings together:
//		• Distillation: strip vowels & duplicates, keep the consonant skeleton
//		• Validation: sentinel-based verdicts for UI flows, never panics
//		• Synthesis: seeded facets place abstract strokes, rings & borders
//		• Serialization: byte-stable, self-contained SVG documents
//		• Enhancement: rasterization, structure scoring and compositing
//		  for stylized renditions of the same geometry
//
// ✨ Why choose sigil?
//
//   - Deterministic – the same intention yields the same bytes, forever
//   - Total – every entry point returns a usable result for any input
//   - Pure Go – no cgo; rasterization builds on golang.org/x/image
//   - Extensible – style presets, functional options, pluggable renderers
//
// Under the hood, everything is organized under focused subpackages:
//
//	distill/   — intention → letter skeleton (the text stage)
//	rng/       — seeded deterministic draws (SplitMix64 finalizer)
//	glyph/     — geometry synthesis: variants, archetypes, borders
//	svg/       — serialization, normalization and inspection
//	raster/    — rasterization of sigil geometry to grayscale images
//	match/     — structure preservation scoring (IoU + edge overlap)
//	composite/ — masked compositing of stylized renditions
//	style/     — named style presets (YAML-loadable)
//	enhance/   — orchestrated variation generation with retries
//
// Quick example:
//
//	res := sigil.FromIntention("Close the deal", glyph.Balanced)
//	fmt.Println(res.Variant)   // balanced
//	fmt.Println(res.SVG[:4])   // <svg
//
// The pipeline is a pure function: no storage, no network, no globals.
// Rendering, persistence and backend synchronization belong to callers.
package sigil
