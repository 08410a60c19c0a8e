// SPDX-License-Identifier: MIT
// Package: sigil/style
//
// presets.go - built-in enhancement presets (data-only).
//
// Purpose:
//   - This file is the single source of truth for the curated style catalog.
//     It holds the six built-in presets with their prompts, control modes and
//     tuning overrides. Lookup, merge and file-loading logic lives in
//     style.go and load.go.
//   - Prompts are assembled from the shared promptBase/negativeBase constants
//     so that every preset carries the same structure-preservation contract;
//     only the surface-treatment clauses differ per style.
//
// Contract (for consumers such as enhance):
//   - builtinOrder is the canonical presentation order; Names() and CLI
//     listings follow it. Do not reorder existing entries; append new ones.
//   - Override fields left at zero mean "inherit DefaultTuning". An explicit
//     zero override is not representable; none of the built-ins needs one.
//   - Geometric styles (sacred_geometry, gold_leaf, minimal_line) condition
//     on canny edges and run a raised conditioning scale; organic styles
//     (watercolor, ink_brush, cosmic) condition on line art.
//
// Determinism:
//   - Data here are immutable after init; catalogs copy on construction so
//     callers can never mutate the registry.
//
// AI-Hints:
//   - To add a style, append a data-only entry plus its builtinOrder slot.
//     Keep the negativeBase prefix: it is what keeps renderers from
//     redrawing geometry.

package style

// Shared prompt scaffolding. Every preset opens with the preservation
// contract and every negative prompt bans geometry edits before naming
// style-specific failure modes.
const (
	promptBase = "Restore and beautify the existing sigil. " +
		"Preserve exact geometry and stroke paths. "

	negativeBase = "extra lines, decorative circle, mandala, compass, " +
		"runes, glyphs, occult seal, emblem, logo redesign, reinterpretation, " +
		"frame, border, symmetry embellishment, altered shape, new symbols, " +
		"added elements, changed geometry, "
)

// Built-in preset names.
const (
	Watercolor     = "watercolor"
	InkBrush       = "ink_brush"
	SacredGeometry = "sacred_geometry"
	GoldLeaf       = "gold_leaf"
	Cosmic         = "cosmic"
	MinimalLine    = "minimal_line"
)

// builtinOrder pins the curated presentation order.
var builtinOrder = []string{
	Watercolor,
	InkBrush,
	SacredGeometry,
	GoldLeaf,
	Cosmic,
	MinimalLine,
}

// -----------------------------------------------------------------------------
// The catalog. Data only - no logic below this line.
// -----------------------------------------------------------------------------

var builtinPresets = map[string]Preset{
	Watercolor: {
		Name:    Watercolor,
		Control: ControlLineart,
		Prompt: promptBase +
			"Apply soft watercolor texture as surface treatment only. " +
			"Translucent washes, subtle color bleeding at edges. " +
			"Paper texture visible. The sigil linework remains unchanged. " +
			"High-quality artistic enhancement, mystical symbol preserved exactly.",
		NegativePrompt: negativeBase +
			"distorted lines, thick outlines, cartoon, 3d render, photograph",
		DenoiseStrength: 0.30,
	},

	InkBrush: {
		Name:    InkBrush,
		Control: ControlLineart,
		Prompt: promptBase +
			"Apply traditional ink brush texture as surface treatment only. " +
			"Sumi-e aesthetic, ink wash gradients, rice paper texture. " +
			"Zen calligraphy feel. The sigil structure remains precisely as drawn.",
		NegativePrompt: negativeBase +
			"digital, modern, color",
		DenoiseStrength: 0.25,
	},

	SacredGeometry: {
		Name:    SacredGeometry,
		Control: ControlCanny,
		Prompt: promptBase +
			"Apply golden metallic sheen as surface treatment only. " +
			"Sacred geometry aesthetic, precise lines with subtle glow. " +
			"Mathematical perfection in texture, not form. " +
			"The original sigil geometry is untouched.",
		NegativePrompt: negativeBase +
			"organic, messy",
		DenoiseStrength:   0.22,
		ConditioningScale: 1.25,
	},

	GoldLeaf: {
		Name:    GoldLeaf,
		Control: ControlCanny,
		Prompt: promptBase +
			"Apply gold leaf gilding texture as surface treatment only. " +
			"Illuminated manuscript style, precious metal sheen, " +
			"ornate texture on the existing lines. Medieval luxury aesthetic. " +
			"The sigil shape remains exactly as designed.",
		NegativePrompt: negativeBase +
			"modern, photography",
		DenoiseStrength:   0.25,
		ConditioningScale: 1.20,
	},

	Cosmic: {
		Name:    Cosmic,
		Control: ControlLineart,
		Prompt: promptBase +
			"Apply ethereal cosmic glow as surface treatment only. " +
			"Nebula colors, starlight, celestial energy emanating from the " +
			"unchanged sigil lines. Deep space background. " +
			"The sigil structure is preserved exactly.",
		NegativePrompt: negativeBase +
			"planets, faces, realistic photo",
		DenoiseStrength: 0.32,
	},

	MinimalLine: {
		Name:    MinimalLine,
		Control: ControlCanny,
		Prompt: promptBase +
			"Apply clean minimalist treatment as surface polish only. " +
			"Crisp precise lines, subtle paper texture, " +
			"modern graphic design aesthetic. " +
			"The sigil geometry is preserved with absolute precision.",
		NegativePrompt: negativeBase +
			"texture, shading, embellishment, ornate",
		DenoiseStrength:   0.18,
		ConditioningScale: 1.30,
	},
}
