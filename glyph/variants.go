// Package glyph static variant registries. These tables are read-only:
// synthesis looks values up and never mutates them at runtime, so sigils
// stay reproducible across processes and platforms.

package glyph

// Variant identifies one of the supported sigil rendering styles.
type Variant string

const (
	// Dense layers every decoration class atop heavier strokes.
	Dense Variant = "dense"
	// Balanced is the default style: moderate weight, connectors, one ring.
	Balanced Variant = "balanced"
	// Minimal keeps thin letter strokes and the border only.
	Minimal Variant = "minimal"
)

// Variants returns the supported variants in canonical presentation order.
// The order is part of the public contract: GenerateAll emits results in
// exactly this sequence.
func Variants() []Variant {
	return []Variant{Dense, Balanced, Minimal}
}

// BorderClass selects the stroke weight and radial jitter of the border.
type BorderClass int

const (
	// BorderFine is a thin, calm border.
	BorderFine BorderClass = iota
	// BorderRegular is the mid-weight border.
	BorderRegular
	// BorderBold is a heavy border with pronounced jitter.
	BorderBold
)

// Config is the immutable per-variant synthesis tuning record.
type Config struct {
	// StrokeWidth is the letter stroke width in canvas units.
	StrokeWidth float64
	// OpacityMin and OpacityMax bound per-letter opacity draws.
	OpacityMin float64
	OpacityMax float64
	// ScaleMin and ScaleMax bound per-letter scale draws.
	ScaleMin float64
	ScaleMax float64
	// OffsetRange caps the radial distance of a letter from canvas center,
	// in canvas units.
	OffsetRange float64
	// Decorations enables connective and ornamental shapes.
	Decorations bool
	// Border chooses the outer border weight class.
	Border BorderClass
}

// variantConfigs maps each Variant to its static tuning. Offset and scale
// bounds are chosen so the farthest letter stroke stays inside the border
// ring at the default token radius.
var variantConfigs = map[Variant]Config{
	Dense: {
		StrokeWidth: 2.6,
		OpacityMin:  0.55,
		OpacityMax:  0.95,
		ScaleMin:    0.65,
		ScaleMax:    1.2,
		OffsetRange: 22,
		Decorations: true,
		Border:      BorderBold,
	},
	Balanced: {
		StrokeWidth: 2.0,
		OpacityMin:  0.65,
		OpacityMax:  1.0,
		ScaleMin:    0.75,
		ScaleMax:    1.1,
		OffsetRange: 20,
		Decorations: true,
		Border:      BorderRegular,
	},
	Minimal: {
		StrokeWidth: 1.4,
		OpacityMin:  0.85,
		OpacityMax:  1.0,
		ScaleMin:    0.8,
		ScaleMax:    1.0,
		OffsetRange: 14,
		Decorations: false,
		Border:      BorderFine,
	},
}

// ConfigFor resolves the tuning record for v. The lookup is total:
// unknown variants resolve to the Balanced configuration so the pipeline
// never fails on user input.
func ConfigFor(v Variant) Config {
	if cfg, ok := variantConfigs[v]; ok {
		return cfg
	}

	return variantConfigs[Balanced]
}

// Metadata is the display title/description pair for one variant.
// It labels UI affordances only and never influences geometry.
type Metadata struct {
	Title       string
	Description string
}

// variantMetadata maps each Variant to its display metadata.
var variantMetadata = map[Variant]Metadata{
	Dense: {
		Title:       "Dense",
		Description: "Layered strokes with rings, cardinal marks and connective lines.",
	},
	Balanced: {
		Title:       "Balanced",
		Description: "Moderate stroke weight with light connective ornamentation.",
	},
	Minimal: {
		Title:       "Minimal",
		Description: "Sparse fine-lined strokes inside a plain border.",
	},
}

// MetadataFor resolves display metadata for v with the same total-lookup
// rule as ConfigFor.
func MetadataFor(v Variant) Metadata {
	if md, ok := variantMetadata[v]; ok {
		return md
	}

	return variantMetadata[Balanced]
}

// VariantMetadata returns a copy of the full variant→metadata table.
// Mutating the returned map does not affect the registry.
func VariantMetadata() map[Variant]Metadata {
	out := make(map[Variant]Metadata, len(variantMetadata))
	for v, md := range variantMetadata {
		out[v] = md
	}

	return out
}
