// api.go - the facade consumers call: distill → synthesize → serialize.
//
// Every function here is total. Empty or degenerate input renders the
// fallback primitive, unknown variants render as Balanced, and the
// serializer cannot fail, so UI code can call straight through without
// guarding each stage.

package sigil

import (
	"github.com/anchorforge/sigil/distill"
	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/svg"
)

// Result pairs a serialized sigil document with the variant that
// produced it.
type Result struct {
	// SVG is the complete self-contained document markup.
	SVG string
	// Variant echoes the style the document was requested in.
	Variant glyph.Variant
}

// Generate synthesizes letters in style v and serializes the geometry.
func Generate(letters []rune, v glyph.Variant, opts ...glyph.Option) Result {
	return Result{
		SVG:     svg.Marshal(glyph.Synthesize(letters, v, opts...)),
		Variant: v,
	}
}

// GenerateAll renders letters once per variant, in canonical order
// (Dense, Balanced, Minimal). The slice always has exactly that length
// and order, for any input.
func GenerateAll(letters []rune, opts ...glyph.Option) []Result {
	vs := glyph.Variants()
	out := make([]Result, 0, len(vs))
	for _, v := range vs {
		out = append(out, Generate(letters, v, opts...))
	}

	return out
}

// DistillIntention reduces raw intention text to its letter skeleton.
func DistillIntention(text string) distill.Result {
	return distill.Distill(text)
}

// ValidateIntention reports whether text is suitable for sigil work.
// A nil error means valid; otherwise the error matches one of the
// distill sentinels under errors.Is.
func ValidateIntention(text string) error {
	return distill.Validate(text)
}

// FromIntention is the full pipeline in one call: distill text, then
// generate in style v. Validation stays the caller's concern — text
// that fails ValidateIntention still renders, possibly via the
// fallback primitive.
func FromIntention(text string, v glyph.Variant, opts ...glyph.Option) Result {
	return Generate(distill.Distill(text).Letters, v, opts...)
}
