// Package svg serializes synthesized sigil geometry into self-contained
// SVG documents and offers the inverse tooling: parsing, inspection and
// normalization of sigil markup.
//
// 🚀 What it produces
//
//	One <svg> root with xmlns, a square viewBox, fill="none" and
//	stroke="currentColor", followed by the sigil's shapes in draw order.
//	Output is byte-stable: numbers go through a fixed two-decimal
//	formatter with trailing-zero trimming, so equal geometry always
//	serializes to the identical string.
//
// ✨ Key features:
//   - Marshal never fails; an empty shape list still yields a well-formed
//     document
//   - no hard-coded palette: color flows from the CSS currentColor of the
//     embedding context
//   - Normalize rewrites arbitrary sigil markup for high-contrast
//     rasterization (viewBox injection, forced stroke color, fill removal)
//   - Parse/ParseViewBox validate documents and extract canvas metadata,
//     with sentinel errors for branching
//
// ⚙️ Usage:
//
//	doc := svg.Marshal(glyph.Synthesize(letters, glyph.Balanced))
//	info, err := svg.Parse(doc)
//
// See example_test.go for complete round trips.
package svg
