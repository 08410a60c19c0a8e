// Package composite guarantees structure by drawing the original sigil
// over a rendition's background.
//
// 🚀 What it does
//
// When a rendition drifts too far, the pipeline falls back to
// compositing: the rendition keeps only its texture and palette, the
// sigil's own strokes go back on top.
//
//	res := composite.Composite(pre, rendition)
//	res.Composite           // styled background, original geometry
//	res.StructureGuaranteed // always true on this path
//
// ✨ How the layers are built
//
//   - The stroke area is inpainted out of the rendition, removing the
//     model's own sigil interpretation from the background.
//   - Stroke color is sampled from the rendition (quantized dominant
//     vote), so the composite matches the style's palette.
//   - The stroke layer optionally picks up rendition texture via a
//     soft-light blend, then lands on the background through a
//     feathered mask.
//
// Hybrid picks between the rendition and the composite based on a
// structure score, which is how the enhancement pipeline uses it.
package composite
