// Package match scores how faithfully a rendition preserves sigil
// structure.
//
// 🚀 What it does
//
// Enhancement may restyle a sigil but must not redraw it. This package
// compares the original stroke mask against a rendition and produces a
// verdict:
//
//	score := match.Compute(originalMask, rendition, match.DefaultConfig())
//	score.Combined  // 0.7*IoU + 0.3*edge overlap
//	score.Preserved // combined >= threshold
//	score.Class     // Structure Preserved / More Artistic / Style Drift
//
// ✨ Key metrics
//
//   - IoU of the binary masks; two empty masks count as a perfect match.
//   - Edge overlap: boundary maps compared in both directions with a
//     few pixels of positional tolerance, combined as a harmonic mean.
//   - Connected-component counts, for spotting strokes that merged or
//     vanished.
//
// ⚙️ Extraction
//
// Renditions arrive textured and colored, so structure is isolated
// first: adaptive thresholding by default, with Otsu, edge-based, and
// plain-threshold alternatives for unusual palettes.
package match
