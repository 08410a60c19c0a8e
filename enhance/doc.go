// Package enhance orchestrates styled sigil renditions: seeding,
// concurrent generation, structure scoring, retries and compositing
// rescues. The diffusion backend itself is an injected Renderer.
//
// 🚀 Flow
//
//	enh, err := enhance.New(backend)
//	res, err := enh.Enhance(ctx, sig, preset)
//
//   - build the control image and masks (raster)
//   - render one variation per seed, concurrently
//   - score every rendition against the stroke mask (match)
//   - retry the failing seeds once with stricter tuning
//   - optionally draw the original strokes back over drifted
//     renditions (composite)
//
// ⚙️ Seeds
//
// Variation i renders with baseSeed + i·456; the retry round runs on a
// fixed ladder 5000 + i·789. A backend that respects seeds makes whole
// runs reproducible.
package enhance
