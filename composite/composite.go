// SPDX-License-Identifier: MIT
// Package: sigil/composite
//
// composite.go - assembling the guaranteed-structure image.

package composite

import (
	"image"

	"github.com/anchorforge/sigil/raster"
)

// Result bundles the composited image with its component layers.
type Result struct {
	// Composite is the final image: styled background, original strokes.
	Composite *image.RGBA

	// Background is the rendition with its own sigil inpainted away.
	Background *image.RGBA

	// SigilLayer is the colored (and optionally textured) stroke plate.
	SigilLayer *image.RGBA

	// BlendMask is the unfeathered stroke mask the blend was driven by.
	BlendMask *image.Gray

	// StructureGuaranteed is always true on this path; it mirrors the
	// verdict field renditions carry, for uniform handling upstream.
	StructureGuaranteed bool
}

// Composite draws the original sigil over the rendition's background.
//
// The rendition is resampled to the control size, its own sigil
// interpretation inpainted out, and the stroke layer - colored from
// the rendition's palette, optionally textured - blended back on top
// through a feathered mask.
func Composite(pre raster.Result, rendition image.Image, opts ...Option) Result {
	cfg := newCompositeConfig(opts...)

	size := pre.Control.Bounds()
	plate := resizeRGBA(toRGBA(rendition), size.Dx(), size.Dy())

	background := Inpaint(plate, pre.DilatedMask)

	strokeColor := DominantColor(plate, pre.StrokeMask)
	if cfg.color != nil {
		strokeColor = *cfg.color
	}

	layer := colorize(pre.Control, strokeColor)
	if cfg.blendTexture {
		layer = BlendSoftLight(layer, plate, cfg.textureStrength)
	}

	alpha := scaleAlpha(Feather(pre.StrokeMask, cfg.feather), cfg.opacity)

	return Result{
		Composite:           blendWithMask(layer, background, alpha),
		Background:          background,
		SigilLayer:          layer,
		BlendMask:           pre.StrokeMask,
		StructureGuaranteed: true,
	}
}

// Hybrid trusts the rendition when its combined structure score clears
// the threshold, and falls back to compositing otherwise. The boolean
// reports whether compositing happened.
func Hybrid(pre raster.Result, rendition image.Image, score, threshold float64, opts ...Option) (*image.RGBA, bool) {
	if score >= threshold {
		return toRGBA(rendition), false
	}

	return Composite(pre, rendition, opts...).Composite, true
}
