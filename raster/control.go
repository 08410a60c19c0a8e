// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// control.go - the end-to-end control-image pipeline.
//
// Purpose:
//   - One call from sigil geometry to everything a structure-preserving
//     rendition needs: render, thicken, center, enhance, mask.

package raster

import (
	"image"

	"github.com/anchorforge/sigil/glyph"
)

// Result bundles the control image with the masks compositing uses.
type Result struct {
	// Control is the edge-enhanced image fed to structural conditioning:
	// white strokes on black, centered behind a padded margin.
	Control *image.Gray

	// StrokeMask marks stroke pixels (binary).
	StrokeMask *image.Gray

	// DilatedMask is StrokeMask grown by the protection buffer; pixels
	// inside it must survive compositing untouched.
	DilatedMask *image.Gray

	// Bounds is the content box inside Control.
	Bounds image.Rectangle
}

// ControlImage runs the full preprocessing pipeline on sig.
func ControlImage(sig glyph.Sigil, opts ...Option) Result {
	cfg := newRasterConfig(opts...)

	img := renderAt(sig, cfg.outputSize)
	thick := Thicken(img, cfg.strokeMultiplier)
	centered, bounds := CenterContent(thick, cfg.padding)
	control := EnhanceEdges(centered, cfg.edgeSigma)
	mask := Binarize(control, cfg.threshold)
	dilated := Dilate(mask, cfg.maskDilation)

	return Result{
		Control:     control,
		StrokeMask:  mask,
		DilatedMask: dilated,
		Bounds:      bounds,
	}
}
