// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// constants.go - tuning defaults for control-image preprocessing.
//
// Purpose:
//   - Single home for every magic number in the rasterization pipeline.
//     The defaults favor structure survival: strokes are thickened until
//     they cannot dissolve during diffusion, and content keeps a black
//     margin so nothing touches the frame.

package raster

const (
	// DefaultOutputSize is the square control-image resolution in pixels.
	DefaultOutputSize = 1024

	// DefaultStrokeMultiplier scales the thickening kernel. Values in
	// 1.5-2.5 keep thin strokes alive without welding neighbors.
	DefaultStrokeMultiplier = 2.0

	// DefaultPadding is the centered margin as a fraction of the image
	// size. 10-18% protects strokes from frame-adjacent artifacts.
	DefaultPadding = 0.12

	// DefaultMaskDilation is the protection buffer, in pixels, grown
	// around the stroke mask for compositing.
	DefaultMaskDilation = 6

	// DefaultBinarizeThreshold separates stroke from background when
	// deriving binary masks.
	DefaultBinarizeThreshold uint8 = 128

	// DefaultEdgeSigma is the unsharp-mask blur radius. Zero disables
	// edge enhancement.
	DefaultEdgeSigma = 1.2
)

// Thickening kernel bounds in pixels. The kernel is int(3*multiplier)
// clamped to this range and forced odd.
const (
	minStrokeKernel = 4
	maxStrokeKernel = 12
)

// contentThreshold is the gray level above which a pixel counts as
// content when locating the sigil's bounding box.
const contentThreshold uint8 = 10

// unsharpAmount is the edge-enhancement gain: out = in + (in-blur)*amount.
const unsharpAmount = 1.5

// Flattening resolution for curved geometry.
const (
	circleSegments = 64
	quadSteps      = 16
)

// kappa is the cubic Bezier circle constant 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936
