// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// options.go - functional options for the preprocessing pipeline.
//
// Contract:
//   - Option constructors validate eagerly and panic on nonsense values;
//     the pipeline functions themselves never panic.
//   - Later options win. Zero options mean the documented defaults.

package raster

import "fmt"

// Option adjusts the preprocessing configuration.
type Option func(*rasterConfig)

// WithOutputSize sets the square control-image resolution in pixels.
// Panics if px is not positive.
func WithOutputSize(px int) Option {
	if px <= 0 {
		panic(fmt.Sprintf("raster.WithOutputSize: px must be positive, got %d", px))
	}

	return func(c *rasterConfig) { c.outputSize = px }
}

// WithStrokeMultiplier sets the stroke-thickening gain.
// Panics if m is not positive.
func WithStrokeMultiplier(m float64) Option {
	if m <= 0 {
		panic(fmt.Sprintf("raster.WithStrokeMultiplier: m must be positive, got %v", m))
	}

	return func(c *rasterConfig) { c.strokeMultiplier = m }
}

// WithPadding sets the centered margin as a fraction of the image size.
// Panics unless 0 <= p < 0.5.
func WithPadding(p float64) Option {
	if p < 0 || p >= 0.5 {
		panic(fmt.Sprintf("raster.WithPadding: p must be in [0, 0.5), got %v", p))
	}

	return func(c *rasterConfig) { c.padding = p }
}

// WithMaskDilation sets the compositing protection buffer in pixels.
// Panics if px is negative.
func WithMaskDilation(px int) Option {
	if px < 0 {
		panic(fmt.Sprintf("raster.WithMaskDilation: px must not be negative, got %d", px))
	}

	return func(c *rasterConfig) { c.maskDilation = px }
}

// WithBinarizeThreshold sets the stroke/background cut level.
func WithBinarizeThreshold(t uint8) Option {
	return func(c *rasterConfig) { c.threshold = t }
}

// WithEdgeSigma sets the unsharp-mask blur radius; zero disables edge
// enhancement. Panics if sigma is negative.
func WithEdgeSigma(sigma float64) Option {
	if sigma < 0 {
		panic(fmt.Sprintf("raster.WithEdgeSigma: sigma must not be negative, got %v", sigma))
	}

	return func(c *rasterConfig) { c.edgeSigma = sigma }
}
