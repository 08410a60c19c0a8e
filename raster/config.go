// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// config.go - resolved preprocessing configuration.

package raster

// rasterConfig is the resolved option set.
type rasterConfig struct {
	outputSize       int
	strokeMultiplier float64
	padding          float64
	maskDilation     int
	threshold        uint8
	edgeSigma        float64
}

// newRasterConfig applies opts over the defaults; later options win.
func newRasterConfig(opts ...Option) rasterConfig {
	cfg := rasterConfig{
		outputSize:       DefaultOutputSize,
		strokeMultiplier: DefaultStrokeMultiplier,
		padding:          DefaultPadding,
		maskDilation:     DefaultMaskDilation,
		threshold:        DefaultBinarizeThreshold,
		edgeSigma:        DefaultEdgeSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
