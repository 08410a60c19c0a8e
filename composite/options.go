// SPDX-License-Identifier: MIT
// Package: sigil/composite
//
// options.go - functional options for compositing.
//
// Contract:
//   - Option constructors validate eagerly and panic on nonsense values;
//     Composite and Hybrid themselves never panic.
//   - Later options win.

package composite

import (
	"fmt"
	"image/color"
)

// Defaults for the compositing pass.
const (
	// DefaultTextureStrength is how much rendition texture soaks into
	// the stroke layer.
	DefaultTextureStrength = 0.2

	// DefaultEdgeFeather is the mask blur radius in pixels; it melts
	// stroke edges into the background.
	DefaultEdgeFeather = 2.0

	// DefaultScoreThreshold is the combined structure score at which
	// Hybrid trusts the rendition as-is.
	DefaultScoreThreshold = 0.85
)

// quantStep buckets colors for the dominant-color vote.
const quantStep = 32

// Option adjusts the compositing configuration.
type Option func(*compositeConfig)

// WithTextureStrength sets how much rendition texture the stroke layer
// absorbs. Panics unless 0 <= s <= 1.
func WithTextureStrength(s float64) Option {
	if s < 0 || s > 1 {
		panic(fmt.Sprintf("composite.WithTextureStrength: s must be in [0, 1], got %v", s))
	}

	return func(c *compositeConfig) {
		c.blendTexture = true
		c.textureStrength = s
	}
}

// WithoutTexture keeps the stroke layer flat color.
func WithoutTexture() Option {
	return func(c *compositeConfig) { c.blendTexture = false }
}

// WithEdgeFeather sets the mask blur radius in pixels; zero keeps hard
// edges. Panics if px is negative.
func WithEdgeFeather(px float64) Option {
	if px < 0 {
		panic(fmt.Sprintf("composite.WithEdgeFeather: px must not be negative, got %v", px))
	}

	return func(c *compositeConfig) { c.feather = px }
}

// WithStrokeColor pins the stroke color instead of sampling it from
// the rendition.
func WithStrokeColor(col color.RGBA) Option {
	return func(c *compositeConfig) {
		cc := col
		c.color = &cc
	}
}

// WithOpacity scales the stroke layer's alpha. Panics unless 0 < o <= 1.
func WithOpacity(o float64) Option {
	if o <= 0 || o > 1 {
		panic(fmt.Sprintf("composite.WithOpacity: o must be in (0, 1], got %v", o))
	}

	return func(c *compositeConfig) { c.opacity = o }
}

// compositeConfig is the resolved option set.
type compositeConfig struct {
	blendTexture    bool
	textureStrength float64
	feather         float64
	opacity         float64
	color           *color.RGBA
}

// newCompositeConfig applies opts over the defaults; later options win.
func newCompositeConfig(opts ...Option) compositeConfig {
	cfg := compositeConfig{
		blendTexture:    true,
		textureStrength: DefaultTextureStrength,
		feather:         DefaultEdgeFeather,
		opacity:         1.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
