// SPDX-License-Identifier: MIT
// Package: sigil/match
//
// config.go - scoring weights, thresholds and verdict classes.

package match

// Default scoring parameters. Structure dominates the combined score;
// edge agreement refines it.
const (
	DefaultIoUWeight     = 0.7
	DefaultEdgeWeight    = 0.3
	DefaultThreshold     = 0.85
	DefaultArtisticFloor = 0.70

	// DefaultBinarizeLevel separates stroke from background on the
	// original mask.
	DefaultBinarizeLevel uint8 = 128

	// DefaultEdgeLevel is the minimum local-gradient response counted
	// as an edge pixel.
	DefaultEdgeLevel uint8 = 50

	// DefaultEdgeTolerance is the positional slack, in pixels, allowed
	// when matching edges between the two images.
	DefaultEdgeTolerance = 3
)

// maskLevel is the cut used when counting mask pixels.
const maskLevel uint8 = 127

// Adaptive extraction parameters: local mean over a Gaussian window
// with a small bias toward background.
const (
	adaptiveSigma = 3.5
	adaptiveBias  = 5
)

// Class is the human-readable structure verdict.
type Class string

const (
	// ClassPreserved marks renditions safe to ship as-is.
	ClassPreserved Class = "Structure Preserved"
	// ClassArtistic marks renditions that drifted but stayed readable.
	ClassArtistic Class = "More Artistic"
	// ClassDrift marks renditions that redrew the sigil.
	ClassDrift Class = "Style Drift"
)

// ExtractionMethod selects how structure is isolated from a rendition.
type ExtractionMethod int

const (
	// MethodAdaptive thresholds against a local Gaussian mean; robust
	// on varied backgrounds. The zero value, and the default.
	MethodAdaptive ExtractionMethod = iota
	// MethodOtsu picks a global threshold maximizing between-class
	// variance; good for bimodal renditions.
	MethodOtsu
	// MethodEdges keeps dilated boundary responses only.
	MethodEdges
	// MethodThreshold is a plain global cut, for inputs that are
	// already masks.
	MethodThreshold
)

// Config tunes scoring. The zero value is replaced by DefaultConfig.
type Config struct {
	IoUWeight     float64
	EdgeWeight    float64
	Threshold     float64 // combined score at or above reads as preserved
	ArtisticFloor float64 // below Threshold but at or above reads as artistic
	BinarizeLevel uint8
	EdgeLevel     uint8
	EdgeTolerance int
	Extraction    ExtractionMethod
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		IoUWeight:     DefaultIoUWeight,
		EdgeWeight:    DefaultEdgeWeight,
		Threshold:     DefaultThreshold,
		ArtisticFloor: DefaultArtisticFloor,
		BinarizeLevel: DefaultBinarizeLevel,
		EdgeLevel:     DefaultEdgeLevel,
		EdgeTolerance: DefaultEdgeTolerance,
		Extraction:    MethodAdaptive,
	}
}

// classify maps a combined score to its verdict.
func classify(combined float64, cfg Config) Class {
	switch {
	case combined >= cfg.Threshold:
		return ClassPreserved
	case combined >= cfg.ArtisticFloor:
		return ClassArtistic
	default:
		return ClassDrift
	}
}
