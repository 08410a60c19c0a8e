// Package rng - deterministic value derivation for the sigil pipeline.
//
// This file centralizes every source of pseudo-randomness used downstream.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms and runs.
//   - Purity: no hidden state, no time-based sources, no hash-order leaks.
//   - Safety: no panics, no errors; every function is total.
//   - Performance: integer mixing only; no allocations anywhere.
//
// Concurrency:
//   - All functions are pure and stateless; unrestricted concurrent use.
package rng

// Canonical SplitMix64 constants; see Vigna 2014 for the rationale.
// They provide strong bit diffusion: small input changes produce large,
// well-distributed output changes.
const (
	splitMixGamma uint64 = 0x9e3779b97f4a7c15
	splitMixMulA  uint64 = 0xbf58476d1ce4e5b9
	splitMixMulB  uint64 = 0x94d049bb133111eb
)

// unitScale converts the top 53 bits of a mixed word into [0,1).
const unitScale = 1.0 / (1 << 53)

// Per-token seeding convention: seed = index*TokenIndexWeight + code*TokenLetterWeight.
// The exact arithmetic is a stable design constant, not a tunable.
const (
	TokenIndexWeight  int64 = 13
	TokenLetterWeight int64 = 7
)

// mix applies the SplitMix64 finalizer to x.
//
// Complexity: O(1).
func mix(x uint64) uint64 {
	x += splitMixGamma
	x = (x ^ (x >> 30)) * splitMixMulA
	x = (x ^ (x >> 27)) * splitMixMulB
	x ^= x >> 31
	return x
}

// Unit returns a deterministic pseudo-random value in [0, 1) for seed.
// Same seed ⇒ same output, on any architecture: the mapping is pure
// integer arithmetic followed by a single exact float conversion.
//
// Complexity: O(1).
func Unit(seed int64) float64 {
	return float64(mix(uint64(seed))>>11) * unitScale
}

// Derive mixes a base seed and a stream identifier into a new seed.
// Streams derived from the same base are decorrelated from one another
// while each remains individually deterministic; the geometry synthesizer
// uses one stream per visual facet (rotation, scale, flip, offset, ...).
//
// Complexity: O(1).
func Derive(base, stream int64) int64 {
	var x uint64
	x = uint64(base) ^ (uint64(stream) + splitMixGamma)
	return int64(mix(x))
}

// TokenSeed computes the base seed for the letter at position index of a
// distilled sequence: index*13 + charCode*7. Facet values are then drawn
// via Unit(Derive(TokenSeed(i, r), facet)).
//
// Complexity: O(1).
func TokenSeed(index int, letter rune) int64 {
	return int64(index)*TokenIndexWeight + int64(letter)*TokenLetterWeight
}

// Lerp maps u ∈ [0,1) linearly into [lo, hi]. Callers pass draws from Unit
// to obtain values inside variant-configured ranges.
//
// Complexity: O(1).
func Lerp(lo, hi, u float64) float64 {
	return lo + (hi-lo)*u
}
