// Package rng is the deterministic randomness kernel of the sigil pipeline.
//
// 🚀 What is sigil/rng?
//
//	A tiny, allocation-free source of reproducible pseudo-random values:
//		• Unit(seed)        — one value in [0,1), bit-identical on every platform
//		• Derive(base, k)   — decorrelated facet seeds from a single token seed
//		• TokenSeed(i, r)   — the canonical per-letter seeding convention
//		• Lerp(lo, hi, u)   — map unit draws into configured parameter ranges
//
// ✨ Why not math/rand?
//
//   - The pipeline must regenerate byte-identical glyphs for the same
//     intention, forever, on any device. math/rand's global source and
//     Source64 stream semantics invite accidental entropy; a pure integer
//     finalizer cannot drift.
//   - No state, no locks: every call is a pure function of its arguments,
//     so concurrent generation needs no coordination.
//
// The mixing function is the SplitMix64 finalizer; adjacent seeds produce
// decorrelated outputs, which is exactly what the per-facet seeding scheme
// (rotation, scale, flips, offset, opacity) relies on.
package rng
