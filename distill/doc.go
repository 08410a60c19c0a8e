// Package distill reduces an intention phrase to its symbolic letter
// skeleton — the first stage of the sigil pipeline.
//
// 🚀 What is sigil/distill?
//
//	A pure, allocation-light text reducer:
//		• Distill(text)  — strip whitespace, drop vowels and duplicates,
//		  keep unique uppercase consonants in first-occurrence order
//		• Validate(text) — the UI-facing gate: length bounds, letter
//		  presence, minimum distinct-letter count
//
// ⚙️ Rules, in order:
//
//  1. Whitespace is removed.
//  2. Vowels (a, e, i, o, u — case-insensitive) are recorded and removed.
//  3. Digits, punctuation and symbols are discarded silently. Only ASCII
//     letters participate; the pipeline's seeding arithmetic is defined on
//     the A–Z code points.
//  4. Remaining consonants are deduplicated; repeats are recorded in
//     RemovedDuplicates, first occurrences land in Letters.
//
// Distill never fails: degenerate input (all vowels, all punctuation, the
// empty string) yields an empty Letters slice and the synthesizer renders
// a fallback glyph. Validate is the only source of user-facing errors and
// returns sentinel errors branchable with errors.Is.
//
// Example: "Close the deal" → Letters C,L,S,T,H,D; vowels O,E,E,E,A
// removed; the second L recorded as a duplicate.
package distill
