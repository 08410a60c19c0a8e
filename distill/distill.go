package distill

import "unicode"

// Result is the distillation of one intention phrase.
// All letter slices hold uppercase ASCII letters.
type Result struct {
	// Original is the untouched input string.
	Original string

	// Letters is the ordered sequence of unique consonants, in
	// first-occurrence order. This is the input to glyph synthesis.
	Letters []rune

	// RemovedVowels lists every vowel encountered, in encounter order.
	RemovedVowels []rune

	// RemovedDuplicates lists every consonant seen again after its first
	// occurrence, in encounter order.
	RemovedDuplicates []rune
}

// Distill reduces text to its symbolic letter skeleton.
//
// Every alphabetic character of the input (whitespace ignored) is
// accounted for in exactly one of Letters, RemovedVowels or
// RemovedDuplicates; non-alphabetic characters are discarded silently.
// Distill never fails — degenerate input yields an empty Letters slice.
//
// Complexity: O(len(text)) time, O(unique letters) space.
func Distill(text string) Result {
	res := Result{Original: text}
	seen := make(map[rune]struct{}, 16)

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if !isASCIILetter(r) {
			// Digits, punctuation, symbols: dropped without a trace.
			continue
		}
		u := upper(r)
		if isVowel(u) {
			res.RemovedVowels = append(res.RemovedVowels, u)
			continue
		}
		if _, dup := seen[u]; dup {
			res.RemovedDuplicates = append(res.RemovedDuplicates, u)
			continue
		}
		seen[u] = struct{}{}
		res.Letters = append(res.Letters, u)
	}
	return res
}

// isASCIILetter reports whether r is in A–Z or a–z.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// upper maps an ASCII letter to its uppercase form.
func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// isVowel reports whether the uppercase letter u is one of A, E, I, O, U.
func isVowel(u rune) bool {
	switch u {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
