package distill

import (
	"strings"
	"unicode/utf8"
)

// Validation bounds. Enforced by Validate only; Distill itself accepts
// anything.
const (
	// MinIntentionLen is the minimum post-trim character count.
	MinIntentionLen = 3

	// MaxIntentionLen is the maximum post-trim character count.
	MaxIntentionLen = 100

	// MinUniqueLetters is the minimum number of distinct consonants the
	// distillation must yield for a drawable sigil.
	MinUniqueLetters = 2
)

// Validate is the UI-facing gate for intention text. It returns nil when
// the text is acceptable, or one of the package sentinels describing the
// first failed check. Checks run in a fixed order: emptiness, length
// bounds, letter presence, distinct-letter count.
//
// Validate is pure and idempotent: the same input always yields the same
// verdict. It never panics and performs no I/O.
func Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyIntention
	}

	n := utf8.RuneCountInString(trimmed)
	if n < MinIntentionLen {
		return ErrIntentionTooShort
	}
	if n > MaxIntentionLen {
		return ErrIntentionTooLong
	}

	d := Distill(trimmed)
	if len(d.Letters)+len(d.RemovedVowels)+len(d.RemovedDuplicates) == 0 {
		return ErrNoLetters
	}
	if len(d.Letters) < MinUniqueLetters {
		return ErrTooFewUniqueLetters
	}
	return nil
}
