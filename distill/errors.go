package distill

import "errors"

// Validation sentinels. Callers branch with errors.Is; messages are part
// of the public contract and stay stable.
var (
	// ErrEmptyIntention: the text is empty or whitespace-only after trimming.
	ErrEmptyIntention = errors.New("distill: intention is empty")

	// ErrIntentionTooShort: fewer than MinIntentionLen characters post-trim.
	ErrIntentionTooShort = errors.New("distill: intention is too short")

	// ErrIntentionTooLong: more than MaxIntentionLen characters post-trim.
	ErrIntentionTooLong = errors.New("distill: intention is too long")

	// ErrNoLetters: the text contains no alphabetic characters at all.
	ErrNoLetters = errors.New("distill: intention has no letters")

	// ErrTooFewUniqueLetters: distillation leaves fewer than
	// MinUniqueLetters distinct consonants to draw.
	ErrTooFewUniqueLetters = errors.New("distill: intention distills to too few unique letters")
)
