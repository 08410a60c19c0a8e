package glyph_test

import (
	"fmt"

	"github.com/anchorforge/sigil/glyph"
)

// ExampleSynthesize renders six distilled letters in the Minimal style:
// one path per letter plus the border.
func ExampleSynthesize() {
	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Minimal)

	fmt.Println(sig.Variant)
	fmt.Println(len(sig.Shapes))
	// Output:
	// minimal
	// 7
}

// ExampleConfigFor shows the total-lookup fallback for unknown variants.
func ExampleConfigFor() {
	fmt.Println(glyph.ConfigFor("no-such-style") == glyph.ConfigFor(glyph.Balanced))
	// Output: true
}

func ExampleMetadataFor() {
	md := glyph.MetadataFor(glyph.Dense)
	fmt.Println(md.Title)
	// Output: Dense
}
