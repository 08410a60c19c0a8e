package sigil_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anchorforge/sigil"
	"github.com/anchorforge/sigil/distill"
	"github.com/anchorforge/sigil/glyph"
)

// ExampleFromIntention runs the whole pipeline for one intention.
func ExampleFromIntention() {
	res := sigil.FromIntention("Close the deal", glyph.Balanced)

	fmt.Println(res.Variant)
	fmt.Println(strings.HasPrefix(res.SVG, "<svg "))
	// Output:
	// balanced
	// true
}

// ExampleGenerateAll emits one document per variant, in canonical order.
func ExampleGenerateAll() {
	letters := sigil.DistillIntention("Close the deal").Letters
	for _, r := range sigil.GenerateAll(letters) {
		fmt.Println(r.Variant)
	}
	// Output:
	// dense
	// balanced
	// minimal
}

// ExampleValidateIntention branches on the distill sentinels.
func ExampleValidateIntention() {
	fmt.Println(sigil.ValidateIntention("Close the deal"))
	fmt.Println(errors.Is(sigil.ValidateIntention("   "), distill.ErrEmptyIntention))
	// Output:
	// <nil>
	// true
}
