package style_test

import (
	"fmt"

	"github.com/anchorforge/sigil/style"
)

// ExampleLookup resolves a built-in preset and applies its overrides.
func ExampleLookup() {
	p, err := style.Lookup("minimal_line")
	if err != nil {
		fmt.Println(err)
		return
	}

	tuning := p.Resolved(style.DefaultTuning)
	fmt.Println(p.Control)
	fmt.Println(tuning.DenoiseStrength)
	fmt.Println(tuning.InferenceSteps)
	// Output:
	// canny
	// 0.18
	// 35
}

// ExampleNames lists the curated catalog order.
func ExampleNames() {
	for _, name := range style.Names() {
		fmt.Println(name)
	}
	// Output:
	// watercolor
	// ink_brush
	// sacred_geometry
	// gold_leaf
	// cosmic
	// minimal_line
}
