package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorforge/sigil/glyph"
)

// decorationCount returns the expected decoration-layer size for l letters.
func decorationCount(v glyph.Variant, l int) int {
	connectors := l - 1
	if l == 0 {
		connectors = 0
	}
	switch v {
	case glyph.Dense:
		return connectors + 2 + 4 // connectors + rings + cardinal marks
	case glyph.Balanced:
		return connectors + 1 // connectors + one ring
	default:
		return 0
	}
}

// checkWithin asserts every coordinate of s lies inside [0,size]².
func checkWithin(t *testing.T, s glyph.Shape, size float64) {
	t.Helper()
	within := func(p glyph.Point) {
		assert.GreaterOrEqual(t, p.X, 0.0, "x below canvas")
		assert.LessOrEqual(t, p.X, size, "x beyond canvas")
		assert.GreaterOrEqual(t, p.Y, 0.0, "y below canvas")
		assert.LessOrEqual(t, p.Y, size, "y beyond canvas")
	}
	switch v := s.(type) {
	case glyph.Line:
		within(v.From)
		within(v.To)
	case glyph.Circle:
		within(glyph.Point{X: v.Center.X - v.Radius, Y: v.Center.Y - v.Radius})
		within(glyph.Point{X: v.Center.X + v.Radius, Y: v.Center.Y + v.Radius})
	case glyph.Path:
		for _, c := range v.Commands {
			if c.Op == glyph.OpClose {
				continue
			}
			within(c.To)
			if c.Op == glyph.OpQuad {
				within(c.Ctrl)
			}
		}
	default:
		t.Fatalf("unexpected shape type %T", s)
	}
}

// TestSynthesizeDeterministic locks the core guarantee: equal inputs give
// deeply equal geometry, for every variant.
func TestSynthesizeDeterministic(t *testing.T) {
	letters := []rune("CLSTHD")
	for _, v := range glyph.Variants() {
		a := glyph.Synthesize(letters, v)
		b := glyph.Synthesize(letters, v)
		require.Equal(t, a, b, "variant %s must be reproducible", v)
	}
}

// TestSynthesizeShapeCount pins the exact shape counts per variant:
// decorations, one path per letter, one border.
func TestSynthesizeShapeCount(t *testing.T) {
	for _, tc := range []struct {
		letters string
	}{
		{letters: "CLSTHD"},
		{letters: "B"},
		{letters: "XYZQW"},
	} {
		l := len(tc.letters)
		for _, v := range glyph.Variants() {
			sig := glyph.Synthesize([]rune(tc.letters), v)
			want := decorationCount(v, l) + l + 1
			assert.Len(t, sig.Shapes, want, "letters=%q variant=%s", tc.letters, v)
		}
	}
}

// TestSynthesizeDrawOrder verifies the frozen layering for Dense:
// connectors, rings, cardinal marks, letter paths, border.
func TestSynthesizeDrawOrder(t *testing.T) {
	letters := []rune("CLSTHD")
	sig := glyph.Synthesize(letters, glyph.Dense)
	require.Len(t, sig.Shapes, 18)

	for i := 0; i < 5; i++ {
		assert.IsType(t, glyph.Line{}, sig.Shapes[i], "connector %d", i)
	}
	for i := 5; i < 7; i++ {
		assert.IsType(t, glyph.Circle{}, sig.Shapes[i], "ring %d", i)
	}
	for i := 7; i < 11; i++ {
		assert.IsType(t, glyph.Line{}, sig.Shapes[i], "cardinal mark %d", i)
	}
	for i := 11; i < 17; i++ {
		assert.IsType(t, glyph.Path{}, sig.Shapes[i], "letter path %d", i)
	}

	border, ok := sig.Shapes[17].(glyph.Path)
	require.True(t, ok, "last shape must be the border path")
	// 1 move + 36 quadratics + 1 close.
	require.Len(t, border.Commands, 38)
	assert.Equal(t, glyph.OpMove, border.Commands[0].Op)
	for k := 1; k < 37; k++ {
		assert.Equal(t, glyph.OpQuad, border.Commands[k].Op, "segment %d", k)
	}
	assert.Equal(t, glyph.OpClose, border.Commands[37].Op)
}

// TestSynthesizeEmptyLetters verifies the degenerate path: exactly one
// centered primitive plus the border, never an empty shape list.
func TestSynthesizeEmptyLetters(t *testing.T) {
	for _, v := range glyph.Variants() {
		sig := glyph.Synthesize(nil, v)
		require.Len(t, sig.Shapes, 2, "variant %s", v)

		c, ok := sig.Shapes[0].(glyph.Circle)
		require.True(t, ok, "first shape must be the fallback circle")
		cfg := glyph.ConfigFor(v)
		assert.Equal(t, glyph.Point{X: 50, Y: 50}, c.Center)
		assert.Equal(t, cfg.OpacityMax, c.Opacity)
		assert.Equal(t, cfg.StrokeWidth, c.Width)

		assert.IsType(t, glyph.Path{}, sig.Shapes[1], "second shape must be the border")
	}
}

// TestSynthesizeUnknownVariantFallsBack checks the total lookup: geometry
// matches Balanced while the requested variant is echoed verbatim.
func TestSynthesizeUnknownVariantFallsBack(t *testing.T) {
	letters := []rune("CLSTHD")
	odd := glyph.Synthesize(letters, glyph.Variant("cosmic"))
	bal := glyph.Synthesize(letters, glyph.Balanced)

	assert.Equal(t, bal.Shapes, odd.Shapes, "unknown variant must render as Balanced")
	assert.Equal(t, glyph.Variant("cosmic"), odd.Variant, "requested variant echoed verbatim")
}

// TestSynthesizeVariantsDiffer guards against variants collapsing into one
// look: pairwise distinct geometry for the same letters.
func TestSynthesizeVariantsDiffer(t *testing.T) {
	letters := []rune("CLSTHD")
	vs := glyph.Variants()
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			a := glyph.Synthesize(letters, vs[i])
			b := glyph.Synthesize(letters, vs[j])
			assert.NotEqual(t, a.Shapes, b.Shapes, "%s vs %s", vs[i], vs[j])
		}
	}
}

// TestSynthesizeLetterStyleBounds verifies per-letter paths carry the
// variant stroke width and an opacity inside the configured range.
func TestSynthesizeLetterStyleBounds(t *testing.T) {
	letters := []rune("CLSTHD")
	for _, v := range glyph.Variants() {
		cfg := glyph.ConfigFor(v)
		sig := glyph.Synthesize(letters, v)
		start := decorationCount(v, len(letters))
		for i := start; i < start+len(letters); i++ {
			p, ok := sig.Shapes[i].(glyph.Path)
			require.True(t, ok, "variant %s shape %d", v, i)
			assert.Equal(t, cfg.StrokeWidth, p.Width, "variant %s letter %d", v, i-start)
			assert.GreaterOrEqual(t, p.Opacity, cfg.OpacityMin, "variant %s letter %d", v, i-start)
			assert.LessOrEqual(t, p.Opacity, cfg.OpacityMax, "variant %s letter %d", v, i-start)
		}
	}
}

// TestSynthesizeBorderIndependentOfLetters: the border is a function of
// variant class and size only.
func TestSynthesizeBorderIndependentOfLetters(t *testing.T) {
	for _, v := range glyph.Variants() {
		a := glyph.Synthesize([]rune("CLSTHD"), v)
		b := glyph.Synthesize([]rune("BRKNW"), v)
		c := glyph.Synthesize(nil, v)
		borderA := a.Shapes[len(a.Shapes)-1]
		borderB := b.Shapes[len(b.Shapes)-1]
		borderC := c.Shapes[len(c.Shapes)-1]
		assert.Equal(t, borderA, borderB, "variant %s", v)
		assert.Equal(t, borderA, borderC, "variant %s (empty input)", v)
	}
}

// TestSynthesizeCanvasContainment: every coordinate of every shape stays
// on the canvas at the default token radius.
func TestSynthesizeCanvasContainment(t *testing.T) {
	letters := []rune("CLSTHDBRKNWXYZQ")
	for _, v := range glyph.Variants() {
		sig := glyph.Synthesize(letters, v)
		for _, s := range sig.Shapes {
			checkWithin(t, s, sig.Size)
		}
	}

	big := glyph.Synthesize(letters, glyph.Dense, glyph.WithSize(512))
	require.Equal(t, 512.0, big.Size)
	for _, s := range big.Shapes {
		checkWithin(t, s, big.Size)
	}
}

// TestSynthesizeCopiesLetters: the sigil owns its letter slice.
func TestSynthesizeCopiesLetters(t *testing.T) {
	in := []rune("CLSTHD")
	sig := glyph.Synthesize(in, glyph.Minimal)
	in[0] = 'X'
	assert.Equal(t, []rune("CLSTHD"), sig.Letters)
}
