package composite_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorforge/sigil/composite"
	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/raster"
)

func uniformRGBA(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}

	return img
}

func grayMask(size int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, size, size))
}

func TestDominantColorVote(t *testing.T) {
	t.Parallel()

	img := uniformRGBA(4, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	// A minority color that must lose the vote.
	for _, p := range []image.Point{{0, 0}, {1, 0}, {2, 0}} {
		i := img.PixOffset(p.X, p.Y)
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2] = 10, 20, 30
	}
	mask := grayMask(4)
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}

	got := composite.DominantColor(img, mask)
	assert.Equal(t, color.RGBA{R: 96, G: 128, B: 192, A: 255}, got)
}

func TestDominantColorEmptyMask(t *testing.T) {
	t.Parallel()

	img := uniformRGBA(4, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	got := composite.DominantColor(img, grayMask(4))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, got)
}

func TestFeatherSoftensEdges(t *testing.T) {
	t.Parallel()

	mask := grayMask(32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			dx, dy := x-16, y-16
			if dx*dx+dy*dy <= 64 {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	soft := composite.Feather(mask, 2)
	assert.Equal(t, uint8(255), soft.GrayAt(16, 16).Y, "core stays solid")
	rim := soft.GrayAt(16, 7).Y // one pixel outside the disk
	assert.Greater(t, rim, uint8(0))
	assert.Less(t, rim, uint8(255))
	assert.Zero(t, soft.GrayAt(2, 2).Y, "far background untouched")

	hard := composite.Feather(mask, 0)
	assert.Equal(t, mask.Pix, hard.Pix)
}

func TestBlendSoftLight(t *testing.T) {
	t.Parallel()

	base := uniformRGBA(8, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	dark := composite.BlendSoftLight(base, uniformRGBA(8, color.RGBA{A: 255}), 0.2)
	assert.InDelta(t, 115, float64(dark.Pix[0]), 2, "dark texture darkens")

	bright := composite.BlendSoftLight(base, uniformRGBA(8, color.RGBA{R: 255, G: 255, B: 255, A: 255}), 0.2)
	assert.InDelta(t, 141, float64(bright.Pix[0]), 2, "bright texture lightens")

	still := composite.BlendSoftLight(base, uniformRGBA(8, color.RGBA{A: 255}), 0)
	assert.Equal(t, base.Pix, still.Pix, "zero strength is identity")
}

func TestInpaintFillsHole(t *testing.T) {
	t.Parallel()

	clean := uniformRGBA(32, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	dirty := uniformRGBA(32, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	mask := grayMask(32)
	for y := 12; y < 20; y++ {
		for x := 12; x < 20; x++ {
			i := dirty.PixOffset(x, y)
			dirty.Pix[i+0], dirty.Pix[i+1], dirty.Pix[i+2] = 255, 0, 0
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	got := composite.Inpaint(dirty, mask)
	assert.Equal(t, clean.Pix, got.Pix, "hole refills from the uniform surround")

	// The input itself is never mutated.
	assert.Equal(t, uint8(255), dirty.Pix[dirty.PixOffset(15, 15)])
}

func TestCompositeGuaranteesStructure(t *testing.T) {
	t.Parallel()

	sig := glyph.Synthesize([]rune("CLSTHD"), glyph.Balanced)
	pre := raster.ControlImage(sig, raster.WithOutputSize(128))
	rendition := uniformRGBA(64, color.RGBA{R: 120, G: 80, B: 40, A: 255})

	res := composite.Composite(pre, rendition)
	require.True(t, res.StructureGuaranteed)
	require.Equal(t, pre.Control.Bounds(), res.Composite.Bounds())
	require.Equal(t, pre.Control.Bounds(), res.Background.Bounds())

	// Outside the dilated mask the background is the rendition verbatim.
	i := res.Composite.PixOffset(1, 1)
	assert.Equal(t, []uint8{120, 80, 40, 255}, res.Composite.Pix[i:i+4])

	// On a stroke pixel the composite departs from the background.
	strokeAt := -1
	for idx, v := range pre.StrokeMask.Pix {
		if v > 0 {
			strokeAt = idx
			break
		}
	}
	require.GreaterOrEqual(t, strokeAt, 0)
	x, y := strokeAt%128, strokeAt/128
	p := res.Composite.PixOffset(x, y)
	assert.NotEqual(t, res.Background.Pix[p:p+3], res.Composite.Pix[p:p+3])
}

func TestCompositeDeterministic(t *testing.T) {
	t.Parallel()

	sig := glyph.Synthesize([]rune("BKR"), glyph.Dense)
	pre := raster.ControlImage(sig, raster.WithOutputSize(96))
	rendition := uniformRGBA(96, color.RGBA{R: 30, G: 60, B: 90, A: 255})

	a := composite.Composite(pre, rendition)
	b := composite.Composite(pre, rendition)
	assert.Equal(t, a.Composite.Pix, b.Composite.Pix)
}

func TestHybridChoosesByScore(t *testing.T) {
	t.Parallel()

	sig := glyph.Synthesize([]rune("BKR"), glyph.Minimal)
	pre := raster.ControlImage(sig, raster.WithOutputSize(96))
	rendition := uniformRGBA(96, color.RGBA{R: 200, G: 180, B: 160, A: 255})

	img, composited := composite.Hybrid(pre, rendition, 0.92, composite.DefaultScoreThreshold)
	assert.False(t, composited)
	assert.Equal(t, rendition.Pix, img.Pix, "trusted rendition passes through")

	img, composited = composite.Hybrid(pre, rendition, 0.4, composite.DefaultScoreThreshold)
	assert.True(t, composited)
	assert.Equal(t, pre.Control.Bounds(), img.Bounds())
}
