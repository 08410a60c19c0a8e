// SPDX-License-Identifier: MIT
// Package: sigil/composite
//
// blend.go - layer math: feathering, soft light, masked lerp, and
// image plumbing shared by the compositing pass.

package composite

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/anchorforge/sigil/raster"
)

// Feather softens a binary mask with a Gaussian blur so composited
// edges melt into the background. Zero sigma returns a copy.
func Feather(mask *image.Gray, sigma float64) *image.Gray {
	return raster.Blur(mask, sigma)
}

// BlendSoftLight lets the texture image shine through the base:
// soft = (1-2t)*s^2 + 2t*s per channel, mixed in at the given
// strength. The texture is resampled to the base size first.
func BlendSoftLight(base, texture *image.RGBA, strength float64) *image.RGBA {
	b := base.Bounds()
	tex := resizeRGBA(texture, b.Dx(), b.Dy())
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for i := 0; i < len(out.Pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			s := float64(base.Pix[i+ch]) / 255
			t := float64(tex.Pix[i+ch]) / 255
			soft := (1-2*t)*s*s + 2*t*s
			v := (s*(1-strength) + soft*strength) * 255
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			out.Pix[i+ch] = uint8(v + 0.5)
		}
		out.Pix[i+3] = 0xff
	}

	return out
}

// blendWithMask lerps fg over bg per pixel by the mask's alpha.
func blendWithMask(fg, bg *image.RGBA, alpha *image.Gray) *image.RGBA {
	b := bg.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := out.PixOffset(x, y)
			a := uint32(alpha.GrayAt(x, y).Y)
			for ch := 0; ch < 4; ch++ {
				f := uint32(fg.Pix[i+ch])
				g := uint32(bg.Pix[i+ch])
				out.Pix[i+ch] = uint8((f*a + g*(255-a) + 127) / 255)
			}
		}
	}

	return out
}

// colorize modulates a flat color by the control image's luminance:
// white strokes carry the full color, black stays black.
func colorize(control *image.Gray, c color.RGBA) *image.RGBA {
	b := control.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			l := uint32(control.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8((uint32(c.R)*l + 127) / 255)
			out.Pix[i+1] = uint8((uint32(c.G)*l + 127) / 255)
			out.Pix[i+2] = uint8((uint32(c.B)*l + 127) / 255)
			out.Pix[i+3] = 0xff
		}
	}

	return out
}

// scaleAlpha multiplies a mask by an opacity factor.
func scaleAlpha(mask *image.Gray, opacity float64) *image.Gray {
	if opacity >= 1 {
		return mask
	}
	out := image.NewGray(mask.Bounds())
	for i, v := range mask.Pix {
		out.Pix[i] = uint8(float64(v)*opacity + 0.5)
	}

	return out
}

// toRGBA converts any image to an origin-anchored RGBA copy.
func toRGBA(img image.Image) *image.RGBA {
	if r, ok := img.(*image.RGBA); ok && r.Bounds().Min == (image.Point{}) {
		return r
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	return out
}

// resizeRGBA resamples src to w x h; matching sizes pass through.
func resizeRGBA(src *image.RGBA, w, h int) *image.RGBA {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h && src.Bounds().Min == (image.Point{}) {
		return src
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return out
}
