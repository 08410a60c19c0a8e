// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// refine.go - stroke thickening, content centering, edge enhancement.

package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Thicken grows strokes so they survive diffusion. The kernel is
// int(3*multiplier), clamped to [4, 12] pixels and forced odd.
func Thicken(src *image.Gray, multiplier float64) *image.Gray {
	return Dilate(src, thickenRadius(multiplier))
}

func thickenRadius(multiplier float64) int {
	k := int(3 * multiplier)
	if k < minStrokeKernel {
		k = minStrokeKernel
	}
	if k > maxStrokeKernel {
		k = maxStrokeKernel
	}
	if k%2 == 0 {
		k++
	}

	return k / 2
}

// CenterContent recenters the sigil behind a protective margin: the
// content box is pasted centered into a padded square canvas, and the
// canvas scaled back to the source size. The returned rectangle is the
// content's position in the output; an image with no content above the
// detection level is returned unchanged with its full bounds.
func CenterContent(src *image.Gray, padding float64) (*image.Gray, image.Rectangle) {
	pix, w, h := tight(src)
	out := image.NewGray(image.Rect(0, 0, w, h))

	box, ok := contentBox(pix, w, h)
	if !ok {
		copy(out.Pix, pix)

		return out, out.Bounds()
	}

	side := w
	if h > side {
		side = h
	}
	pad := int(float64(side) * padding)
	canvasSide := side + 2*pad

	canvas := image.NewGray(image.Rect(0, 0, canvasSide, canvasSide))
	cw, ch := box.Dx(), box.Dy()
	dstX := (canvasSide - cw) / 2
	dstY := (canvasSide - ch) / 2
	for y := 0; y < ch; y++ {
		srcRow := (box.Min.Y+y)*w + box.Min.X
		dstRow := (dstY+y)*canvas.Stride + dstX
		copy(canvas.Pix[dstRow:dstRow+cw], pix[srcRow:srcRow+cw])
	}

	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)

	sf := float64(w) / float64(canvasSide)
	bounds := image.Rect(
		int(float64(dstX)*sf+0.5),
		int(float64(dstY)*sf+0.5),
		int(float64(dstX+cw)*sf+0.5),
		int(float64(dstY+ch)*sf+0.5),
	)

	return out, bounds
}

// contentBox finds the bounding box of pixels above the detection level.
func contentBox(pix []uint8, w, h int) (image.Rectangle, bool) {
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := pix[y*w : (y+1)*w]
		for x, v := range row {
			if v <= contentThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Blur returns a Gaussian blur of src. Zero sigma returns a copy.
func Blur(src *image.Gray, sigma float64) *image.Gray {
	pix, w, h := tight(src)
	out := image.NewGray(image.Rect(0, 0, w, h))
	if sigma <= 0 {
		copy(out.Pix, pix)

		return out
	}

	for i, v := range gaussianBlur(pix, w, h, sigma) {
		out.Pix[i] = uint8(v + 0.5)
	}

	return out
}

// EnhanceEdges sharpens stroke boundaries with an unsharp mask:
// out = in + (in - blur(in)) * amount. Zero sigma returns a copy.
func EnhanceEdges(src *image.Gray, sigma float64) *image.Gray {
	pix, w, h := tight(src)
	out := image.NewGray(image.Rect(0, 0, w, h))
	if sigma <= 0 {
		copy(out.Pix, pix)

		return out
	}

	blur := gaussianBlur(pix, w, h, sigma)
	for i, v := range pix {
		s := float64(v) + (float64(v)-blur[i])*unsharpAmount
		switch {
		case s < 0:
			s = 0
		case s > 255:
			s = 255
		}
		out.Pix[i] = uint8(s + 0.5)
	}

	return out
}

// gaussianBlur is a separable Gaussian with edge replication.
func gaussianBlur(pix []uint8, w, h int, sigma float64) []float64 {
	radius := int(3*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	horiz := make([]float64, len(pix))
	for y := 0; y < h; y++ {
		row := pix[y*w : (y+1)*w]
		dst := horiz[y*w : (y+1)*w]
		for x := range dst {
			var acc float64
			for i, k := range kernel {
				acc += k * float64(row[clampIndex(x+i-radius, w)])
			}
			dst[x] = acc
		}
	}

	out := make([]float64, len(pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for i, k := range kernel {
				acc += k * horiz[clampIndex(y+i-radius, h)*w+x]
			}
			out[y*w+x] = acc
		}
	}

	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}

	return i
}
