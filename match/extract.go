// SPDX-License-Identifier: MIT
// Package: sigil/match
//
// extract.go - isolating sigil structure from textured renditions.

package match

import (
	"image"

	"github.com/anchorforge/sigil/raster"
)

// Extract isolates stroke structure from a rendition as a binary mask,
// white strokes on black. Methods that cannot tell stroke color from
// background color (adaptive, Otsu) invert their result when it comes
// out mostly white.
func Extract(img *image.Gray, method ExtractionMethod) *image.Gray {
	switch method {
	case MethodOtsu:
		return invertIfBright(raster.Binarize(img, otsuLevel(img)))

	case MethodEdges:
		return raster.Dilate(edgeMap(img, DefaultEdgeLevel), 1)

	case MethodThreshold:
		return raster.Binarize(img, DefaultBinarizeLevel)

	default: // MethodAdaptive
		return invertIfBright(adaptiveThreshold(img))
	}
}

// adaptiveThreshold marks pixels brighter than their local Gaussian
// mean, less a small bias. Flat regions read as bright, so callers
// pair this with invertIfBright.
func adaptiveThreshold(img *image.Gray) *image.Gray {
	mean := raster.Blur(img, adaptiveSigma)
	pix, w, h := flatten(img)
	mpix, _, _ := flatten(mean)

	out := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range pix {
		if int(v) > int(mpix[i])-adaptiveBias {
			out.Pix[i] = 0xff
		}
	}

	return out
}

// otsuLevel picks the global threshold maximizing between-class
// variance over the intensity histogram.
func otsuLevel(img *image.Gray) uint8 {
	pix, _, _ := flatten(img)

	var hist [256]int
	for _, v := range pix {
		hist[v]++
	}

	total := len(pix)
	var sumAll int
	for i, n := range hist {
		sumAll += i * n
	}

	var (
		wB, sumB int
		best     = -1.0
		bestT    int
	)
	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += t * hist[t]

		mB := float64(sumB) / float64(wB)
		mF := float64(sumAll-sumB) / float64(wF)
		v := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if v > best {
			best, bestT = v, t
		}
	}

	return uint8(bestT)
}

// invertIfBright flips a binary mask whose majority is white, so that
// strokes always end up white regardless of the rendition's palette.
func invertIfBright(mask *image.Gray) *image.Gray {
	var sum uint64
	for _, v := range mask.Pix {
		sum += uint64(v)
	}
	if len(mask.Pix) == 0 || sum/uint64(len(mask.Pix)) <= 127 {
		return mask
	}

	out := image.NewGray(mask.Bounds())
	for i, v := range mask.Pix {
		out.Pix[i] = 0xff - v
	}

	return out
}
