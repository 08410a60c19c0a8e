// SPDX-License-Identifier: MIT
// Package: sigil/composite
//
// color.go - sampling the stroke color from a rendition.

package composite

import (
	"image"
	"image/color"
	"sort"
)

// DominantColor votes on the most common color inside the masked
// region, quantized to 32-level buckets so texture noise cannot split
// the vote. An empty mask yields white. Ties break toward the lowest
// RGB bucket for determinism.
func DominantColor(img *image.RGBA, mask *image.Gray) color.RGBA {
	b := img.Bounds()
	counts := make(map[[3]uint8]int)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if mask.GrayAt(x, y).Y <= 127 {
				continue
			}
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			q := [3]uint8{
				img.Pix[i+0] / quantStep * quantStep,
				img.Pix[i+1] / quantStep * quantStep,
				img.Pix[i+2] / quantStep * quantStep,
			}
			counts[q]++
		}
	}
	if len(counts) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}

	keys := make([][3]uint8, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}

		return a[2] < b[2]
	})

	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}

	return color.RGBA{R: best[0], G: best[1], B: best[2], A: 0xff}
}
