// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// morph.go - grayscale morphology with a disk structuring element.
//
// Contract:
//   - Results are origin-anchored copies; sources are never mutated.
//   - Out-of-bounds neighbors are skipped, which behaves like edge
//     replication for content that stays clear of the frame.
//
// Complexity:
//   - O(W*H*r^2) per operation; radii in this pipeline stay <= 6.

package raster

import "image"

// Binarize maps src to strict black/white: pixels strictly above
// threshold become white, everything else black.
func Binarize(src *image.Gray, threshold uint8) *image.Gray {
	pix, w, h := tight(src)
	out := image.NewGray(image.Rect(0, 0, w, h))
	for i, v := range pix {
		if v > threshold {
			out.Pix[i] = 0xff
		}
	}

	return out
}

// Dilate grows bright regions by a disk of the given radius.
func Dilate(src *image.Gray, radius int) *image.Gray {
	return morph(src, radius, true)
}

// Erode shrinks bright regions by a disk of the given radius.
func Erode(src *image.Gray, radius int) *image.Gray {
	return morph(src, radius, false)
}

// Gradient returns the morphological gradient, dilation minus erosion.
// On binary images it responds exactly at stroke boundaries, which
// serves as the edge map for structural comparison.
func Gradient(src *image.Gray, radius int) *image.Gray {
	d := Dilate(src, radius)
	e := Erode(src, radius)
	out := image.NewGray(d.Bounds())
	for i := range out.Pix {
		out.Pix[i] = d.Pix[i] - e.Pix[i] // max >= min pointwise
	}

	return out
}

func morph(src *image.Gray, radius int, grow bool) *image.Gray {
	pix, w, h := tight(src)
	out := image.NewGray(image.Rect(0, 0, w, h))
	if radius <= 0 {
		copy(out.Pix, pix)

		return out
	}

	offs := diskOffsets(radius)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var best uint8
			if !grow {
				best = 0xff
			}
			for _, o := range offs {
				sx, sy := x+o.X, y+o.Y
				if sx < 0 || sy < 0 || sx >= w || sy >= h {
					continue
				}
				v := pix[sy*w+sx]
				if grow {
					if v > best {
						best = v
					}
				} else if v < best {
					best = v
				}
			}
			out.Pix[y*w+x] = best
		}
	}

	return out
}

// diskOffsets enumerates the neighborhood dx*dx+dy*dy <= r*r.
func diskOffsets(radius int) []image.Point {
	rr := radius * radius
	offs := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				offs = append(offs, image.Point{X: dx, Y: dy})
			}
		}
	}

	return offs
}

// tight returns src's pixels as an origin-anchored, stride==width
// buffer, copying only when the source is a sub-image view.
func tight(src *image.Gray) ([]uint8, int, int) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min == (image.Point{}) && src.Stride == w {
		return src.Pix[:w*h], w, h
	}

	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w:(y+1)*w], src.Pix[row:row+w])
	}

	return pix, w, h
}
