// SPDX-License-Identifier: MIT
// Package: sigil/composite
//
// inpaint.go - removing the rendition's own sigil from the background.
//
// Contract:
//   - Pixels outside the mask are returned byte-identical.
//   - The fill peels the masked region layer by layer from its rim,
//     each pixel taking the mean of its already-known neighbors. New
//     values activate only between passes, so the result does not
//     depend on scan direction.
//
// Complexity:
//   - O(hole area * 8) overall; the pass count equals the hole's
//     inradius, small for stroke-shaped masks.

package composite

import "image"

// Inpaint fills the masked region of img from its surroundings,
// producing a clean background plate. The mask is resampled to the
// image size when they differ.
func Inpaint(img *image.RGBA, mask *image.Gray) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	out := toRGBA(img)
	if out == img {
		clone := image.NewRGBA(image.Rect(0, 0, w, h))
		copy(clone.Pix, img.Pix)
		out = clone
	}

	m := mask
	if m.Bounds().Dx() != w || m.Bounds().Dy() != h {
		mm := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			sy := y * mask.Bounds().Dy() / h
			for x := 0; x < w; x++ {
				sx := x * mask.Bounds().Dx() / w
				mm.Pix[y*mm.Stride+x] = mask.GrayAt(mask.Bounds().Min.X+sx, mask.Bounds().Min.Y+sy).Y
			}
		}
		m = mm
	}

	known := make([]bool, w*h)
	remaining := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.GrayAt(m.Bounds().Min.X+x, m.Bounds().Min.Y+y).Y <= 127 {
				known[y*w+x] = true
			} else {
				remaining++
			}
		}
	}

	type fill struct {
		idx     int
		r, g, b uint8
	}
	neighbors := [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	for remaining > 0 {
		var layer []fill
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				if known[idx] {
					continue
				}
				var rs, gs, bs, n uint32
				for _, d := range neighbors {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h || !known[ny*w+nx] {
						continue
					}
					p := out.PixOffset(nx, ny)
					rs += uint32(out.Pix[p+0])
					gs += uint32(out.Pix[p+1])
					bs += uint32(out.Pix[p+2])
					n++
				}
				if n == 0 {
					continue
				}
				layer = append(layer, fill{
					idx: idx,
					r:   uint8((rs + n/2) / n),
					g:   uint8((gs + n/2) / n),
					b:   uint8((bs + n/2) / n),
				})
			}
		}
		if len(layer) == 0 {
			break // fully masked image, nothing to sample from
		}

		for _, f := range layer {
			p := out.PixOffset(f.idx%w, f.idx/w)
			out.Pix[p+0] = f.r
			out.Pix[p+1] = f.g
			out.Pix[p+2] = f.b
			out.Pix[p+3] = 0xff
			known[f.idx] = true
		}
		remaining -= len(layer)
	}

	return out
}
