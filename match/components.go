// SPDX-License-Identifier: MIT
// Package: sigil/match
//
// components.go - connected stroke regions of a binary mask.

package match

import (
	"image"
	"sort"
)

// Component is one 8-connected region of mask pixels.
type Component struct {
	Size   int
	Bounds image.Rectangle
}

// eightWay is the neighbor offset set; strokes meet diagonally, so
// 4-connectivity would split them.
var eightWay = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Components labels the 8-connected white regions of mask, largest
// first. A stroke count that differs sharply between original and
// rendition means strokes merged or vanished.
//
// Time:   O(W*H*8).
// Memory: O(W*H) for visited flags and the frontier.
func Components(mask *image.Gray) []Component {
	pix, w, h := flatten(mask)
	seen := make([]bool, len(pix))
	var comps []Component

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i0 := y*w + x
			if pix[i0] <= maskLevel || seen[i0] {
				continue
			}

			// BFS to collect the region.
			queue := []int{i0}
			seen[i0] = true
			comp := Component{Bounds: image.Rect(x, y, x+1, y+1)}

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp.Size++
				ux, uy := u%w, u/w

				if ux < comp.Bounds.Min.X {
					comp.Bounds.Min.X = ux
				}
				if uy < comp.Bounds.Min.Y {
					comp.Bounds.Min.Y = uy
				}
				if ux+1 > comp.Bounds.Max.X {
					comp.Bounds.Max.X = ux + 1
				}
				if uy+1 > comp.Bounds.Max.Y {
					comp.Bounds.Max.Y = uy + 1
				}

				for _, d := range eightWay {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vy < 0 || vx >= w || vy >= h {
						continue
					}
					vi := vy*w + vx
					if pix[vi] <= maskLevel || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			comps = append(comps, comp)
		}
	}

	sort.Slice(comps, func(i, j int) bool {
		if comps[i].Size != comps[j].Size {
			return comps[i].Size > comps[j].Size
		}
		if comps[i].Bounds.Min.Y != comps[j].Bounds.Min.Y {
			return comps[i].Bounds.Min.Y < comps[j].Bounds.Min.Y
		}

		return comps[i].Bounds.Min.X < comps[j].Bounds.Min.X
	})

	return comps
}
