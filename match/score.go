// SPDX-License-Identifier: MIT
// Package: sigil/match
//
// score.go - IoU, edge overlap, and the combined structure verdict.
//
// Contract:
//   - Every function is total: mismatched sizes are resampled to the
//     smaller common dimensions, empty inputs yield defined scores
//     (two empty masks are a perfect match; no edges on either side is
//     a zero overlap), and nothing here panics.
//
// Determinism:
//   - Pure pixel arithmetic; identical inputs yield identical scores.

package match

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/anchorforge/sigil/raster"
)

// Score is the structure-preservation verdict for one rendition.
type Score struct {
	IoU         float64
	EdgeOverlap float64
	Combined    float64
	Preserved   bool
	Class       Class
	Detail      Detail
}

// Detail carries the raw counts behind a Score.
type Detail struct {
	Intersection   int
	Union          int
	OriginalInk    int
	GeneratedInk   int
	OriginalEdges  int
	GeneratedEdges int
	ForwardRatio   float64
	BackwardRatio  float64
	OriginalParts  int
	GeneratedParts int
}

// Compute scores a rendition against the original stroke mask: the
// rendition's structure is isolated, masks are compared by IoU, edges
// by tolerant two-way overlap, and the weighted combination classified.
func Compute(original, generated *image.Gray, cfg Config) Score {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	o, g := resizeToCommon(original, generated)

	ob := raster.Binarize(o, cfg.BinarizeLevel)
	gb := Extract(g, cfg.Extraction)

	iou, det := iouDetail(ob, gb)
	edge := edgeDetail(o, g, cfg, &det)

	det.OriginalParts = len(Components(ob))
	det.GeneratedParts = len(Components(gb))

	combined := cfg.IoUWeight*iou + cfg.EdgeWeight*edge

	return Score{
		IoU:         iou,
		EdgeOverlap: edge,
		Combined:    combined,
		Preserved:   combined >= cfg.Threshold,
		Class:       classify(combined, cfg),
		Detail:      det,
	}
}

// Batch scores several renditions against one original mask.
func Batch(original *image.Gray, generated []*image.Gray, cfg Config) []Score {
	out := make([]Score, len(generated))
	for i, g := range generated {
		out[i] = Compute(original, g, cfg)
	}

	return out
}

// ShouldRegenerate reports whether too few renditions preserved
// structure, along with the indices of those that did.
func ShouldRegenerate(scores []Score, minPassing int) (bool, []int) {
	var passing []int
	for i, s := range scores {
		if s.Preserved {
			passing = append(passing, i)
		}
	}

	return len(passing) < minPassing, passing
}

// IoU is the intersection-over-union of two masks (pixels above 127).
// Two empty masks count as a perfect match.
func IoU(a, b *image.Gray) float64 {
	a, b = resizeToCommon(a, b)
	iou, _ := iouDetail(a, b)

	return iou
}

func iouDetail(a, b *image.Gray) (float64, Detail) {
	ap, w, h := flatten(a)
	bp, _, _ := flatten(b)

	var det Detail
	for i := 0; i < w*h; i++ {
		aw := ap[i] > maskLevel
		bw := bp[i] > maskLevel
		if aw {
			det.OriginalInk++
		}
		if bw {
			det.GeneratedInk++
		}
		if aw && bw {
			det.Intersection++
		}
		if aw || bw {
			det.Union++
		}
	}
	if det.Union == 0 {
		return 1, det
	}

	return float64(det.Intersection) / float64(det.Union), det
}

// EdgeOverlap compares boundary maps in both directions with positional
// tolerance and returns their harmonic mean. No edges on either side
// yields zero.
func EdgeOverlap(a, b *image.Gray, cfg Config) float64 {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	a, b = resizeToCommon(a, b)
	var det Detail

	return edgeDetail(a, b, cfg, &det)
}

func edgeDetail(a, b *image.Gray, cfg Config, det *Detail) float64 {
	ea := edgeMap(a, cfg.EdgeLevel)
	eb := edgeMap(b, cfg.EdgeLevel)

	det.OriginalEdges = countMask(ea)
	det.GeneratedEdges = countMask(eb)
	if det.OriginalEdges == 0 || det.GeneratedEdges == 0 {
		return 0
	}

	da := raster.Dilate(ea, cfg.EdgeTolerance)
	db := raster.Dilate(eb, cfg.EdgeTolerance)

	det.ForwardRatio = float64(countBoth(ea, db)) / float64(det.OriginalEdges)
	det.BackwardRatio = float64(countBoth(eb, da)) / float64(det.GeneratedEdges)
	if det.ForwardRatio+det.BackwardRatio == 0 {
		return 0
	}

	return 2 * det.ForwardRatio * det.BackwardRatio / (det.ForwardRatio + det.BackwardRatio)
}

// edgeMap extracts boundary pixels: the morphological gradient,
// thresholded at the edge response level.
func edgeMap(img *image.Gray, level uint8) *image.Gray {
	return raster.Binarize(raster.Gradient(img, 1), level)
}

func countMask(img *image.Gray) int {
	n := 0
	for _, v := range img.Pix {
		if v > maskLevel {
			n++
		}
	}

	return n
}

func countBoth(a, b *image.Gray) int {
	n := 0
	for i, v := range a.Pix {
		if v > maskLevel && b.Pix[i] > maskLevel {
			n++
		}
	}

	return n
}

// resizeToCommon resamples both images to the smaller shared
// dimensions; same-size inputs pass through untouched.
func resizeToCommon(a, b *image.Gray) (*image.Gray, *image.Gray) {
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bw, bh := b.Bounds().Dx(), b.Bounds().Dy()
	if aw == bw && ah == bh {
		return a, b
	}
	w, h := min(aw, bw), min(ah, bh)

	return resizeGray(a, w, h), resizeGray(b, w, h)
}

func resizeGray(src *image.Gray, w, h int) *image.Gray {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	out := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return out
}

// flatten returns origin-anchored, stride==width pixels.
func flatten(img *image.Gray) ([]uint8, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min == (image.Point{}) && img.Stride == w {
		return img.Pix[:w*h], w, h
	}

	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w:(y+1)*w], img.Pix[row:row+w])
	}

	return pix, w, h
}
