// SPDX-License-Identifier: MIT
// Package: sigil/raster
//
// render.go - anti-aliased stroke rasterization of sigil geometry.
//
// Purpose:
//   - Renders glyph shapes as white strokes on black, the contrast
//     convention control networks expect. Geometry is flattened to
//     polylines and stroked as filled quads with round cap/join disks.
//
// Contract:
//   - Per-shape opacity maps to gray level, so a later Binarize keeps
//     full-opacity linework and drops faint decoration washes.
//   - All stroke outlines share one winding direction; the rasterizer
//     accumulates signed coverage, so mixed windings would punch holes
//     where caps overlap segments.
//
// Complexity:
//   - O(S * P) path construction over S shapes with P flattened points,
//     plus the rasterizer's O(size^2) per-shape coverage pass.
//
// Determinism:
//   - Pure float math over a fixed flattening resolution; identical
//     inputs yield byte-identical pixel buffers.

package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/anchorforge/sigil/glyph"
)

// Render rasterizes the sigil as white strokes on black at the
// configured output size.
func Render(sig glyph.Sigil, opts ...Option) *image.Gray {
	cfg := newRasterConfig(opts...)

	return renderAt(sig, cfg.outputSize)
}

// renderAt draws every shape at its own opacity level and merges the
// coverage passes with a per-pixel max.
func renderAt(sig glyph.Sigil, size int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, size, size))
	if sig.Size <= 0 {
		return out
	}
	scale := float64(size) / sig.Size

	z := vector.NewRasterizer(size, size)
	cov := image.NewAlpha(image.Rect(0, 0, size, size))

	for _, s := range sig.Shapes {
		lines, width, opacity := flattenShape(s, scale)
		if len(lines) == 0 || width <= 0 || opacity <= 0 {
			continue
		}
		if opacity > 1 {
			opacity = 1
		}

		z.Reset(size, size)
		z.DrawOp = draw.Src // Reset restores draw.Over
		for _, pl := range lines {
			strokePolyline(z, pl, width/2)
		}
		z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

		for i, a := range cov.Pix {
			if v := uint8(opacity*float64(a) + 0.5); v > out.Pix[i] {
				out.Pix[i] = v
			}
		}
	}

	return out
}

// flattenShape reduces a shape to scaled polylines plus stroke style.
func flattenShape(s glyph.Shape, scale float64) ([][]glyph.Point, float64, float64) {
	switch v := s.(type) {
	case glyph.Line:
		pl := []glyph.Point{scalePoint(v.From, scale), scalePoint(v.To, scale)}

		return [][]glyph.Point{pl}, v.Width * scale, v.Opacity

	case glyph.Circle:
		pl := make([]glyph.Point, 0, circleSegments+1)
		for k := 0; k <= circleSegments; k++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(k) / circleSegments)
			pl = append(pl, glyph.Point{
				X: (v.Center.X + v.Radius*cos) * scale,
				Y: (v.Center.Y + v.Radius*sin) * scale,
			})
		}

		return [][]glyph.Point{pl}, v.Width * scale, v.Opacity

	case glyph.Path:
		return flattenPath(v, scale), v.Width * scale, v.Opacity

	default:
		return nil, 0, 0
	}
}

// flattenPath walks the command list, splitting on moves and sampling
// quadratic segments at a fixed resolution.
func flattenPath(p glyph.Path, scale float64) [][]glyph.Point {
	var (
		lines [][]glyph.Point
		cur   []glyph.Point
		start glyph.Point
	)
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		} else if len(cur) == 1 {
			lines = append(lines, cur) // lone point renders as a dot
		}
		cur = nil
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case glyph.OpMove:
			flush()
			start = cmd.To
			cur = append(cur, scalePoint(cmd.To, scale))

		case glyph.OpLine:
			cur = append(cur, scalePoint(cmd.To, scale))

		case glyph.OpQuad:
			if len(cur) == 0 {
				cur = append(cur, scalePoint(start, scale))
			}
			from := cur[len(cur)-1]
			ctrl := scalePoint(cmd.Ctrl, scale)
			to := scalePoint(cmd.To, scale)
			for k := 1; k <= quadSteps; k++ {
				cur = append(cur, quadPoint(from, ctrl, to, float64(k)/quadSteps))
			}

		case glyph.OpClose:
			if len(cur) > 0 {
				cur = append(cur, scalePoint(start, scale))
			}
			flush()
		}
	}
	flush()

	return lines
}

// quadPoint evaluates the quadratic Bezier (a, ctrl, b) at t.
func quadPoint(a, ctrl, b glyph.Point, t float64) glyph.Point {
	u := 1 - t

	return glyph.Point{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

func scalePoint(p glyph.Point, s float64) glyph.Point {
	return glyph.Point{X: p.X * s, Y: p.Y * s}
}

// strokePolyline outlines each segment as a filled quad and rounds
// every vertex with a cap disk.
func strokePolyline(z *vector.Rasterizer, pts []glyph.Point, halfWidth float64) {
	if len(pts) == 0 || halfWidth <= 0 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		addSegment(z, pts[i], pts[i+1], halfWidth)
	}
	for _, p := range pts {
		addDisk(z, p, halfWidth)
	}
}

// addSegment appends the rectangle spanned by offsetting the segment by
// the left normal on both sides. The vertex order keeps the winding
// consistent with addDisk.
func addSegment(z *vector.Rasterizer, a, b glyph.Point, halfWidth float64) {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return
	}
	nx := -(b.Y - a.Y) / length * halfWidth
	ny := (b.X - a.X) / length * halfWidth

	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}

// addDisk appends a circle of radius r as four cubic arcs, wound the
// same way as addSegment's quads.
func addDisk(z *vector.Rasterizer, c glyph.Point, r float64) {
	k := r * kappa
	x, y := c.X, c.Y

	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y-k), float32(x+k), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x-k), float32(y-r), float32(x-r), float32(y-k), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y+k), float32(x-k), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x+k), float32(y+r), float32(x+r), float32(y+k), float32(x+r), float32(y))
	z.ClosePath()
}
