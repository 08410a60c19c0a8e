// writer.go - Sigil → SVG document serialization.
//
// The serializer is intentionally dumb: geometry decisions belong to the
// glyph package, this file only renders shapes in the order given. Output
// is byte-stable across runs and platforms (fixed number formatting, fixed
// attribute order), which is what makes whole-document golden comparisons
// and determinism tests possible.

package svg

import (
	"strconv"
	"strings"

	"github.com/anchorforge/sigil/glyph"
)

// Root attributes shared by every document.
const (
	xmlNamespace = "http://www.w3.org/2000/svg"
	strokeColor  = "currentColor"
	lineCap      = "round"
	lineJoin     = "round"
	childIndent  = "  "
)

// numPrecision fixes the serialized decimal places before trimming.
const numPrecision = 2

// Marshal renders s as one self-contained SVG document.
//
// The root carries xmlns, viewBox="0 0 size size", explicit width/height,
// fill="none" and stroke="currentColor"; children follow in draw order.
// Per-shape stroke-width is always written; opacity only when it is not 1.
// Marshal never fails: an empty shape list yields an empty (yet
// well-formed) document.
func Marshal(s glyph.Sigil) string {
	size := fmtNum(s.Size)

	var b strings.Builder
	b.WriteString(`<svg xmlns="`)
	b.WriteString(xmlNamespace)
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(size)
	b.WriteByte(' ')
	b.WriteString(size)
	b.WriteString(`" width="`)
	b.WriteString(size)
	b.WriteString(`" height="`)
	b.WriteString(size)
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(strokeColor)
	b.WriteString(`" stroke-linecap="`)
	b.WriteString(lineCap)
	b.WriteString(`" stroke-linejoin="`)
	b.WriteString(lineJoin)
	b.WriteString("\">\n")

	for _, shape := range s.Shapes {
		b.WriteString(childIndent)
		writeShape(&b, shape)
		b.WriteByte('\n')
	}

	b.WriteString("</svg>")

	return b.String()
}

// writeShape dispatches on the sealed shape set.
func writeShape(b *strings.Builder, s glyph.Shape) {
	switch v := s.(type) {
	case glyph.Line:
		writeLine(b, v)
	case glyph.Circle:
		writeCircle(b, v)
	case glyph.Path:
		writePath(b, v)
	}
}

func writeLine(b *strings.Builder, l glyph.Line) {
	b.WriteString(`<line x1="`)
	b.WriteString(fmtNum(l.From.X))
	b.WriteString(`" y1="`)
	b.WriteString(fmtNum(l.From.Y))
	b.WriteString(`" x2="`)
	b.WriteString(fmtNum(l.To.X))
	b.WriteString(`" y2="`)
	b.WriteString(fmtNum(l.To.Y))
	b.WriteByte('"')
	writeStyle(b, l.Width, l.Opacity)
	b.WriteString("/>")
}

func writeCircle(b *strings.Builder, c glyph.Circle) {
	b.WriteString(`<circle cx="`)
	b.WriteString(fmtNum(c.Center.X))
	b.WriteString(`" cy="`)
	b.WriteString(fmtNum(c.Center.Y))
	b.WriteString(`" r="`)
	b.WriteString(fmtNum(c.Radius))
	b.WriteByte('"')
	writeStyle(b, c.Width, c.Opacity)
	b.WriteString("/>")
}

func writePath(b *strings.Builder, p glyph.Path) {
	b.WriteString(`<path d="`)
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case glyph.OpMove:
			b.WriteString("M ")
			writePoint(b, c.To)
		case glyph.OpLine:
			b.WriteString("L ")
			writePoint(b, c.To)
		case glyph.OpQuad:
			b.WriteString("Q ")
			writePoint(b, c.Ctrl)
			b.WriteByte(' ')
			writePoint(b, c.To)
		case glyph.OpClose:
			b.WriteByte('Z')
		}
	}
	b.WriteByte('"')
	writeStyle(b, p.Width, p.Opacity)
	b.WriteString("/>")
}

func writePoint(b *strings.Builder, p glyph.Point) {
	b.WriteString(fmtNum(p.X))
	b.WriteByte(' ')
	b.WriteString(fmtNum(p.Y))
}

// writeStyle emits the per-shape presentation attributes.
func writeStyle(b *strings.Builder, width, opacity float64) {
	b.WriteString(` stroke-width="`)
	b.WriteString(fmtNum(width))
	b.WriteByte('"')
	if opacity != 1 {
		b.WriteString(` opacity="`)
		b.WriteString(fmtNum(opacity))
		b.WriteByte('"')
	}
}

// fmtNum renders x with at most numPrecision decimals, trimming trailing
// zeros and the dangling dot. Negative zero collapses to "0" so equal
// geometry can never serialize two ways.
func fmtNum(x float64) string {
	s := strconv.FormatFloat(x, 'f', numPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}

	return s
}
