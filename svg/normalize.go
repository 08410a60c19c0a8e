// normalize.go - high-contrast rewriting of arbitrary sigil markup.
//
// Rasterization and structure matching expect white line art on a dark
// ground with a known coordinate system. Sigil SVGs arriving from outside
// this module (older generators, upstream services) may miss a viewBox,
// carry theme colors, or fill their paths; Normalize flattens all of that
// with the same ordered rewrites regardless of input, so the result is
// deterministic for a given document.

package svg

import (
	"regexp"
	"strings"
)

// Normalization targets.
const (
	// NormalizedStroke is the stroke color rasterization expects.
	NormalizedStroke = "#FFFFFF"
	// NormalizedFill removes fills: sigils are line art.
	NormalizedFill = "none"
	// defaultStrokeWidth is injected into <path> elements when the
	// document declares no stroke-width at all.
	defaultStrokeWidth = "2"
	// fallbackViewBox is used when neither viewBox nor integer
	// width/height attributes are present.
	fallbackViewBox = `viewBox="0 0 100 100"`
)

var (
	widthAttrRe  = regexp.MustCompile(`width="(\d+)"`)
	heightAttrRe = regexp.MustCompile(`height="(\d+)"`)
	strokeAttrRe = regexp.MustCompile(`stroke="[^"]*"`)
	fillAttrRe   = regexp.MustCompile(`fill="[^"]*"`)
	pathOpenRe   = regexp.MustCompile(`<path `)
)

// Normalize rewrites markup for high-contrast rasterization:
//
//  1. Inject a viewBox when missing — derived from integer width/height
//     attributes when present, the 0 0 100 100 fallback otherwise.
//  2. Force every stroke attribute to NormalizedStroke.
//  3. Replace every fill attribute with NormalizedFill.
//  4. Guarantee a stroke-width by tagging <path> elements when the
//     document has none.
//
// Normalize is idempotent and never fails; non-SVG input passes through
// with only the attribute rewrites that happen to match.
func Normalize(markup string) string {
	out := markup

	if !strings.Contains(out, "viewBox") {
		vb := fallbackViewBox
		wm := widthAttrRe.FindStringSubmatch(out)
		hm := heightAttrRe.FindStringSubmatch(out)
		if wm != nil && hm != nil {
			vb = `viewBox="0 0 ` + wm[1] + ` ` + hm[1] + `"`
		}
		out = strings.Replace(out, "<svg", "<svg "+vb, 1)
	}

	out = strokeAttrRe.ReplaceAllString(out, `stroke="`+NormalizedStroke+`"`)
	out = fillAttrRe.ReplaceAllString(out, `fill="`+NormalizedFill+`"`)

	if !strings.Contains(out, "stroke-width") {
		out = pathOpenRe.ReplaceAllString(out, `<path stroke-width="`+defaultStrokeWidth+`" `)
	}

	return out
}
