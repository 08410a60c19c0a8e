// inspect.go - parsing and structural validation of sigil documents.
//
// Parse exists for the consumers of Marshal output: health checks, test
// harnesses and the enhancement scorer all need "is this a well-formed
// square sigil and how many shapes does it carry" without a DOM library.
// Foreign markup without a viewBox should go through Normalize first.

package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ViewBox is the parsed viewBox rectangle.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// Square reports whether the viewBox spans a square region.
func (v ViewBox) Square() bool {
	return v.Width == v.Height
}

// Info summarizes a parsed sigil document.
type Info struct {
	// ViewBox is the declared coordinate system.
	ViewBox ViewBox
	// Width and Height are the raw root attributes (empty when absent).
	Width  string
	Height string
	// Shapes counts the root's direct child elements.
	Shapes int
}

// viewBoxFields is the fixed arity of a viewBox attribute.
const viewBoxFields = 4

// Parse validates that markup is well-formed XML rooted at <svg> with a
// usable viewBox, and extracts canvas metadata. The whole token stream is
// consumed, so broken nesting past the root still fails.
func Parse(markup string) (Info, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))

	var info Info
	depth := 0
	seenRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Info{}, fmt.Errorf("svg: parse: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if t.Name.Local != "svg" {
					return Info{}, fmt.Errorf("svg: root element <%s>: %w", t.Name.Local, ErrNotSVG)
				}
				seenRoot = true
				if err := fillRootInfo(&info, t); err != nil {
					return Info{}, err
				}
			}
			if depth == 2 {
				info.Shapes++
			}
		case xml.EndElement:
			depth--
		}
	}
	if !seenRoot {
		return Info{}, fmt.Errorf("svg: no root element: %w", ErrNotSVG)
	}

	return info, nil
}

// fillRootInfo extracts viewBox/width/height from the root attributes.
func fillRootInfo(info *Info, root xml.StartElement) error {
	var rawViewBox string
	for _, attr := range root.Attr {
		switch attr.Name.Local {
		case "viewBox":
			rawViewBox = attr.Value
		case "width":
			info.Width = attr.Value
		case "height":
			info.Height = attr.Value
		}
	}

	vb, err := ParseViewBox(rawViewBox)
	if err != nil {
		return err
	}
	info.ViewBox = vb

	return nil
}

// ParseViewBox parses "minX minY width height". Width and height must be
// positive; anything else reports ErrBadViewBox.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.Fields(s)
	if len(fields) != viewBoxFields {
		return ViewBox{}, fmt.Errorf("svg: viewBox %q has %d fields: %w", s, len(fields), ErrBadViewBox)
	}

	nums := make([]float64, viewBoxFields)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("svg: viewBox %q field %d: %w", s, i, ErrBadViewBox)
		}
		nums[i] = v
	}

	vb := ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}
	if vb.Width <= 0 || vb.Height <= 0 {
		return ViewBox{}, fmt.Errorf("svg: viewBox %q has non-positive span: %w", s, ErrBadViewBox)
	}

	return vb, nil
}
