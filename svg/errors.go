package svg

import "errors"

var (
	// ErrNotSVG reports markup whose root element is not <svg>.
	ErrNotSVG = errors.New("svg: not an svg document")

	// ErrBadViewBox reports a viewBox attribute that is missing, has the
	// wrong arity, or carries non-numeric / non-positive dimensions.
	ErrBadViewBox = errors.New("svg: malformed viewBox")
)
