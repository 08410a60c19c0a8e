// Package glyph shape primitives. The set is closed: serializers switch on
// the concrete types below and need no default branch beyond a guard.

package glyph

// Point is a 2-D canvas coordinate (SVG axis convention: y grows downward).
type Point struct {
	X float64
	Y float64
}

// Shape is the sealed set of primitives a Sigil is composed of.
// Implementations: Line, Circle, Path.
type Shape interface {
	// shape seals the interface to this package.
	shape()
}

// Line is a straight stroke between two points.
type Line struct {
	From    Point
	To      Point
	Width   float64
	Opacity float64
}

// Circle is an unfilled circular stroke.
type Circle struct {
	Center  Point
	Radius  float64
	Width   float64
	Opacity float64
}

// PathOp enumerates path command opcodes.
type PathOp int

const (
	// OpMove lifts the pen and moves to Command.To.
	OpMove PathOp = iota
	// OpLine draws a straight segment to Command.To.
	OpLine
	// OpQuad draws a quadratic segment via Command.Ctrl to Command.To.
	OpQuad
	// OpClose closes the current subpath; To/Ctrl are ignored.
	OpClose
)

// Command is one path instruction. Ctrl is meaningful for OpQuad only.
type Command struct {
	Op   PathOp
	To   Point
	Ctrl Point
}

// Path is a multi-segment stroke built from move/line/quad commands.
// Disconnected strokes of one letter share a single Path via OpMove.
type Path struct {
	Commands []Command
	Width    float64
	Opacity  float64
}

func (Line) shape()   {}
func (Circle) shape() {}
func (Path) shape()   {}

// MoveTo appends a pen-up move to the path.
func (p *Path) MoveTo(to Point) {
	p.Commands = append(p.Commands, Command{Op: OpMove, To: to})
}

// LineTo appends a straight segment ending at to.
func (p *Path) LineTo(to Point) {
	p.Commands = append(p.Commands, Command{Op: OpLine, To: to})
}

// QuadTo appends a quadratic segment with control ctrl ending at to.
func (p *Path) QuadTo(ctrl, to Point) {
	p.Commands = append(p.Commands, Command{Op: OpQuad, To: to, Ctrl: ctrl})
}

// Close appends a close-path command.
func (p *Path) Close() {
	p.Commands = append(p.Commands, Command{Op: OpClose})
}

// Sigil is the complete synthesized geometry for one intention.
type Sigil struct {
	// Variant echoes the caller's requested variant verbatim, even when
	// configuration resolution fell back to Balanced.
	Variant Variant
	// Size is the square canvas edge length (viewBox spans 0..Size).
	Size float64
	// Letters are the distilled tokens the geometry was derived from.
	Letters []rune
	// Shapes hold the draw-ordered primitives: decorations first, letter
	// strokes next, border last.
	Shapes []Shape
}
