package geom

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

// Side identifies one of the four sides of a rectangle.
type Side uint8

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// Sides lists every side in a fixed order.
var Sides = []Side{Left, Right, Top, Bottom}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Vertical reports whether edges on this side are vertical lines.
func (s Side) Vertical() bool { return s == Left || s == Right }

// Edge is a full or partial side of a rectangle. For left and right edges
// both points share X; for top and bottom edges they share Y. SnapMode and
// SnapRadius come from the item owning the edge so that either party's
// settings can trigger snapping.
type Edge struct {
	Beginning  Point    `json:"beginning"`
	Ending     Point    `json:"ending"`
	Side       Side     `json:"side"`
	SnapMode   SnapMode `json:"snap_mode"`
	SnapRadius float64  `json:"snap_radius"`
}

// Line returns the fixed coordinate of the edge: X for vertical edges, Y
// for horizontal ones.
func (e Edge) Line() float64 {
	if e.Side.Vertical() {
		return e.Beginning.X
	}
	return e.Beginning.Y
}

// Span returns the varying coordinate range of the edge, lowest first.
func (e Edge) Span() (float64, float64) {
	a, b := e.Beginning.X, e.Ending.X
	if e.Side.Vertical() {
		a, b = e.Beginning.Y, e.Ending.Y
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	a, b := e.Span()
	return b - a
}

// WithSpan returns a copy of e restricted to the range [from, to] along its
// line.
func (e Edge) WithSpan(from, to float64) Edge {
	out := e
	if e.Side.Vertical() {
		out.Beginning = Pt(e.Line(), from)
		out.Ending = Pt(e.Line(), to)
	} else {
		out.Beginning = Pt(from, e.Line())
		out.Ending = Pt(to, e.Line())
	}
	return out
}

// Bounds returns the degenerate rectangle covering the edge.
func (e Edge) Bounds() Rectangle { return FromPoints(e.Beginning, e.Ending) }

func (e Edge) String() string {
	return fmt.Sprintf("%s %v-%v", e.Side, e.Beginning, e.Ending)
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	name := strings.ToLower(string(b))
	for _, side := range Sides {
		if side.String() == name {
			*s = side
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown side %q", b)
}
