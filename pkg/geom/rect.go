package geom

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle. Constructors normalize the corners
// so that Left() <= Right() and Top() <= Bottom().
type Rectangle struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// Rect builds a rectangle from its top-left corner and size. Negative sizes
// extend the rectangle to the left or upwards.
func Rect(x, y, width, height float64) Rectangle {
	return FromPoints(Pt(x, y), Pt(x+width, y+height))
}

// FromPoints builds the rectangle spanned by two arbitrary corners.
func FromPoints(a, b Point) Rectangle {
	return Rectangle{
		TopLeft:     Pt(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		BottomRight: Pt(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// FromEdges builds a rectangle from its four edge coordinates.
func FromEdges(left, top, right, bottom float64) Rectangle {
	return FromPoints(Pt(left, top), Pt(right, bottom))
}

func (r Rectangle) Left() float64   { return r.TopLeft.X }
func (r Rectangle) Top() float64    { return r.TopLeft.Y }
func (r Rectangle) Right() float64  { return r.BottomRight.X }
func (r Rectangle) Bottom() float64 { return r.BottomRight.Y }

// Width returns the horizontal span of the rectangle.
func (r Rectangle) Width() float64 { return r.Right() - r.Left() }

// Height returns the vertical span of the rectangle.
func (r Rectangle) Height() float64 { return r.Bottom() - r.Top() }

// Size returns the pixel size of the rectangle.
func (r Rectangle) Size() Size { return PixelSize(r.Width(), r.Height()) }

// Translate returns r moved by o.
func (r Rectangle) Translate(o Offset) Rectangle {
	return Rectangle{TopLeft: r.TopLeft.Add(o), BottomRight: r.BottomRight.Add(o)}
}

// Grow returns r extended by d on every side. A negative d shrinks the
// rectangle, collapsing to its center instead of inverting.
func (r Rectangle) Grow(d float64) Rectangle {
	if d < 0 {
		d = math.Max(d, -math.Min(r.Width(), r.Height())/2)
	}
	return Rectangle{
		TopLeft:     Pt(r.Left()-d, r.Top()-d),
		BottomRight: Pt(r.Right()+d, r.Bottom()+d),
	}
}

// Intersects reports whether r and o share at least one point. Touching
// rectangles intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return Overlaps(r.Left(), r.Right(), o.Left(), o.Right()) &&
		Overlaps(r.Top(), r.Bottom(), o.Top(), o.Bottom())
}

// Contains reports whether o lies entirely within r.
func (r Rectangle) Contains(o Rectangle) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Edge returns the full edge of r on the given side with no snap
// configuration.
func (r Rectangle) Edge(side Side) Edge {
	switch side {
	case Left:
		return Edge{Beginning: r.TopLeft, Ending: Pt(r.Left(), r.Bottom()), Side: Left}
	case Right:
		return Edge{Beginning: Pt(r.Right(), r.Top()), Ending: r.BottomRight, Side: Right}
	case Top:
		return Edge{Beginning: r.TopLeft, Ending: Pt(r.Right(), r.Top()), Side: Top}
	default:
		return Edge{Beginning: Pt(r.Left(), r.Bottom()), Ending: r.BottomRight, Side: Bottom}
	}
}

// Edges returns the four edges of r in [Sides] order.
func (r Rectangle) Edges() []Edge {
	edges := make([]Edge, 0, len(Sides))
	for _, s := range Sides {
		edges = append(edges, r.Edge(s))
	}
	return edges
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left(), r.Top(), r.Width(), r.Height())
}
