package geom

import "fmt"

// Point is a pixel coordinate.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p moved by o.
func (p Point) Add(o Offset) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns the offset that moves q onto p.
func (p Point) Sub(q Point) Offset { return Offset{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Offset is a pixel delta.
type Offset struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset { return Offset{X: o.X + other.X, Y: o.Y + other.Y} }

// IsZero reports whether both components are zero.
func (o Offset) IsZero() bool { return o.X == 0 && o.Y == 0 }

func (o Offset) String() string { return fmt.Sprintf("(%+g, %+g)", o.X, o.Y) }

// Scale is a per-axis scale factor. The zero value means "no scale" to
// hosts, the same as [Identity].
type Scale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Identity is the scale that leaves geometry unchanged.
var Identity = Scale{X: 1, Y: 1}

// IsIdentity reports whether s leaves geometry unchanged.
func (s Scale) IsIdentity() bool {
	return (s.X == 0 && s.Y == 0) || (s.X == 1 && s.Y == 1)
}
