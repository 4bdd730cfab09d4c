package layout

import (
	"math"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// SnapResult is the outcome of [Snap].
type SnapResult struct {
	// Offset is the corrective offset to add to the prospective position.
	Offset geom.Offset
	// Guides are the edges the mover snapped to, at most one per axis.
	Guides []geom.Edge
}

// axisSnap tracks the best candidate on one axis. A zero accepted offset is
// always replaceable; set only records that a guide edge was found.
type axisSnap struct {
	value float64
	edge  geom.Edge
	set   bool
}

func (a *axisSnap) consider(d, radius float64, e geom.Edge) {
	if math.Abs(d) > radius {
		return
	}
	if a.set && a.value != 0 && math.Abs(d) >= math.Abs(a.value) {
		return
	}
	a.value, a.edge, a.set = d, e, true
}

// SnapOffset returns the corrective offset that snaps the rectangle spanned
// by topLeft and bottomRight onto the nearest eligible edge per axis.
// It returns the zero offset when no edge is within reach.
func SnapOffset(topLeft, bottomRight geom.Point, edges []geom.Edge, mode geom.SnapMode, radius float64, dir Direction) geom.Offset {
	return Snap(topLeft, bottomRight, edges, mode, radius, dir).Offset
}

// Snap compares the mover's edges with each candidate edge.
//
// For every candidate the snap radius is the larger of the mover's and the
// edge's radius, and the snap mode is the union of both. A candidate is
// only considered when the mover, grown by that radius, touches the edge
// segment. Distances are measured from the mover edge that would meet the
// candidate:
//
//	candidate  outer                 inner
//	left       x - mover.Right  (E)  x - mover.Left   (W)
//	right      x - mover.Left   (W)  x - mover.Right  (E)
//	top        y - mover.Bottom (S)  y - mover.Top    (N)
//	bottom     y - mover.Top    (N)  y - mover.Bottom (S)
//
// The letter in parentheses is the direction that must be part of dir for
// the rule to apply; drags pass [AllDirections]. A candidate replaces the
// current best on its axis if it is strictly closer or the current best is
// zero, so ties between nonzero offsets keep the first edge in input order.
func Snap(topLeft, bottomRight geom.Point, edges []geom.Edge, mode geom.SnapMode, radius float64, dir Direction) SnapResult {
	mover := geom.FromPoints(topLeft, bottomRight)
	var x, y axisSnap

	for _, e := range edges {
		r := math.Max(radius, e.SnapRadius)
		m := mode.Union(e.SnapMode)
		if m == geom.SnapNone {
			continue
		}
		if !mover.Grow(r).Intersects(e.Bounds()) {
			continue
		}

		outer, inner := m.Has(geom.SnapOuter), m.Has(geom.SnapInner)
		line := e.Line()

		switch e.Side {
		case geom.Left:
			if outer && dir.Has(East) {
				x.consider(line-mover.Right(), r, e)
			}
			if inner && dir.Has(West) {
				x.consider(line-mover.Left(), r, e)
			}
		case geom.Right:
			if outer && dir.Has(West) {
				x.consider(line-mover.Left(), r, e)
			}
			if inner && dir.Has(East) {
				x.consider(line-mover.Right(), r, e)
			}
		case geom.Top:
			if outer && dir.Has(South) {
				y.consider(line-mover.Bottom(), r, e)
			}
			if inner && dir.Has(North) {
				y.consider(line-mover.Top(), r, e)
			}
		case geom.Bottom:
			if outer && dir.Has(North) {
				y.consider(line-mover.Top(), r, e)
			}
			if inner && dir.Has(South) {
				y.consider(line-mover.Bottom(), r, e)
			}
		}
	}

	var res SnapResult
	if x.set {
		res.Offset.X = x.value
		res.Guides = append(res.Guides, x.edge)
	}
	if y.set {
		res.Offset.Y = y.value
		res.Guides = append(res.Guides, y.edge)
	}
	return res
}
