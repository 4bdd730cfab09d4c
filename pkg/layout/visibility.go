package layout

import "github.com/matzehuels/dashlayout/pkg/geom"

// Sibling is a rectangle that may offer edges to snap to.
type Sibling struct {
	Rect       geom.Rectangle
	Priority   int
	SnapMode   geom.SnapMode
	SnapRadius float64
}

// VisibleEdges returns the unoccluded edge segments of every sibling.
//
// Each sibling contributes its four edges, tagged with its own snap
// configuration. An edge is then cut by every sibling with a strictly
// higher priority whose rectangle touches the edge's line: the part of the
// edge inside that rectangle's range along the line is removed, leaving
// zero, one or two pieces. Occluders are applied one after another. Equal
// or lower priorities never occlude.
//
// Each unoccluded piece appears exactly once. The order of the result
// follows the order of siblings and then [geom.Sides].
func VisibleEdges(siblings []Sibling) []geom.Edge {
	var out []geom.Edge
	for i, s := range siblings {
		for _, e := range s.Rect.Edges() {
			e.SnapMode = s.SnapMode
			e.SnapRadius = s.SnapRadius

			segments := []geom.Edge{e}
			for j, o := range siblings {
				if j == i || o.Priority <= s.Priority {
					continue
				}
				segments = occlude(segments, o.Rect)
				if len(segments) == 0 {
					break
				}
			}
			out = append(out, segments...)
		}
	}
	return out
}

// occlude removes the part of each segment covered by r.
func occlude(segments []geom.Edge, r geom.Rectangle) []geom.Edge {
	out := make([]geom.Edge, 0, len(segments))
	for _, seg := range segments {
		out = append(out, Occlude(seg, r)...)
	}
	return out
}

// Occlude returns the pieces of e left visible by a rectangle drawn above
// it. A rectangle that does not touch the edge's line leaves e whole.
func Occlude(e geom.Edge, r geom.Rectangle) []geom.Edge {
	line := e.Line()
	var lineLo, lineHi, coverLo, coverHi float64
	if e.Side.Vertical() {
		lineLo, lineHi, coverLo, coverHi = r.Left(), r.Right(), r.Top(), r.Bottom()
	} else {
		lineLo, lineHi, coverLo, coverHi = r.Top(), r.Bottom(), r.Left(), r.Right()
	}
	if !geom.Overlaps(lineLo, lineHi, line, line) {
		return []geom.Edge{e}
	}
	from, to := e.Span()
	pieces := geom.Subtract(from, to, coverLo, coverHi)
	out := make([]geom.Edge, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, e.WithSpan(p[0], p[1]))
	}
	return out
}
