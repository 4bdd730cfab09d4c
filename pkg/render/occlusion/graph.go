package occlusion

import (
	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// Node is an item in the graph.
type Node struct {
	Name     string
	Priority int
	Rect     geom.Rectangle
	// Element groups co-located items; empty means the item stands alone.
	Element string
}

// Link records that From hides parts of To's edges.
type Link struct {
	From, To string
	// Sides are the sides of To that From cuts, in [geom.Sides] order.
	Sides []geom.Side
	// Hidden are the sides of To that From covers entirely.
	Hidden []geom.Side
}

// Graph is the occlusion graph of one container.
type Graph struct {
	Container string
	Nodes     []Node
	Links     []Link
}

// Build computes the links between the nodes of one container. Links are
// ordered by occluded node, then by occluder, both in input order.
func Build(container string, nodes []Node) Graph {
	g := Graph{Container: container, Nodes: nodes}
	for _, below := range nodes {
		for _, above := range nodes {
			if above.Priority <= below.Priority || colocated(above, below) {
				continue
			}
			if l, ok := link(above, below); ok {
				g.Links = append(g.Links, l)
			}
		}
	}
	return g
}

func colocated(a, b Node) bool {
	return a.Element != "" && a.Element == b.Element
}

func link(above, below Node) (Link, bool) {
	l := Link{From: above.Name, To: below.Name}
	for _, e := range below.Rect.Edges() {
		pieces := layout.Occlude(e, above.Rect)
		visible := 0.0
		for _, p := range pieces {
			visible += p.Length()
		}
		if visible >= e.Length() {
			continue
		}
		l.Sides = append(l.Sides, e.Side)
		if len(pieces) == 0 {
			l.Hidden = append(l.Hidden, e.Side)
		}
	}
	return l, len(l.Sides) > 0
}

// FromLayout builds one graph per board of a scene layout, using the
// items' current placement and priority.
func FromLayout(l *scene.Layout) []Graph {
	graphs := make([]Graph, 0, len(l.Boards))
	for _, b := range l.Boards {
		elements := make(map[layout.ElementID]string)
		var nodes []Node
		for _, name := range b.Items() {
			e, _ := l.Lookup(name)
			el, _ := l.Engine.Element(e.ID)
			if _, ok := elements[el]; !ok {
				elements[el] = name
			}
			nodes = append(nodes, Node{
				Name:     name,
				Priority: e.Box.Priority(),
				Rect:     e.Box.BoundingRectangle(),
				Element:  elements[el],
			})
		}
		graphs = append(graphs, Build(b.Name, nodes))
	}
	return graphs
}
