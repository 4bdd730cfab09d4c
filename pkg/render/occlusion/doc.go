// Package occlusion renders the stacking of a dashboard as a graph.
//
// # Overview
//
// Every item is a node labelled with its name and priority. An arrow from
// A to B means that A has a higher priority than B and hides part of at
// least one of B's edges, so those parts are not offered as snap targets.
// Arrows are labelled with the sides they cut; sides that are hidden
// completely are drawn bold.
//
// # Usage
//
//	graphs := occlusion.FromLayout(l)
//	dot := occlusion.ToDOT(graphs, occlusion.Options{})
//	svg, err := occlusion.RenderSVG(ctx, dot)
//
// Each container becomes a cluster of its own. Items never occlude across
// containers, and co-located items never occlude each other.
//
// # Dependencies
//
// SVG rendering runs Graphviz in-process through
// [github.com/goccy/go-graphviz]. PDF and PNG go through
// [render.ToPDF] and [render.ToPNG], which need rsvg-convert.
package occlusion
