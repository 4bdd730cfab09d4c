package occlusion

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/render"
)

// Options configures graph rendering.
type Options struct {
	// Detailed adds each item's rectangle to its label.
	Detailed bool
}

// ToDOT converts occlusion graphs to Graphviz DOT. Higher priorities are
// ranked above lower ones.
func ToDOT(graphs []Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph occlusion {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")

	for i, g := range graphs {
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", g.Container)
		buf.WriteString("    style=dashed;\n")
		for _, n := range g.Nodes {
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(g, n.Name), strings.Join(nodeAttrs(n, opts), ", "))
		}
		for _, l := range g.Links {
			fmt.Fprintf(&buf, "    %q -> %q [%s];\n", nodeID(g, l.From), nodeID(g, l.To), strings.Join(linkAttrs(l), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID keeps equal item names in different containers apart.
func nodeID(g Graph, name string) string { return g.Container + "/" + name }

func nodeAttrs(n Node, opts Options) []string {
	label := fmt.Sprintf("%s\nz=%d", n.Name, n.Priority)
	if opts.Detailed {
		label += "\n" + n.Rect.String()
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Element != "" && n.Element != n.Name {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func linkAttrs(l Link) []string {
	attrs := []string{fmt.Sprintf("label=%q", sideList(l.Sides))}
	if len(l.Hidden) > 0 {
		attrs = append(attrs, "penwidth=2", fmt.Sprintf("xlabel=%q", "hides "+sideList(l.Hidden)))
	}
	return attrs
}

func sideList(sides []geom.Side) string {
	names := make([]string, len(sides))
	for i, s := range sides {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// that scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
