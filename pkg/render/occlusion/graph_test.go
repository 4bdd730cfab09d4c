package occlusion

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

func TestBuild(t *testing.T) {
	nodes := []Node{
		{Name: "a", Rect: geom.Rect(0, 0, 100, 100)},
		{Name: "b", Priority: 1, Rect: geom.Rect(50, 0, 100, 100)},
		{Name: "c", Priority: 2, Rect: geom.Rect(300, 0, 10, 10)},
	}
	g := Build("board", nodes)

	want := []Link{{
		From:   "b",
		To:     "a",
		Sides:  []geom.Side{geom.Right, geom.Top, geom.Bottom},
		Hidden: []geom.Side{geom.Right},
	}}
	if !reflect.DeepEqual(g.Links, want) {
		t.Errorf("Links = %+v, want %+v", g.Links, want)
	}
}

func TestBuildSkipsColocatedAndEqual(t *testing.T) {
	nodes := []Node{
		{Name: "a", Rect: geom.Rect(0, 0, 100, 100), Element: "a"},
		{Name: "badge", Priority: 3, Rect: geom.Rect(0, 80, 20, 20), Element: "a"},
		{Name: "twin", Rect: geom.Rect(50, 0, 100, 100)},
	}
	if g := Build("board", nodes); len(g.Links) != 0 {
		t.Errorf("Links = %+v, want none", g.Links)
	}
}

func TestToDOT(t *testing.T) {
	g := Build("board", []Node{
		{Name: "a", Rect: geom.Rect(0, 0, 100, 100)},
		{Name: "b", Priority: 1, Rect: geom.Rect(50, 0, 100, 100)},
	})
	dot := ToDOT([]Graph{g}, Options{})

	for _, want := range []string{
		"digraph occlusion",
		"subgraph cluster_0",
		`label="board"`,
		`"board/a"`,
		`"board/b" -> "board/a"`,
		`label="right, top, bottom"`,
		`xlabel="hides right"`,
		"z=1",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "[0,0 100x100]") {
		t.Error("rectangles should only appear in detailed output")
	}
	if !strings.Contains(ToDOT([]Graph{g}, Options{Detailed: true}), "[0,0 100x100]") {
		t.Error("detailed output missing rectangle")
	}
}

func TestFromLayout(t *testing.T) {
	s, err := scene.Load("../../scene/testdata/dashboard.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l, err := s.Build(layout.New(layout.Options{}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	graphs := FromLayout(l)
	if len(graphs) != 1 || len(graphs[0].Nodes) != 4 {
		t.Fatalf("unexpected graphs: %+v", graphs)
	}
	for _, n := range graphs[0].Nodes {
		if n.Name == "chart-legend" && n.Element != "chart" {
			t.Errorf("legend element = %q, want chart", n.Element)
		}
	}
	for _, link := range graphs[0].Links {
		if (link.From == "chart" && link.To == "chart-legend") || (link.From == "chart-legend" && link.To == "chart") {
			t.Errorf("co-located items linked: %+v", link)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}
