package layout_test

import (
	"fmt"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/host"
	"github.com/matzehuels/dashlayout/pkg/layout"
)

func Example() {
	eng := layout.New(layout.Options{})
	board := layout.FixedContainer(geom.Rect(0, 0, 400, 300))
	cid := eng.AddContainer(board)

	chart := host.NewBox("chart", board, geom.Rect(0, 0, 100, 100), host.Config{})
	notes := host.NewBox("notes", board, geom.Rect(110, 0, 90, 100), host.Config{
		Priority:   1,
		SnapMode:   geom.SnapOuter,
		SnapRadius: 20,
	})
	id, _ := eng.Register(cid, chart, layout.ElementID{})
	eng.Register(cid, notes, layout.ElementID{})

	// Dragging 5px right pulls the chart against the notes.
	eng.StartDrag(id)
	res := eng.Drag(id, geom.Offset{X: 5})
	fmt.Println(res.Offset, chart.Transform())

	eng.EndDrag(id, geom.Offset{X: 5})
	fmt.Println(chart.Style())

	top, _ := eng.Activate(id)
	fmt.Println(top, notes.Priority())
	// Output:
	// (+10, +0) translate(10px, 0px)
	// left: 2.5%; top: 0%; width: 100px; height: 100px; z-index: 0
	// 1 0
}

func ExampleEngine_EndResize() {
	eng := layout.New(layout.Options{})
	board := layout.FixedContainer(geom.Rect(0, 0, 400, 300))
	cid := eng.AddContainer(board)
	box := host.NewBox("box", board, geom.Rect(0, 0, 100, 100), host.Config{})
	id, _ := eng.Register(cid, box, layout.ElementID{})

	eng.StartResize(id)
	res := eng.EndResize(id, geom.Offset{X: 300}, layout.East)
	fmt.Println(res.Rect)
	fmt.Println(box.Size())
	// Output:
	// [0,0 400x100]
	// 100% × 33.3333%
}

func ExampleParseDirection() {
	fmt.Println(layout.ParseDirection("se"), layout.ParseDirection("EN"), layout.ParseDirection("ns") == 0)
	// Output:
	// se ne true
}
