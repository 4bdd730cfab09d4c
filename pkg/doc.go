// Package pkg provides the libraries behind dashlayout, a layout engine for
// dashboards whose widgets are dragged and resized inside containers.
//
// # Overview
//
// Widgets snap to the visible edges of their siblings, stay inside their
// container and store their placement in percent so that they follow the
// container when it is resized. The pkg directory is organized as follows:
//
//  1. [geom] - Points, rectangles, edges, intervals and snap modes
//  2. [layout] - The engine: registry, snapping, occlusion, bounds, activation
//  3. [host] - Box, an in-memory item rendered like a positioned element
//  4. [scene] - TOML scene files, instantiation on an engine, gesture replay
//  5. [render] - Occlusion graphs as DOT, SVG, PDF and PNG
//
// Supporting packages are [errors] (coded errors), [observability] (hooks
// for metrics and tracing) and [buildinfo] (version information).
//
// # Architecture
//
// A gesture step flows through the engine like this:
//
//	pointer offset
//	     ↓
//	[layout.Engine.Siblings] (cached sibling rectangles)
//	     ↓
//	[layout.VisibleEdges] (cut edges covered by higher priorities)
//	     ↓
//	[layout.Snap] (closest edge per axis within the snap radius)
//	     ↓
//	[layout.ClampDragOffset] / [layout.ClampResizeOffset]
//	     ↓
//	item transform (preview) or percent placement (end)
//
// # Quick Start
//
// Load a scene and drag one of its items:
//
//	sc, _ := scene.Load("dashboard.toml")
//	l, _ := sc.Build(layout.New(layout.Options{}))
//
//	chart, _ := l.MustLookup("chart")
//	l.Engine.StartDrag(chart.ID)
//	l.Engine.Drag(chart.ID, geom.Offset{X: 12, Y: 0})
//	res := l.Engine.EndDrag(chart.ID, geom.Offset{X: 18, Y: 4})
//	fmt.Println(res.Rect, res.Position)
//
// Embed the engine in another host by implementing [layout.Item] (and
// optionally [layout.Resizable]) and [layout.Container].
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example ./... # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/geom
// [layout]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/layout
// [host]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/host
// [scene]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dashlayout/pkg/buildinfo
package pkg
