// Package layout implements the dashboard layout engine: bounded drag and
// resize of rectangular items inside containers, snapping to the visible
// edges of sibling items, and priority stacking.
//
// # Overview
//
// The engine is headless. Hosts describe their items through the [Item]
// interface and their containers through [Container]; the engine reads
// rectangles from them and writes transient transforms and persisted
// percentage placements back. It never renders and never handles input
// events itself.
//
// A gesture runs through three calls:
//
//	id, _ := eng.Register(board, panel, layout.NewElementID())
//	eng.StartDrag(id)
//	eng.Drag(id, geom.Offset{X: 5})     // live preview: SetTranslate
//	eng.EndDrag(id, geom.Offset{X: 12}) // persisted: SetPosition in percent
//
// Every live step runs the same pipeline:
//
//  1. [VisibleEdges]: sibling edges not occluded by higher-priority siblings
//  2. [Snap]: the smallest corrective offset per axis within the snap radius
//  3. [ClampDragOffset] or [ClampResizeOffset]: keep the item in its container
//
// # Concurrency
//
// An [Engine] is not safe for concurrent use. All calls are expected on one
// logical timeline, as delivered by a UI event loop. Hosts that serve
// several clients must serialize calls themselves.
//
// # Unknown items
//
// Operations on items that are not registered, or were unregistered while a
// gesture was in flight, are no-ops that return a zero [Result].
package layout
