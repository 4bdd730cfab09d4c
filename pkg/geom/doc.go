// Package geom provides the value types the layout engine computes with.
//
// All coordinates are pixels in the host's container-relative coordinate
// space, with X growing to the right and Y growing downwards (screen
// orientation). Values are immutable: every operation returns a new value.
//
// # Types
//
//   - [Point] and [Offset]: a coordinate and a delta
//   - [Scale]: a transient scale factor applied by the host
//   - [Size]: width and height in pixels or percent of a container
//   - [Rectangle]: an axis-aligned rectangle built from two corners
//   - [Edge]: one full or partial side of a rectangle, carrying the owning
//     item's snap configuration
//   - [SnapMode]: inner/outer snapping flags
//
// Predicates are total over numeric input. Zero-width and zero-height
// rectangles are valid and compare with closed intervals, so a degenerate
// rectangle still intersects the line it lies on.
package geom
