package layout

import (
	"math"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// ClampDragOffset limits a drag offset so that item, moved by the result,
// stays inside container. Each axis is handled on its own:
//
//   - an offset that keeps the item inside is returned unchanged
//   - an item that fits but would cross the far edge is stopped at the far edge
//   - anything else is aligned to the near edge, which also pins items that
//     are larger than the container to its top-left
func ClampDragOffset(container, item geom.Rectangle, raw geom.Offset) geom.Offset {
	return geom.Offset{
		X: clampDragAxis(container.Left(), container.Right(), item.Left(), item.Right(), raw.X),
		Y: clampDragAxis(container.Top(), container.Bottom(), item.Top(), item.Bottom(), raw.Y),
	}
}

func clampDragAxis(cNear, cFar, near, far, d float64) float64 {
	if near+d >= cNear && far+d <= cFar {
		return d
	}
	if far-near <= cFar-cNear && far+d > cFar {
		return cFar - far
	}
	return cNear - near
}

// ClampResizeOffset limits a resize offset for the active directions.
//
// The X component moves the east or west edge and the Y component the north
// or south edge; components of inactive axes are returned as zero. The moving
// edge may not cross the container edge on its side, and the item may not
// shrink below minSize, which is resolved against container when given in
// percent. When both limits conflict the container wins.
func ClampResizeOffset(container, item geom.Rectangle, raw geom.Offset, dir Direction, minSize geom.Size) geom.Offset {
	minPx := minSize.InPixels(container)
	var out geom.Offset

	switch {
	case dir.Has(East):
		x := math.Max(raw.X, minPx.Width-item.Width())
		out.X = math.Min(x, container.Right()-item.Right())
	case dir.Has(West):
		x := math.Min(raw.X, item.Width()-minPx.Width)
		out.X = math.Max(x, container.Left()-item.Left())
	}

	switch {
	case dir.Has(South):
		y := math.Max(raw.Y, minPx.Height-item.Height())
		out.Y = math.Min(y, container.Bottom()-item.Bottom())
	case dir.Has(North):
		y := math.Min(raw.Y, item.Height()-minPx.Height)
		out.Y = math.Max(y, container.Top()-item.Top())
	}

	return out
}

// resizeRect applies an edge offset produced by [ClampResizeOffset] to r.
func resizeRect(r geom.Rectangle, o geom.Offset, dir Direction) geom.Rectangle {
	left, top, right, bottom := r.Left(), r.Top(), r.Right(), r.Bottom()
	switch {
	case dir.Has(East):
		right += o.X
	case dir.Has(West):
		left += o.X
	}
	switch {
	case dir.Has(South):
		bottom += o.Y
	case dir.Has(North):
		top += o.Y
	}
	return geom.FromEdges(left, top, right, bottom)
}
