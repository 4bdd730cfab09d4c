package layout

import "github.com/matzehuels/dashlayout/pkg/geom"

// Item is the capability a host exposes for each layout item.
//
// BoundingRectangle must report the item's persisted geometry in the same
// coordinate space as its container for the duration of a gesture.
// SetTranslate, SetScale and UpdateTransform drive the live preview;
// SetPosition and SetSize persist the authoritative placement as
// percentages of the container.
type Item interface {
	BoundingRectangle() geom.Rectangle

	SetTranslate(offset geom.Offset)
	SetScale(scale geom.Scale)
	// UpdateTransform applies the last translate and scale, translate first.
	UpdateTransform()

	SetPosition(percent geom.Point)
	SetSize(size geom.Size)

	Priority() int
	SetPriority(priority int)
	SnapMode() geom.SnapMode
	SnapRadius() float64
}

// Resizable is implemented by items with resize preferences. Items that do
// not implement it resize down to zero and are previewed with SetSize.
type Resizable interface {
	// MinSize is the smallest size the item may be resized to, in pixels or
	// percent of the container.
	MinSize() geom.Size
	// PreferScale previews resizes with SetScale instead of SetSize.
	PreferScale() bool
}

// Container is the capability a host exposes for each container.
type Container interface {
	BoundingRectangle() geom.Rectangle
}

// ContainerFunc adapts a function to the Container interface.
type ContainerFunc func() geom.Rectangle

// BoundingRectangle calls f.
func (f ContainerFunc) BoundingRectangle() geom.Rectangle { return f() }

// FixedContainer is a container with a constant rectangle.
type FixedContainer geom.Rectangle

// BoundingRectangle returns the fixed rectangle.
func (c FixedContainer) BoundingRectangle() geom.Rectangle { return geom.Rectangle(c) }
