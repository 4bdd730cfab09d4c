// Package host provides Box, an in-memory layout item.
//
// Box is the reference implementation of [layout.Item] and
// [layout.Resizable]. It stores the placement the engine persists (position
// and size in percent of the container) and the transient transform of the
// live preview, and renders both the way a browser host would style an
// absolutely positioned element. The CLI playground, the HTTP API and the
// engine tests all use it as their host.
package host

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
)

// Box is an absolutely positioned rectangle inside a container.
//
// BoundingRectangle reports the persisted placement without the live
// transform, so it stays stable while a gesture previews a move.
// [Box.VisualRectangle] includes the transform, applied translate first and
// scaled about the top-left corner.
type Box struct {
	Name string

	container layout.Container
	position  geom.Point // percent of the container
	size      geom.Size

	translate geom.Offset
	scale     geom.Scale
	transform string

	priority    int
	snapMode    geom.SnapMode
	snapRadius  float64
	minSize     geom.Size
	preferScale bool

	// OnPriorityChanged, when set, is called after every priority change.
	OnPriorityChanged func(priority int)
}

// Config holds the optional settings of a Box.
type Config struct {
	Priority    int
	SnapMode    geom.SnapMode
	SnapRadius  float64
	MinSize     geom.Size
	PreferScale bool
}

// NewBox places a box at the pixel rectangle r of container. The position
// is stored in percent; the size keeps its pixels until the first resize
// persists a percentage.
func NewBox(name string, container layout.Container, r geom.Rectangle, cfg Config) *Box {
	c := container.BoundingRectangle()
	return &Box{
		Name:        name,
		container:   container,
		position:    layout.PercentageCoordinates(c, r.TopLeft),
		size:        r.Size(),
		scale:       geom.Identity,
		priority:    cfg.Priority,
		snapMode:    cfg.SnapMode,
		snapRadius:  cfg.SnapRadius,
		minSize:     cfg.MinSize,
		preferScale: cfg.PreferScale,
	}
}

// BoundingRectangle implements [layout.Item].
func (b *Box) BoundingRectangle() geom.Rectangle {
	c := b.container.BoundingRectangle()
	tl := layout.PixelCoordinates(c, b.position)
	s := b.size.InPixels(c)
	return geom.Rect(tl.X, tl.Y, s.Width, s.Height)
}

// VisualRectangle returns where the box is drawn, live transform included.
func (b *Box) VisualRectangle() geom.Rectangle {
	r := b.BoundingRectangle().Translate(b.translate)
	sx, sy := b.scale.X, b.scale.Y
	if b.scale.IsIdentity() {
		sx, sy = 1, 1
	}
	return geom.Rect(r.Left(), r.Top(), r.Width()*sx, r.Height()*sy)
}

func (b *Box) SetTranslate(o geom.Offset) { b.translate = o }
func (b *Box) SetScale(s geom.Scale)      { b.scale = s }
func (b *Box) SetPosition(p geom.Point)   { b.position = p }
func (b *Box) SetSize(s geom.Size)        { b.size = s }

// UpdateTransform renders the CSS transform from the last translate and
// scale. Zero translates and identity scales are left out.
func (b *Box) UpdateTransform() {
	var parts []string
	if !b.translate.IsZero() {
		parts = append(parts, fmt.Sprintf("translate(%gpx, %gpx)", b.translate.X, b.translate.Y))
	}
	if !b.scale.IsIdentity() {
		parts = append(parts, fmt.Sprintf("scale(%g, %g)", b.scale.X, b.scale.Y))
	}
	b.transform = strings.Join(parts, " ")
}

// Transform returns the CSS transform computed by the last UpdateTransform.
func (b *Box) Transform() string { return b.transform }

// Translate returns the live translate.
func (b *Box) Translate() geom.Offset { return b.translate }

// Scale returns the live scale.
func (b *Box) Scale() geom.Scale { return b.scale }

// Position returns the persisted top-left corner in percent.
func (b *Box) Position() geom.Point { return b.position }

// Size returns the persisted size.
func (b *Box) Size() geom.Size { return b.size }

func (b *Box) Priority() int { return b.priority }

// SetPriority implements [layout.Item] and notifies OnPriorityChanged.
func (b *Box) SetPriority(p int) {
	b.priority = p
	if b.OnPriorityChanged != nil {
		b.OnPriorityChanged(p)
	}
}

func (b *Box) SnapMode() geom.SnapMode { return b.snapMode }
func (b *Box) SnapRadius() float64     { return b.snapRadius }
func (b *Box) MinSize() geom.Size      { return b.minSize }
func (b *Box) PreferScale() bool       { return b.preferScale }

// Style renders the box as inline CSS for an absolutely positioned element
// with a top-left transform origin.
func (b *Box) Style() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "left: %g%%; top: %g%%; ", b.position.X, b.position.Y)
	fmt.Fprintf(&sb, "width: %g%s; height: %g%s; ", b.size.Width, b.size.Unit, b.size.Height, b.size.Unit)
	fmt.Fprintf(&sb, "z-index: %d", b.priority)
	if b.transform != "" {
		fmt.Fprintf(&sb, "; transform-origin: top left; transform: %s", b.transform)
	}
	return sb.String()
}

var (
	_ layout.Item      = (*Box)(nil)
	_ layout.Resizable = (*Box)(nil)
)
