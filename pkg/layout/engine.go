package layout

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/observability"
)

// GestureKind distinguishes drag from resize gestures.
type GestureKind uint8

const (
	GestureDrag GestureKind = iota + 1
	GestureResize
)

func (k GestureKind) String() string {
	switch k {
	case GestureDrag:
		return "drag"
	case GestureResize:
		return "resize"
	default:
		return "none"
	}
}

// Options configures an [Engine].
type Options struct {
	// Logger receives debug output about gestures and ignored calls.
	// Nil discards it.
	Logger *log.Logger

	// Now is the clock used for gesture durations. Nil uses time.Now.
	Now func() time.Time
}

// Result describes what a gesture step computed and applied.
type Result struct {
	// Applied is false when the call was a no-op for an unknown item.
	Applied bool `json:"applied"`

	// Offset is the translate applied for the live preview: the full move
	// for drags, the movement of the top-left corner for resizes.
	Offset geom.Offset `json:"offset"`
	// Snap is the corrective snap offset that went into Offset.
	Snap geom.Offset `json:"snap"`
	// Scale is the live scale factor for items that prefer scaling.
	Scale geom.Scale `json:"scale"`

	// Rect is the resulting pixel rectangle.
	Rect geom.Rectangle `json:"rect"`
	// Position is Rect's top-left corner in percent of the container.
	Position geom.Point `json:"position"`
	// Size is Rect's size in percent of the container.
	Size geom.Size `json:"size"`

	// Guides are the sibling edges the item snapped to.
	Guides []geom.Edge `json:"guides,omitempty"`
}

type gesture struct {
	kind    GestureKind
	started time.Time
}

// Engine coordinates gestures over registered items. See the package
// documentation for the pipeline it runs.
type Engine struct {
	logger *log.Logger
	now    func() time.Time

	reg    *registry
	rects  *rectCache
	active map[ItemID]gesture
}

// New creates an engine with no containers.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		logger: opts.Logger,
		now:    opts.Now,
		reg:    newRegistry(),
		rects:  newRectCache(),
		active: make(map[ItemID]gesture),
	}
}

// =============================================================================
// Registry
// =============================================================================

// AddContainer registers a container and returns its handle.
func (e *Engine) AddContainer(c Container) ContainerID {
	id := e.reg.addContainer(c)
	e.logger.Debug("container added", "container", id)
	return id
}

// RemoveContainer unregisters a container together with all of its items.
func (e *Engine) RemoveContainer(cid ContainerID) {
	for _, id := range e.reg.removeContainer(cid) {
		e.forget(id)
		observability.Registry().OnUnregister(cid.String(), id.String())
	}
	delete(e.rects.containers, cid)
}

// Register adds item to a container. Items passing the same element are
// co-located; a zero element gives the item an element of its own. The
// second result is false, and nothing is registered, when the container is
// unknown.
//
// Every call registers a new handle, even for an item that is already
// registered.
func (e *Engine) Register(cid ContainerID, item Item, element ElementID) (ItemID, bool) {
	id, ok := e.reg.add(cid, item, element)
	if !ok {
		e.logger.Debug("register ignored: unknown container", "container", cid)
		return ItemID{}, false
	}
	e.logger.Debug("item registered", "container", cid, "item", id)
	observability.Registry().OnRegister(cid.String(), id.String())
	return id, true
}

// Unregister removes an item. Unknown items are ignored. A gesture in
// flight on the item is abandoned without persisting anything, and the
// container's cached rectangles are invalidated as at gesture end.
func (e *Engine) Unregister(id ItemID) {
	cid, ok := e.reg.remove(id)
	if !ok {
		return
	}
	e.forget(id)
	e.Invalidate(cid)
	e.logger.Debug("item unregistered", "container", cid, "item", id)
	observability.Registry().OnUnregister(cid.String(), id.String())
}

func (e *Engine) forget(id ItemID) {
	delete(e.active, id)
	e.rects.forget(id)
}

// Item returns the host item behind a handle.
func (e *Engine) Item(id ItemID) (Item, bool) {
	it, ok := e.reg.items[id]
	return it, ok
}

// ContainerOf returns the container an item is registered in.
func (e *Engine) ContainerOf(id ItemID) (ContainerID, bool) {
	cid, ok := e.reg.containerOf[id]
	return cid, ok
}

// Element returns the element an item is attached to.
func (e *Engine) Element(id ItemID) (ElementID, bool) {
	el, ok := e.reg.elementOf[id]
	return el, ok
}

// Items returns the items of a container in registration order.
func (e *Engine) Items(cid ContainerID) []ItemID {
	return append([]ItemID(nil), e.reg.members[cid]...)
}

// Active reports the gesture currently running on an item, if any.
func (e *Engine) Active(id ItemID) (GestureKind, bool) {
	g, ok := e.active[id]
	return g.kind, ok
}

// =============================================================================
// Visibility
// =============================================================================

// Siblings returns the snap candidates of an item: the other items of its
// container that are not co-located with it. While a gesture runs in the
// container, sibling rectangles are read once and cached until it ends.
func (e *Engine) Siblings(id ItemID) []Sibling {
	busy := e.busy(e.reg.containerOf[id])
	var out []Sibling
	for _, sid := range e.reg.siblings(id) {
		it := e.reg.items[sid]
		out = append(out, Sibling{
			Rect:       e.rects.item(sid, it, busy),
			Priority:   it.Priority(),
			SnapMode:   it.SnapMode(),
			SnapRadius: it.SnapRadius(),
		})
	}
	return out
}

// VisibleEdges returns the sibling edge segments an item can snap to.
// Unknown items have none.
func (e *Engine) VisibleEdges(id ItemID) []geom.Edge {
	if _, ok := e.reg.items[id]; !ok {
		return nil
	}
	return VisibleEdges(e.Siblings(id))
}

// =============================================================================
// Gestures
// =============================================================================

// target bundles the lookups every gesture step needs.
type target struct {
	id        ItemID
	item      Item
	cid       ContainerID
	container geom.Rectangle
	rect      geom.Rectangle
}

func (e *Engine) lookup(op string, id ItemID) (target, bool) {
	item, ok := e.reg.items[id]
	if !ok {
		e.logger.Debug(op+" ignored: item not registered", "item", id)
		observability.Gesture().OnIgnored(op, id.String())
		return target{}, false
	}
	cid := e.reg.containerOf[id]
	busy := e.busy(cid)
	return target{
		id:        id,
		item:      item,
		cid:       cid,
		container: e.rects.container(cid, e.reg.containers[cid], busy),
		rect:      e.rects.item(id, item, busy),
	}, true
}

// busy reports whether a gesture is running on any item of a container.
func (e *Engine) busy(cid ContainerID) bool {
	for _, m := range e.reg.members[cid] {
		if _, ok := e.active[m]; ok {
			return true
		}
	}
	return false
}

// Invalidate drops every cached rectangle of a container whose items are
// not in a gesture. Hosts call it after changing geometry outside the
// engine, e.g. when the container itself is resized.
func (e *Engine) Invalidate(cid ContainerID) {
	e.rects.invalidate(cid, e.reg.members[cid], func(m ItemID) bool {
		_, busy := e.active[m]
		return busy
	})
}

func (e *Engine) start(kind GestureKind, id ItemID) bool {
	item, ok := e.reg.items[id]
	if !ok {
		e.logger.Debug("start "+kind.String()+" ignored: item not registered", "item", id)
		observability.Gesture().OnIgnored("start-"+kind.String(), id.String())
		return false
	}
	cid := e.reg.containerOf[id]
	e.rects.snapshot(cid, e.reg.containers[cid], id, item)
	e.active[id] = gesture{kind: kind, started: e.now()}
	e.logger.Debug(kind.String()+" started", "item", id, "rect", e.rects.items[id])
	observability.Gesture().OnGestureStart(kind.String(), id.String())
	return true
}

func (e *Engine) finish(kind GestureKind, t target) {
	g, ok := e.active[t.id]
	delete(e.active, t.id)
	e.Invalidate(t.cid)
	var d time.Duration
	if ok {
		d = e.now().Sub(g.started)
	}
	e.logger.Debug(kind.String()+" ended", "item", t.id, "duration", d)
	observability.Gesture().OnGestureEnd(kind.String(), t.id.String(), d)
}

// StartDrag moves an item from Idle to Active and snapshots its rectangle
// and its container's rectangle. It returns false for unknown items.
func (e *Engine) StartDrag(id ItemID) bool { return e.start(GestureDrag, id) }

// StartResize is the resize counterpart of [Engine.StartDrag].
func (e *Engine) StartResize(id ItemID) bool { return e.start(GestureResize, id) }

// Drag previews a move by raw pixels: the offset is snapped to visible
// sibling edges, clamped to the container and applied with SetTranslate.
// Nothing is persisted.
func (e *Engine) Drag(id ItemID, raw geom.Offset) Result {
	t, ok := e.lookup("drag", id)
	if !ok {
		return Result{}
	}
	res := e.computeDrag(t, raw)
	t.item.SetTranslate(res.Offset)
	t.item.UpdateTransform()
	return res
}

// EndDrag runs the drag pipeline for the final offset, persists the
// resulting position in percent, resets the translate and ends the gesture.
func (e *Engine) EndDrag(id ItemID, raw geom.Offset) Result {
	t, ok := e.lookup("end-drag", id)
	if !ok {
		return Result{}
	}
	res := e.computeDrag(t, raw)
	t.item.SetPosition(res.Position)
	t.item.SetTranslate(geom.Offset{})
	t.item.UpdateTransform()
	e.finish(GestureDrag, t)
	return res
}

func (e *Engine) computeDrag(t target, raw geom.Offset) Result {
	moved := t.rect.Translate(raw)
	snap := Snap(moved.TopLeft, moved.BottomRight, VisibleEdges(e.Siblings(t.id)),
		t.item.SnapMode(), t.item.SnapRadius(), AllDirections)
	if !snap.Offset.IsZero() {
		observability.Gesture().OnSnap(GestureDrag.String(), t.id.String(), snap.Offset.X, snap.Offset.Y)
	}

	off := ClampDragOffset(t.container, t.rect, raw.Add(snap.Offset))
	final := t.rect.Translate(off)
	return Result{
		Applied:  true,
		Offset:   off,
		Snap:     snap.Offset,
		Scale:    geom.Identity,
		Rect:     final,
		Position: PercentageCoordinates(t.container, final.TopLeft),
		Size:     PercentageSize(t.container, final.Size()),
		Guides:   snap.Guides,
	}
}

// Resize previews a resize: raw moves the edges named by dir. The moved
// edges snap to visible sibling edges that matter for dir, the result is
// clamped to the container and the item's minimum size, and the preview is
// applied either as a percentage size or, for items preferring it, as a
// scale. An empty dir leaves the item unchanged.
func (e *Engine) Resize(id ItemID, raw geom.Offset, dir Direction) Result {
	t, ok := e.lookup("resize", id)
	if !ok {
		return Result{}
	}
	res := e.computeResize(t, raw, dir)
	if prefersScale(t.item) {
		t.item.SetScale(res.Scale)
	} else {
		t.item.SetSize(res.Size)
	}
	t.item.SetTranslate(res.Offset)
	t.item.UpdateTransform()
	return res
}

// EndResize runs the resize pipeline for the final offset, persists size
// and position in percent, resets translate and scale and ends the gesture.
func (e *Engine) EndResize(id ItemID, raw geom.Offset, dir Direction) Result {
	t, ok := e.lookup("end-resize", id)
	if !ok {
		return Result{}
	}
	res := e.computeResize(t, raw, dir)
	t.item.SetSize(res.Size)
	t.item.SetPosition(res.Position)
	t.item.SetTranslate(geom.Offset{})
	t.item.SetScale(geom.Identity)
	t.item.UpdateTransform()
	e.finish(GestureResize, t)
	return res
}

// Cancel abandons the gesture running on an item: the live transform is
// reset and nothing is persisted.
func (e *Engine) Cancel(id ItemID) {
	g, ok := e.active[id]
	if !ok {
		return
	}
	t, ok := e.lookup("cancel", id)
	if !ok {
		return
	}
	if g.kind == GestureResize && !prefersScale(t.item) {
		t.item.SetSize(PercentageSize(t.container, t.rect.Size()))
	}
	t.item.SetTranslate(geom.Offset{})
	t.item.SetScale(geom.Identity)
	t.item.UpdateTransform()
	e.finish(g.kind, t)
}

func (e *Engine) computeResize(t target, raw geom.Offset, dir Direction) Result {
	prospective := resizeRect(t.rect, raw, dir)
	snap := Snap(prospective.TopLeft, prospective.BottomRight, VisibleEdges(e.Siblings(t.id)),
		t.item.SnapMode(), t.item.SnapRadius(), dir)
	if !snap.Offset.IsZero() {
		observability.Gesture().OnSnap(GestureResize.String(), t.id.String(), snap.Offset.X, snap.Offset.Y)
	}

	off := ClampResizeOffset(t.container, t.rect, raw.Add(snap.Offset), dir, minSize(t.item))
	final := resizeRect(t.rect, off, dir)
	return Result{
		Applied:  true,
		Offset:   final.TopLeft.Sub(t.rect.TopLeft),
		Snap:     snap.Offset,
		Scale:    scaleBetween(t.rect, final),
		Rect:     final,
		Position: PercentageCoordinates(t.container, final.TopLeft),
		Size:     PercentageSize(t.container, final.Size()),
		Guides:   snap.Guides,
	}
}

func minSize(item Item) geom.Size {
	if r, ok := item.(Resizable); ok {
		return r.MinSize()
	}
	return geom.PixelSize(0, 0)
}

func prefersScale(item Item) bool {
	r, ok := item.(Resizable)
	return ok && r.PreferScale()
}

// scaleBetween returns the factor that stretches from into to. Axes on
// which from has no extent keep a factor of one.
func scaleBetween(from, to geom.Rectangle) geom.Scale {
	s := geom.Identity
	if from.Width() != 0 {
		s.X = to.Width() / from.Width()
	}
	if from.Height() != 0 {
		s.Y = to.Height() / from.Height()
	}
	return s
}
