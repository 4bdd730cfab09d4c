package layout

import "github.com/matzehuels/dashlayout/pkg/geom"

// pointerGesture remembers where a pointer went down on an item.
type pointerGesture struct {
	kind  GestureKind
	dir   Direction
	start geom.Point
}

// Tracker turns absolute pointer coordinates into gesture offsets. Hosts
// call it from their input layer: DragStart or ResizeStart when the pointer
// goes down on a handle, PointerMove while the button is held and PointerUp
// on release.
//
// Offsets are measured from the pointer-down position, so every move
// recomputes the preview from the gesture start rather than accumulating
// small deltas.
type Tracker struct {
	engine *Engine
	active map[ItemID]pointerGesture
}

// NewTracker creates a tracker driving eng.
func NewTracker(eng *Engine) *Tracker {
	return &Tracker{engine: eng, active: make(map[ItemID]pointerGesture)}
}

// DragStart begins a drag of id at point p.
func (t *Tracker) DragStart(id ItemID, p geom.Point) bool {
	if !t.engine.StartDrag(id) {
		return false
	}
	t.active[id] = pointerGesture{kind: GestureDrag, start: p}
	return true
}

// ResizeStart begins a resize of id from the handle dir at point p.
func (t *Tracker) ResizeStart(id ItemID, dir Direction, p geom.Point) bool {
	if !t.engine.StartResize(id) {
		return false
	}
	t.active[id] = pointerGesture{kind: GestureResize, dir: dir, start: p}
	return true
}

// PointerMove previews the gesture running on id for pointer position p.
// It is a no-op when no gesture runs on id. A gesture on an item the engine
// no longer knows is dropped.
func (t *Tracker) PointerMove(id ItemID, p geom.Point) Result {
	g, ok := t.active[id]
	if !ok {
		return Result{}
	}
	var res Result
	if g.kind == GestureResize {
		res = t.engine.Resize(id, p.Sub(g.start), g.dir)
	} else {
		res = t.engine.Drag(id, p.Sub(g.start))
	}
	if !res.Applied {
		delete(t.active, id)
	}
	return res
}

// PointerUp ends the gesture running on id at pointer position p.
func (t *Tracker) PointerUp(id ItemID, p geom.Point) Result {
	g, ok := t.active[id]
	if !ok {
		return Result{}
	}
	delete(t.active, id)
	if g.kind == GestureResize {
		return t.engine.EndResize(id, p.Sub(g.start), g.dir)
	}
	return t.engine.EndDrag(id, p.Sub(g.start))
}

// Cancel abandons the pointer gesture on id without persisting anything.
func (t *Tracker) Cancel(id ItemID) {
	if _, ok := t.active[id]; !ok {
		return
	}
	delete(t.active, id)
	t.engine.Cancel(id)
}

// Gesture reports the gesture the pointer is driving on id.
func (t *Tracker) Gesture(id ItemID) (GestureKind, Direction, bool) {
	g, ok := t.active[id]
	return g.kind, g.dir, ok
}
