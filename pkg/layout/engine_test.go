package layout

import (
	"testing"
	"time"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// stubItem records what the engine asks of it. Its bounding rectangle
// only changes when a test says so.
type stubItem struct {
	rect     geom.Rectangle
	priority int
	mode     geom.SnapMode
	radius   float64
	min      geom.Size
	scaled   bool

	translate geom.Offset
	scale     geom.Scale
	position  *geom.Point
	size      *geom.Size
	updates   int
}

func (s *stubItem) BoundingRectangle() geom.Rectangle { return s.rect }
func (s *stubItem) SetTranslate(o geom.Offset)        { s.translate = o }
func (s *stubItem) SetScale(sc geom.Scale)            { s.scale = sc }
func (s *stubItem) UpdateTransform()                  { s.updates++ }
func (s *stubItem) SetPosition(p geom.Point)          { s.position = &p }
func (s *stubItem) SetSize(sz geom.Size)              { s.size = &sz }
func (s *stubItem) Priority() int                     { return s.priority }
func (s *stubItem) SetPriority(p int)                 { s.priority = p }
func (s *stubItem) SnapMode() geom.SnapMode           { return s.mode }
func (s *stubItem) SnapRadius() float64               { return s.radius }
func (s *stubItem) MinSize() geom.Size                { return s.min }
func (s *stubItem) PreferScale() bool                 { return s.scaled }

// scene registers a 400x300 container with a 100x100 item "a" at the
// origin and a snapping item "b" 10px to its right.
type scene struct {
	eng  *Engine
	cid  ContainerID
	a, b *stubItem
	aID  ItemID
	bID  ItemID
}

func newScene(t *testing.T) *scene {
	t.Helper()
	s := &scene{
		eng: New(Options{}),
		a:   &stubItem{rect: geom.Rect(0, 0, 100, 100)},
		b:   &stubItem{rect: geom.Rect(110, 0, 90, 100), priority: 1, mode: geom.SnapOuter, radius: 20},
	}
	s.cid = s.eng.AddContainer(FixedContainer(geom.Rect(0, 0, 400, 300)))
	var ok bool
	if s.aID, ok = s.eng.Register(s.cid, s.a, ElementID{}); !ok {
		t.Fatal("register a failed")
	}
	if s.bID, ok = s.eng.Register(s.cid, s.b, ElementID{}); !ok {
		t.Fatal("register b failed")
	}
	return s
}

func TestDragSnapsToSibling(t *testing.T) {
	tests := []struct {
		name string
		raw  geom.Offset
		want geom.Offset
		snap geom.Offset
	}{
		{"already aligned", geom.Offset{X: 10}, geom.Offset{X: 10}, geom.Offset{}},
		{"pulled onto edge", geom.Offset{X: 5}, geom.Offset{X: 10}, geom.Offset{X: 5}},
		{"out of reach", geom.Offset{Y: 150}, geom.Offset{Y: 150}, geom.Offset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t)
			s.eng.StartDrag(s.aID)
			res := s.eng.Drag(s.aID, tt.raw)
			if !res.Applied {
				t.Fatal("Drag not applied")
			}
			if res.Offset != tt.want || res.Snap != tt.snap {
				t.Errorf("Drag = offset %v snap %v, want %v and %v", res.Offset, res.Snap, tt.want, tt.snap)
			}
			if s.a.translate != tt.want {
				t.Errorf("item translate = %v, want %v", s.a.translate, tt.want)
			}
			if s.a.updates != 1 {
				t.Errorf("UpdateTransform called %d times, want 1", s.a.updates)
			}
			if s.a.position != nil {
				t.Error("Drag must not persist a position")
			}
		})
	}
}

func TestEndDragPersists(t *testing.T) {
	s := newScene(t)
	s.eng.StartDrag(s.aID)
	s.eng.Drag(s.aID, geom.Offset{X: 5})
	res := s.eng.EndDrag(s.aID, geom.Offset{X: 5})

	if res.Offset != (geom.Offset{X: 10}) {
		t.Errorf("EndDrag offset = %v, want (10, 0)", res.Offset)
	}
	if s.a.position == nil || *s.a.position != geom.Pt(2.5, 0) {
		t.Errorf("persisted position = %v, want (2.5, 0)", s.a.position)
	}
	if !s.a.translate.IsZero() {
		t.Errorf("translate not reset: %v", s.a.translate)
	}
	if _, ok := s.eng.Active(s.aID); ok {
		t.Error("gesture still active after EndDrag")
	}
}

func TestDragStaysInContainer(t *testing.T) {
	s := newScene(t)
	s.eng.StartDrag(s.aID)
	res := s.eng.Drag(s.aID, geom.Offset{X: -40, Y: 500})
	if res.Offset != (geom.Offset{Y: 200}) {
		t.Errorf("Drag offset = %v, want (0, 200)", res.Offset)
	}
	if !geom.Rect(0, 0, 400, 300).Contains(res.Rect) {
		t.Errorf("rect %v left the container", res.Rect)
	}
}

func TestResizeEast(t *testing.T) {
	s := newScene(t)
	s.eng.StartResize(s.aID)

	res := s.eng.Resize(s.aID, geom.Offset{X: 300}, East)
	if res.Rect != geom.Rect(0, 0, 400, 100) {
		t.Errorf("Resize rect = %v, want [0,0 400x100]", res.Rect)
	}
	if !res.Offset.IsZero() {
		t.Errorf("east resize moved the origin: %v", res.Offset)
	}
	if s.a.size == nil || *s.a.size != geom.PercentSize(100, 33.3333) {
		t.Errorf("live size = %v, want 100%% x 33.3333%%", s.a.size)
	}

	res = s.eng.Resize(s.aID, geom.Offset{X: 350}, East)
	if res.Rect.Width() != 400 {
		t.Errorf("overshooting resize width = %v, want 400", res.Rect.Width())
	}
}

func TestResizeSnapsMovingEdge(t *testing.T) {
	s := newScene(t)
	s.eng.StartResize(s.aID)
	res := s.eng.EndResize(s.aID, geom.Offset{X: 5}, East)

	if res.Rect != geom.Rect(0, 0, 110, 100) {
		t.Errorf("rect = %v, want [0,0 110x100]", res.Rect)
	}
	if res.Snap != (geom.Offset{X: 5}) {
		t.Errorf("snap = %v, want (5, 0)", res.Snap)
	}
	if s.a.size == nil || *s.a.size != geom.PercentSize(27.5, 33.3333) {
		t.Errorf("persisted size = %v", s.a.size)
	}
	if s.a.position == nil || *s.a.position != geom.Pt(0, 0) {
		t.Errorf("persisted position = %v", s.a.position)
	}
}

func TestResizeWestMovesOrigin(t *testing.T) {
	s := newScene(t)
	s.a.min = geom.PixelSize(20, 20)
	s.eng.StartResize(s.aID)

	res := s.eng.EndResize(s.aID, geom.Offset{X: 95}, West)
	if res.Rect != geom.Rect(80, 0, 20, 100) {
		t.Errorf("rect = %v, want [80,0 20x100]", res.Rect)
	}
	if res.Offset != (geom.Offset{X: 80}) {
		t.Errorf("offset = %v, want (80, 0)", res.Offset)
	}
	if *s.a.position != geom.Pt(20, 0) {
		t.Errorf("position = %v, want (20, 0)", *s.a.position)
	}
}

func TestResizeEmptyDirection(t *testing.T) {
	s := newScene(t)
	s.eng.StartResize(s.aID)
	res := s.eng.Resize(s.aID, geom.Offset{X: 30, Y: 30}, 0)
	if res.Rect != s.a.rect || !res.Offset.IsZero() {
		t.Errorf("empty direction changed the item: %+v", res)
	}
}

func TestResizePreferScale(t *testing.T) {
	s := newScene(t)
	s.a.scaled = true
	s.eng.StartResize(s.aID)

	s.eng.Resize(s.aID, geom.Offset{X: 100, Y: 50}, SouthEast)
	if s.a.scale != (geom.Scale{X: 2, Y: 1.5}) {
		t.Errorf("live scale = %v, want (2, 1.5)", s.a.scale)
	}
	if s.a.size != nil {
		t.Error("scale preview must not set a size")
	}

	s.eng.EndResize(s.aID, geom.Offset{X: 100, Y: 50}, SouthEast)
	if s.a.scale != geom.Identity {
		t.Errorf("scale not reset: %v", s.a.scale)
	}
	if s.a.size == nil || *s.a.size != geom.PercentSize(50, 50) {
		t.Errorf("persisted size = %v, want 50%% x 50%%", s.a.size)
	}
}

func TestCancelRestores(t *testing.T) {
	s := newScene(t)
	s.eng.StartResize(s.aID)
	s.eng.Resize(s.aID, geom.Offset{X: 50}, East)
	s.eng.Cancel(s.aID)

	if *s.a.size != geom.PercentSize(25, 33.3333) {
		t.Errorf("size after cancel = %v, want the original", *s.a.size)
	}
	if s.a.position != nil {
		t.Error("cancel must not persist a position")
	}
	if _, ok := s.eng.Active(s.aID); ok {
		t.Error("gesture still active after Cancel")
	}
}

func TestUnregisteredIsNoop(t *testing.T) {
	s := newScene(t)
	ghost := ItemID{1}

	if s.eng.StartDrag(ghost) || s.eng.StartResize(ghost) {
		t.Error("start on unknown item should fail")
	}
	if res := s.eng.Drag(ghost, geom.Offset{X: 1}); res.Applied {
		t.Error("Drag on unknown item applied")
	}
	if res := s.eng.EndResize(ghost, geom.Offset{X: 1}, East); res.Applied {
		t.Error("EndResize on unknown item applied")
	}
	if _, ok := s.eng.Activate(ghost); ok {
		t.Error("Activate on unknown item succeeded")
	}
	s.eng.Cancel(ghost)
	s.eng.Unregister(ghost)

	s.eng.Unregister(s.aID)
	s.eng.Unregister(s.aID)
	if res := s.eng.Drag(s.aID, geom.Offset{X: 1}); res.Applied {
		t.Error("Drag after Unregister applied")
	}
	if _, ok := s.eng.Register(ContainerID{9}, s.a, ElementID{}); ok {
		t.Error("Register into unknown container succeeded")
	}
}

func TestUnregisterMidGestureInvalidates(t *testing.T) {
	width := 400.0
	eng := New(Options{})
	cid := eng.AddContainer(ContainerFunc(func() geom.Rectangle { return geom.Rect(0, 0, width, 300) }))
	a := &stubItem{rect: geom.Rect(0, 0, 100, 100)}
	b := &stubItem{rect: geom.Rect(0, 150, 100, 100)}
	aID, _ := eng.Register(cid, a, ElementID{})
	bID, _ := eng.Register(cid, b, ElementID{})

	eng.StartDrag(aID)
	eng.Drag(aID, geom.Offset{X: 10})
	eng.Unregister(aID)

	width = 200
	res := eng.Drag(bID, geom.Offset{X: 250})
	if res.Offset != (geom.Offset{X: 100}) {
		t.Errorf("Drag offset = %v, want (100, 0)", res.Offset)
	}
	if !geom.Rect(0, 0, 200, 300).Contains(res.Rect) {
		t.Errorf("rect %v left the resized container", res.Rect)
	}
}

func TestColocatedItemsIgnoreEachOther(t *testing.T) {
	s := newScene(t)
	el, _ := s.eng.Element(s.bID)
	twin := &stubItem{rect: geom.Rect(105, 0, 10, 100), mode: geom.SnapBoth, radius: 50}
	twinID, _ := s.eng.Register(s.cid, twin, el)

	for _, sib := range s.eng.Siblings(s.bID) {
		if sib.Rect == twin.rect {
			t.Error("co-located item listed as sibling")
		}
	}
	if got := len(s.eng.Siblings(twinID)); got != 1 {
		t.Errorf("twin has %d siblings, want 1", got)
	}
}

func TestRectCache(t *testing.T) {
	s := newScene(t)
	s.eng.StartDrag(s.aID)
	if res := s.eng.Drag(s.aID, geom.Offset{X: 5}); res.Offset.X != 10 {
		t.Fatalf("first drag offset = %v", res.Offset)
	}

	// Sibling moves mid-gesture; the snapshot taken on first use wins.
	s.b.rect = geom.Rect(150, 0, 90, 100)
	if res := s.eng.Drag(s.aID, geom.Offset{X: 5}); res.Offset.X != 10 {
		t.Errorf("cached drag offset = %v, want 10", res.Offset.X)
	}
	s.eng.EndDrag(s.aID, geom.Offset{})

	s.a.rect = geom.Rect(0, 0, 100, 100)
	s.eng.StartDrag(s.aID)
	if res := s.eng.Drag(s.aID, geom.Offset{X: 5}); res.Offset.X != 5 {
		t.Errorf("drag after invalidation = %v, want 5", res.Offset.X)
	}
}

func TestOwnRectSnapshotted(t *testing.T) {
	s := newScene(t)
	s.eng.StartDrag(s.aID)
	// A host applying the preview to its bounding box must not feed back.
	s.a.rect = geom.Rect(10, 0, 100, 100)
	if res := s.eng.Drag(s.aID, geom.Offset{Y: 150}); res.Rect != geom.Rect(0, 150, 100, 100) {
		t.Errorf("rect = %v, want [0,150 100x100]", res.Rect)
	}
}

func TestVisibleEdgesOfItem(t *testing.T) {
	s := newScene(t)
	if got := len(s.eng.VisibleEdges(s.aID)); got != 4 {
		t.Errorf("a sees %d edges, want 4", got)
	}
	if s.eng.VisibleEdges(ItemID{7}) != nil {
		t.Error("unknown item should see no edges")
	}
}

func TestRemoveContainer(t *testing.T) {
	s := newScene(t)
	s.eng.RemoveContainer(s.cid)
	if _, ok := s.eng.Item(s.aID); ok {
		t.Error("item survived its container")
	}
	if len(s.eng.Items(s.cid)) != 0 {
		t.Error("container still lists items")
	}
}

func TestGestureDuration(t *testing.T) {
	now := time.Unix(0, 0)
	eng := New(Options{Now: func() time.Time { return now }})
	cid := eng.AddContainer(FixedContainer(geom.Rect(0, 0, 100, 100)))
	id, _ := eng.Register(cid, &stubItem{rect: geom.Rect(0, 0, 10, 10)}, ElementID{})

	eng.StartDrag(id)
	if kind, ok := eng.Active(id); !ok || kind != GestureDrag {
		t.Fatalf("Active = %v, %v", kind, ok)
	}
	now = now.Add(time.Second)
	eng.EndDrag(id, geom.Offset{})
	if _, ok := eng.Active(id); ok {
		t.Error("still active")
	}
}
