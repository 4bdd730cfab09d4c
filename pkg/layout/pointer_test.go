package layout

import (
	"testing"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

func TestTrackerDrag(t *testing.T) {
	s := newScene(t)
	tr := NewTracker(s.eng)

	if !tr.DragStart(s.aID, geom.Pt(50, 50)) {
		t.Fatal("DragStart failed")
	}
	if kind, _, ok := tr.Gesture(s.aID); !ok || kind != GestureDrag {
		t.Fatalf("Gesture = %v, %v", kind, ok)
	}

	res := tr.PointerMove(s.aID, geom.Pt(55, 50))
	if res.Offset != (geom.Offset{X: 10}) {
		t.Errorf("PointerMove offset = %v, want (10, 0)", res.Offset)
	}
	// Offsets are measured from the pointer-down point, not accumulated.
	res = tr.PointerMove(s.aID, geom.Pt(55, 50))
	if res.Offset != (geom.Offset{X: 10}) {
		t.Errorf("repeated PointerMove offset = %v, want (10, 0)", res.Offset)
	}

	res = tr.PointerUp(s.aID, geom.Pt(60, 50))
	if !res.Applied || *s.a.position != geom.Pt(2.5, 0) {
		t.Errorf("PointerUp persisted %v", s.a.position)
	}
	if res := tr.PointerMove(s.aID, geom.Pt(90, 90)); res.Applied {
		t.Error("PointerMove after PointerUp applied")
	}
}

func TestTrackerResize(t *testing.T) {
	s := newScene(t)
	tr := NewTracker(s.eng)

	tr.ResizeStart(s.aID, South, geom.Pt(50, 100))
	res := tr.PointerMove(s.aID, geom.Pt(50, 150))
	if res.Rect != geom.Rect(0, 0, 100, 150) {
		t.Errorf("rect = %v, want [0,0 100x150]", res.Rect)
	}
	tr.Cancel(s.aID)
	if _, _, ok := tr.Gesture(s.aID); ok {
		t.Error("gesture survived Cancel")
	}
	if _, ok := s.eng.Active(s.aID); ok {
		t.Error("engine gesture survived Cancel")
	}
}

func TestTrackerUnknownItem(t *testing.T) {
	tr := NewTracker(New(Options{}))
	if tr.DragStart(ItemID{3}, geom.Pt(0, 0)) {
		t.Error("DragStart on unknown item succeeded")
	}
	if res := tr.PointerUp(ItemID{3}, geom.Pt(0, 0)); res.Applied {
		t.Error("PointerUp on unknown item applied")
	}
}

func TestTrackerDropsUnregistered(t *testing.T) {
	s := newScene(t)
	tr := NewTracker(s.eng)

	tr.DragStart(s.aID, geom.Pt(50, 50))
	s.eng.Unregister(s.aID)

	if res := tr.PointerMove(s.aID, geom.Pt(60, 50)); res.Applied {
		t.Error("PointerMove on unregistered item applied")
	}
	if _, _, ok := tr.Gesture(s.aID); ok {
		t.Error("tracker kept the gesture of an unregistered item")
	}
	if len(tr.active) != 0 {
		t.Errorf("tracker holds %d gestures, want 0", len(tr.active))
	}
}
