package layout

import (
	"testing"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

func TestActivate(t *testing.T) {
	eng := New(Options{})
	cid := eng.AddContainer(FixedContainer(geom.Rect(0, 0, 100, 100)))

	items := map[string]*stubItem{
		"a": {priority: 0},
		"b": {priority: 3},
		"c": {priority: 3},
		"d": {priority: 7},
	}
	ids := make(map[string]ItemID)
	for _, name := range []string{"a", "b", "c", "d"} {
		ids[name], _ = eng.Register(cid, items[name], ElementID{})
	}
	el, _ := eng.Element(ids["a"])
	twin := &stubItem{priority: 0}
	eng.Register(cid, twin, el)

	top, ok := eng.Activate(ids["a"])
	if !ok {
		t.Fatal("Activate failed")
	}

	want := map[string]int{"a": 2, "b": 0, "c": 0, "d": 1}
	for name, p := range want {
		if got := items[name].priority; got != p {
			t.Errorf("priority of %s = %d, want %d", name, got, p)
		}
	}
	if top != 2 {
		t.Errorf("Activate returned %d, want 2", top)
	}
	if twin.priority != 2 {
		t.Errorf("co-located item priority = %d, want 2", twin.priority)
	}
}

func TestActivateKeepsRelativeOrder(t *testing.T) {
	eng := New(Options{})
	cid := eng.AddContainer(FixedContainer(geom.Rect(0, 0, 100, 100)))

	stubs := []*stubItem{{priority: 5}, {priority: 1}, {priority: 9}, {priority: 1}}
	ids := make([]ItemID, len(stubs))
	for i, s := range stubs {
		ids[i], _ = eng.Register(cid, s, ElementID{})
	}

	for _, i := range []int{1, 0, 3, 3, 2, 1, 0} {
		before := make([]int, len(stubs))
		for j, s := range stubs {
			before[j] = s.priority
		}

		top, _ := eng.Activate(ids[i])
		for j, s := range stubs {
			if j == i {
				continue
			}
			if s.priority >= top {
				t.Fatalf("after activating %d: item %d has %d >= %d", i, j, s.priority, top)
			}
			for k := range stubs {
				if k == i || k == j {
					continue
				}
				if (before[j] < before[k]) != (s.priority < stubs[k].priority) {
					t.Fatalf("after activating %d: order of %d and %d changed", i, j, k)
				}
			}
		}
		if top > len(stubs)-1 {
			t.Fatalf("priorities not dense: top %d", top)
		}
	}
}

func TestActivateAlone(t *testing.T) {
	eng := New(Options{})
	cid := eng.AddContainer(FixedContainer(geom.Rect(0, 0, 100, 100)))
	s := &stubItem{priority: 42}
	id, _ := eng.Register(cid, s, ElementID{})

	if top, _ := eng.Activate(id); top != 0 || s.priority != 0 {
		t.Errorf("single item activated to %d (stored %d), want 0", top, s.priority)
	}
}
