package layout

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// registry owns the association tables between items, containers and
// elements. Items and containers themselves belong to the host.
type registry struct {
	containers  map[ContainerID]Container
	members     map[ContainerID][]ItemID
	items       map[ItemID]Item
	containerOf map[ItemID]ContainerID
	elementOf   map[ItemID]ElementID
}

func newRegistry() *registry {
	return &registry{
		containers:  make(map[ContainerID]Container),
		members:     make(map[ContainerID][]ItemID),
		items:       make(map[ItemID]Item),
		containerOf: make(map[ItemID]ContainerID),
		elementOf:   make(map[ItemID]ElementID),
	}
}

func (r *registry) addContainer(c Container) ContainerID {
	id := ContainerID(uuid.New())
	r.containers[id] = c
	return id
}

func (r *registry) add(cid ContainerID, item Item, element ElementID) (ItemID, bool) {
	if _, ok := r.containers[cid]; !ok {
		return ItemID{}, false
	}
	if element.IsZero() {
		element = NewElementID()
	}
	id := ItemID(uuid.New())
	r.items[id] = item
	r.containerOf[id] = cid
	r.elementOf[id] = element
	r.members[cid] = append(r.members[cid], id)
	return id, true
}

func (r *registry) remove(id ItemID) (ContainerID, bool) {
	cid, ok := r.containerOf[id]
	if !ok {
		return ContainerID{}, false
	}
	delete(r.items, id)
	delete(r.containerOf, id)
	delete(r.elementOf, id)
	r.members[cid] = slices.DeleteFunc(r.members[cid], func(m ItemID) bool { return m == id })
	if len(r.members[cid]) == 0 {
		delete(r.members, cid)
	}
	return cid, true
}

func (r *registry) removeContainer(cid ContainerID) []ItemID {
	ids := slices.Clone(r.members[cid])
	for _, id := range ids {
		r.remove(id)
	}
	delete(r.containers, cid)
	return ids
}

// siblings returns the items sharing id's container, excluding id and
// every item co-located with it, in registration order.
func (r *registry) siblings(id ItemID) []ItemID {
	cid, element := r.containerOf[id], r.elementOf[id]
	var out []ItemID
	for _, m := range r.members[cid] {
		if m == id || r.elementOf[m] == element {
			continue
		}
		out = append(out, m)
	}
	return out
}

// rectCache holds rectangles snapshotted during gestures so that live
// transforms applied by the host do not feed back into the computation.
type rectCache struct {
	containers map[ContainerID]geom.Rectangle
	items      map[ItemID]geom.Rectangle
}

func newRectCache() *rectCache {
	return &rectCache{
		containers: make(map[ContainerID]geom.Rectangle),
		items:      make(map[ItemID]geom.Rectangle),
	}
}

// container returns the cached rectangle of a container, reading it from
// the host on a miss. Misses are only stored when store is set.
func (c *rectCache) container(id ContainerID, src Container, store bool) geom.Rectangle {
	if r, ok := c.containers[id]; ok {
		return r
	}
	r := src.BoundingRectangle()
	if store {
		c.containers[id] = r
	}
	return r
}

// item is the item counterpart of container.
func (c *rectCache) item(id ItemID, src Item, store bool) geom.Rectangle {
	if r, ok := c.items[id]; ok {
		return r
	}
	r := src.BoundingRectangle()
	if store {
		c.items[id] = r
	}
	return r
}

func (c *rectCache) snapshot(cid ContainerID, cont Container, id ItemID, item Item) {
	c.containers[cid] = cont.BoundingRectangle()
	c.items[id] = item.BoundingRectangle()
}

// invalidate drops the rectangles of a container's members for which
// busy reports false. The container rectangle is dropped too unless one
// of its members is still busy.
func (c *rectCache) invalidate(cid ContainerID, members []ItemID, busy func(ItemID) bool) {
	keepContainer := false
	for _, m := range members {
		if busy(m) {
			keepContainer = true
			continue
		}
		delete(c.items, m)
	}
	if !keepContainer {
		delete(c.containers, cid)
	}
}

func (c *rectCache) forget(id ItemID) {
	delete(c.items, id)
}
