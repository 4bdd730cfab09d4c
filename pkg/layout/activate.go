package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/dashlayout/pkg/observability"
)

// priorityGroup is the set of items attached to one element. Members of a
// group are indistinguishable for stacking and share one priority.
type priorityGroup struct {
	element  ElementID
	items    []ItemID
	priority int
}

// Activate raises an item above every other item of its container.
//
// Priorities are renumbered densely: the remaining elements are ranked
// 0..n-1 by their current priority, keeping ties tied and registration
// order otherwise, and the activated element gets n. Items co-located with
// the activated item are raised with it. Unknown items are ignored; the
// second result is false in that case.
func (e *Engine) Activate(id ItemID) (int, bool) {
	if _, ok := e.reg.items[id]; !ok {
		e.logger.Debug("activate ignored: item not registered", "item", id)
		observability.Gesture().OnIgnored("activate", id.String())
		return 0, false
	}
	cid := e.reg.containerOf[id]
	target := e.reg.elementOf[id]

	var (
		groups []*priorityGroup
		raised *priorityGroup
	)
	byElement := make(map[ElementID]*priorityGroup)
	for _, m := range e.reg.members[cid] {
		el := e.reg.elementOf[m]
		p := e.reg.items[m].Priority()
		g, ok := byElement[el]
		if !ok {
			g = &priorityGroup{element: el, priority: p}
			byElement[el] = g
			if el == target {
				raised = g
			} else {
				groups = append(groups, g)
			}
		}
		g.items = append(g.items, m)
		g.priority = max(g.priority, p)
	}

	slices.SortStableFunc(groups, func(a, b *priorityGroup) int { return cmp.Compare(a.priority, b.priority) })

	rank := -1
	for i, g := range groups {
		if i == 0 || g.priority != groups[i-1].priority {
			rank++
		}
		e.assign(g, rank)
	}
	top := rank + 1
	e.assign(raised, top)

	e.logger.Debug("item activated", "item", id, "priority", top)
	observability.Registry().OnActivate(cid.String(), id.String(), top)
	return top, true
}

func (e *Engine) assign(g *priorityGroup, priority int) {
	for _, m := range g.items {
		if it := e.reg.items[m]; it.Priority() != priority {
			it.SetPriority(priority)
		}
	}
}
