package scene

import (
	"github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/host"
	"github.com/matzehuels/dashlayout/pkg/layout"
)

// Board is a scene container registered on an engine. Its rectangle can be
// changed with [Layout.ResizeBoard]; boxes follow because they are stored
// in percent.
type Board struct {
	Name string
	ID   layout.ContainerID

	rect  geom.Rectangle
	items []string
}

// BoundingRectangle implements [layout.Container].
func (b *Board) BoundingRectangle() geom.Rectangle { return b.rect }

// Items returns the names of the board's items in scene order.
func (b *Board) Items() []string { return append([]string(nil), b.items...) }

// Entry ties a scene item to its engine handle and host box.
type Entry struct {
	ID    layout.ItemID
	Box   *host.Box
	Board *Board
}

// Layout is a scene instantiated on an engine.
type Layout struct {
	Engine *layout.Engine
	Boards []*Board

	entries map[string]Entry
	names   map[layout.ItemID]string
	scene   *Scene
}

// Build registers every container and item of the scene on eng, backed by
// [host.Box] items. The scene is validated first.
func (s *Scene) Build(eng *layout.Engine) (*Layout, error) {
	if err := s.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	l := &Layout{
		Engine:  eng,
		entries: make(map[string]Entry),
		names:   make(map[layout.ItemID]string),
		scene:   s,
	}
	for _, c := range s.Containers {
		board := &Board{Name: c.Name, rect: geom.Rect(0, 0, c.Width, c.Height)}
		board.ID = eng.AddContainer(board)
		l.Boards = append(l.Boards, board)

		elements := make(map[string]layout.ElementID)
		for _, it := range c.Items {
			box := host.NewBox(it.Name, board, it.Bounds(), host.Config{
				Priority:    it.Priority,
				SnapMode:    it.Snap,
				SnapRadius:  it.SnapRadius,
				MinSize:     it.MinimumSize(),
				PreferScale: it.PreferScale,
			})

			var el layout.ElementID
			if it.Element != "" {
				if _, ok := elements[it.Element]; !ok {
					elements[it.Element] = layout.NewElementID()
				}
				el = elements[it.Element]
			}

			id, ok := eng.Register(board.ID, box, el)
			if !ok {
				return nil, errors.New(errors.ErrCodeInternal, "register %q: container %q vanished", it.Name, c.Name)
			}
			l.entries[it.Name] = Entry{ID: id, Box: box, Board: board}
			l.names[id] = it.Name
			board.items = append(board.items, it.Name)
		}
	}
	return l, nil
}

// Lookup returns the entry of a named item.
func (l *Layout) Lookup(name string) (Entry, bool) {
	e, ok := l.entries[name]
	return e, ok
}

// MustLookup is Lookup returning a coded error for unknown names.
func (l *Layout) MustLookup(name string) (Entry, error) {
	e, ok := l.entries[name]
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeItemNotFound, "unknown item %q", name)
	}
	return e, nil
}

// Name returns the scene name of a registered item.
func (l *Layout) Name(id layout.ItemID) string { return l.names[id] }

// Board returns a board by name.
func (l *Layout) Board(name string) (*Board, bool) {
	for _, b := range l.Boards {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// ResizeBoard changes a board's size and drops the engine's cached
// rectangles for it.
func (l *Layout) ResizeBoard(name string, width, height float64) error {
	b, ok := l.Board(name)
	if !ok {
		return errors.New(errors.ErrCodeContainerNotFound, "unknown container %q", name)
	}
	if err := errors.ValidateLength("width", width); err != nil {
		return err
	}
	if err := errors.ValidateLength("height", height); err != nil {
		return err
	}
	b.rect = geom.Rect(b.rect.Left(), b.rect.Top(), width, height)
	l.Engine.Invalidate(b.ID)
	return nil
}

// Snapshot returns the scene with every item at its current persisted
// placement and priority. Gestures are not included.
func (l *Layout) Snapshot() *Scene {
	out := &Scene{Playground: l.scene.Playground}
	for ci, c := range l.scene.Containers {
		board := l.Boards[ci]
		nc := Container{Name: c.Name, Width: board.rect.Width(), Height: board.rect.Height()}
		for _, it := range c.Items {
			box := l.entries[it.Name].Box
			r := box.BoundingRectangle()
			it.Rect = []float64{r.Left() - board.rect.Left(), r.Top() - board.rect.Top(), r.Width(), r.Height()}
			it.Priority = box.Priority()
			nc.Items = append(nc.Items, it)
		}
		out.Containers = append(out.Containers, nc)
	}
	return out
}
