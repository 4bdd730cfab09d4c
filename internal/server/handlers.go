package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dlerrors "github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// ItemView is the JSON form of an item.
type ItemView struct {
	Name      string         `json:"name"`
	Container string         `json:"container"`
	Rect      geom.Rectangle `json:"rect"`
	Position  geom.Point     `json:"position"`
	Size      geom.Size      `json:"size"`
	Priority  int            `json:"priority"`
	Transform string         `json:"transform,omitempty"`
	Gesture   string         `json:"gesture,omitempty"`
}

// MoveRequest is the body of move and end calls. Direction is only read
// for resizes.
type MoveRequest struct {
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	Direction string  `json:"direction,omitempty"`
}

// ContainerRequest is the body of a container resize.
type ContainerRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type activateResponse struct {
	Item     string `json:"item"`
	Priority int    `json:"priority"`
}

func (s *Server) handleHealth(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusOK, map[string]string{"status": status})
	}
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.layout.Snapshot()
	s.mu.Unlock()
	s.writeJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ItemView
	for _, b := range s.layout.Boards {
		for _, name := range b.Items() {
			e, _ := s.layout.Lookup(name)
			out = append(out, s.view(name, e))
		}
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.view(name, e))
}

func (s *Server) handleEdges(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	edges := s.layout.Engine.VisibleEdges(e.ID)
	if edges == nil {
		edges = []geom.Edge{}
	}
	s.writeJSON(w, r, http.StatusOK, edges)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, _ := s.layout.Engine.Activate(e.ID)
	s.logger.Info("activated", "item", name, "priority", p)
	s.writeJSON(w, r, http.StatusOK, activateResponse{Item: name, Priority: p})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.layout.Engine.Cancel(e.ID)
	s.writeJSON(w, r, http.StatusOK, s.view(name, e))
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := gestureKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if running, ok := s.layout.Engine.Active(e.ID); ok {
		s.writeError(w, r, dlerrors.New(dlerrors.ErrCodeInvalidGesture, "%s already running on %q", running, name))
		return
	}
	switch kind {
	case layout.GestureDrag:
		s.layout.Engine.StartDrag(e.ID)
	case layout.GestureResize:
		s.layout.Engine.StartResize(e.ID)
	}
	s.writeJSON(w, r, http.StatusOK, s.view(name, e))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) { s.step(w, r, false) }

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) { s.step(w, r, true) }

func (s *Server) step(w http.ResponseWriter, r *http.Request, final bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := gestureKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req MoveRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if running, ok := s.layout.Engine.Active(e.ID); !ok || running != kind {
		s.writeError(w, r, dlerrors.New(dlerrors.ErrCodeInvalidGesture, "no %s running on %q", kind, name))
		return
	}

	raw := geom.Offset{X: req.DX, Y: req.DY}
	eng := s.layout.Engine
	var res layout.Result
	switch {
	case kind == layout.GestureDrag && final:
		res = eng.EndDrag(e.ID, raw)
	case kind == layout.GestureDrag:
		res = eng.Drag(e.ID, raw)
	default:
		if err := layout.ValidateDirection(req.Direction); err != nil {
			s.writeError(w, r, err)
			return
		}
		dir := layout.ParseDirection(req.Direction)
		if final {
			res = eng.EndResize(e.ID, raw, dir)
		} else {
			res = eng.Resize(e.ID, raw, dir)
		}
	}
	if final {
		s.logger.Info(kind.String()+" ended", "item", name, "rect", res.Rect)
	}
	s.writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) handleResizeContainer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var req ContainerRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	if err := s.layout.ResizeBoard(name, req.Width, req.Height); err != nil {
		s.writeError(w, r, err)
		return
	}
	b, _ := s.layout.Board(name)
	rect := b.BoundingRectangle()
	s.writeJSON(w, r, http.StatusOK, scene.Container{Name: name, Width: rect.Width(), Height: rect.Height()})
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) entry(r *http.Request) (string, scene.Entry, error) {
	name := chi.URLParam(r, "name")
	e, err := s.layout.MustLookup(name)
	return name, e, err
}

func (s *Server) view(name string, e scene.Entry) ItemView {
	v := ItemView{
		Name:      name,
		Container: e.Board.Name,
		Rect:      e.Box.BoundingRectangle(),
		Position:  e.Box.Position(),
		Size:      e.Box.Size(),
		Priority:  e.Box.Priority(),
		Transform: e.Box.Transform(),
	}
	if kind, ok := s.layout.Engine.Active(e.ID); ok {
		v.Gesture = kind.String()
	}
	return v
}

func gestureKind(r *http.Request) (layout.GestureKind, error) {
	switch k := chi.URLParam(r, "kind"); k {
	case "drag":
		return layout.GestureDrag, nil
	case "resize":
		return layout.GestureResize, nil
	default:
		return 0, dlerrors.New(dlerrors.ErrCodeNotFound, "unknown gesture kind %q", k)
	}
}
