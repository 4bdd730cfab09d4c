package scene

import (
	"github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/layout"
)

// Step is one engine call made while replaying a gesture.
type Step struct {
	Gesture int         `json:"gesture"`
	Item    string      `json:"item"`
	Kind    GestureKind `json:"kind"`
	// Move is the index of the move within the gesture.
	Move int `json:"move"`
	// Final marks the call that ended the gesture.
	Final  bool          `json:"final"`
	Result layout.Result `json:"result"`
	// Priority is the item's priority after the step.
	Priority int `json:"priority"`
}

// Replay runs the scene's scripted gestures in order and returns every step.
func (l *Layout) Replay() ([]Step, error) {
	var steps []Step
	for i, g := range l.scene.Gestures {
		s, err := l.Run(i, g)
		if err != nil {
			return steps, err
		}
		steps = append(steps, s...)
	}
	return steps, nil
}

// Run performs a single gesture: every move but the last is a live
// preview and the last one ends the gesture. Activations are one step.
func (l *Layout) Run(index int, g Gesture) ([]Step, error) {
	if err := g.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGesture, err, "gesture %d", index+1)
	}
	e, err := l.MustLookup(g.Item)
	if err != nil {
		return nil, err
	}
	eng := l.Engine

	step := func(move int, final bool, res layout.Result) Step {
		return Step{
			Gesture:  index,
			Item:     g.Item,
			Kind:     g.Kind,
			Move:     move,
			Final:    final,
			Result:   res,
			Priority: e.Box.Priority(),
		}
	}

	switch g.Kind {
	case KindActivate:
		eng.Activate(e.ID)
		return []Step{step(0, true, layout.Result{Applied: true, Rect: e.Box.BoundingRectangle()})}, nil

	case KindDrag:
		eng.StartDrag(e.ID)
		moves := g.Offsets()
		steps := make([]Step, 0, len(moves))
		for i, m := range moves {
			if i == len(moves)-1 {
				steps = append(steps, step(i, true, eng.EndDrag(e.ID, m)))
			} else {
				steps = append(steps, step(i, false, eng.Drag(e.ID, m)))
			}
		}
		return steps, nil

	default:
		dir := layout.ParseDirection(g.Direction)
		eng.StartResize(e.ID)
		moves := g.Offsets()
		steps := make([]Step, 0, len(moves))
		for i, m := range moves {
			if i == len(moves)-1 {
				steps = append(steps, step(i, true, eng.EndResize(e.ID, m, dir)))
			} else {
				steps = append(steps, step(i, false, eng.Resize(e.ID, m, dir)))
			}
		}
		return steps, nil
	}
}
