// Package scene loads dashboard scenes from TOML files and instantiates
// them on a layout engine.
//
// A scene lists containers, the items inside each container and, optionally,
// a script of gestures to replay against them:
//
//	[[container]]
//	name = "board"
//	width = 400
//	height = 300
//
//	[[container.item]]
//	name = "chart"
//	rect = [0, 0, 100, 100]
//	snap = "outer"
//	snap_radius = 20
//
//	[[gesture]]
//	item = "chart"
//	kind = "drag"
//	moves = [[5, 0], [12, 0]]
//
// Item rectangles are given in pixels relative to their container's
// top-left corner. Item names are unique across the whole scene.
package scene

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
)

// Defaults applied by [Scene.ValidateAndSetDefaults].
const (
	DefaultMinSizeUnit = "px"
	DefaultCellWidth   = 10
	DefaultCellHeight  = 20
)

// GestureKind names a scripted gesture.
type GestureKind string

const (
	KindDrag     GestureKind = "drag"
	KindResize   GestureKind = "resize"
	KindActivate GestureKind = "activate"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Containers []Container `toml:"container" json:"containers"`
	Gestures   []Gesture   `toml:"gesture,omitempty" json:"gestures,omitempty"`
	Playground Playground  `toml:"playground" json:"playground"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Container is a named container and its items.
type Container struct {
	Name   string  `toml:"name" json:"name"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
	Items  []Item  `toml:"item" json:"items"`
}

// Item describes one layout item.
type Item struct {
	Name string `toml:"name" json:"name"`
	// Rect is x, y, width and height in pixels.
	Rect     []float64 `toml:"rect" json:"rect"`
	Priority int       `toml:"priority" json:"priority"`

	Snap       geom.SnapMode `toml:"snap" json:"snap"`
	SnapRadius float64       `toml:"snap_radius" json:"snap_radius"`

	// MinSize is width and height in MinSizeUnit.
	MinSize     []float64 `toml:"min_size,omitempty" json:"min_size,omitempty"`
	MinSizeUnit string    `toml:"min_size_unit,omitempty" json:"min_size_unit,omitempty"`
	PreferScale bool      `toml:"prefer_scale,omitempty" json:"prefer_scale,omitempty"`

	// Element co-locates items of the same container that share it.
	Element string `toml:"element,omitempty" json:"element,omitempty"`
}

// Gesture is one scripted drag, resize or activation.
type Gesture struct {
	Item      string      `toml:"item" json:"item"`
	Kind      GestureKind `toml:"kind" json:"kind"`
	Direction string      `toml:"direction,omitempty" json:"direction,omitempty"`
	// Moves are pointer offsets from the gesture start. Every move but the
	// last is a live preview; the last one ends the gesture.
	Moves [][]float64 `toml:"moves,omitempty" json:"moves,omitempty"`
}

// Playground holds settings for the terminal playground.
type Playground struct {
	// CellWidth and CellHeight are the pixels covered by one terminal cell.
	CellWidth  int `toml:"cell_width" json:"cell_width"`
	CellHeight int `toml:"cell_height" json:"cell_height"`
}

// Bounds returns the item rectangle. It is only meaningful after validation.
func (it Item) Bounds() geom.Rectangle {
	return geom.Rect(it.Rect[0], it.Rect[1], it.Rect[2], it.Rect[3])
}

// MinimumSize returns the item's minimum size in its unit.
func (it Item) MinimumSize() geom.Size {
	if len(it.MinSize) != 2 {
		return geom.PixelSize(0, 0)
	}
	unit, err := geom.ParseUnit(it.MinSizeUnit)
	if err != nil {
		unit = geom.Pixels
	}
	return geom.Size{Width: it.MinSize[0], Height: it.MinSize[1], Unit: unit}
}

// Offsets converts the gesture's moves into offsets.
func (g Gesture) Offsets() []geom.Offset {
	out := make([]geom.Offset, 0, len(g.Moves))
	for _, m := range g.Moves {
		if len(m) == 2 {
			out = append(out, geom.Offset{X: m[0], Y: m[1]})
		}
	}
	return out
}

// =============================================================================
// Loading
// =============================================================================

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes the scene as TOML.
func (s *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Marshal returns the scene as TOML.
func (s *Scene) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Validation
// =============================================================================

// ValidateAndSetDefaults checks the scene and fills in defaults.
// This method is idempotent.
func (s *Scene) ValidateAndSetDefaults() error {
	if s.validated {
		return nil
	}
	if len(s.Containers) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene has no containers")
	}

	containers := make(map[string]bool)
	items := make(map[string]bool)
	for ci := range s.Containers {
		c := &s.Containers[ci]
		if err := c.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "container %d", ci+1)
		}
		if containers[c.Name] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate container %q", c.Name)
		}
		containers[c.Name] = true

		for ii := range c.Items {
			it := &c.Items[ii]
			if err := it.validate(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScene, err, "container %q", c.Name)
			}
			if items[it.Name] {
				return errors.New(errors.ErrCodeInvalidScene, "duplicate item %q", it.Name)
			}
			items[it.Name] = true
		}
	}

	for i := range s.Gestures {
		g := &s.Gestures[i]
		if !items[g.Item] {
			return errors.New(errors.ErrCodeItemNotFound, "gesture %d: unknown item %q", i+1, g.Item)
		}
		if err := g.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGesture, err, "gesture %d", i+1)
		}
	}

	if s.Playground.CellWidth <= 0 {
		s.Playground.CellWidth = DefaultCellWidth
	}
	if s.Playground.CellHeight <= 0 {
		s.Playground.CellHeight = DefaultCellHeight
	}

	s.validated = true
	return nil
}

func (c *Container) validate() error {
	if err := errors.ValidateName("container", c.Name); err != nil {
		return err
	}
	if err := errors.ValidateLength("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidateLength("height", c.Height); err != nil {
		return err
	}
	if c.Width == 0 || c.Height == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "container %q has no area", c.Name)
	}
	return nil
}

func (it *Item) validate() error {
	if err := errors.ValidateName("item", it.Name); err != nil {
		return err
	}
	if len(it.Rect) != 4 {
		return errors.New(errors.ErrCodeInvalidScene, "item %q: rect needs 4 numbers (x, y, width, height), got %d", it.Name, len(it.Rect))
	}
	for i, field := range []string{"x", "y"} {
		if err := errors.ValidateCoordinate(field, it.Rect[i]); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "item %q", it.Name)
		}
	}
	for i, field := range []string{"width", "height"} {
		if err := errors.ValidateLength(field, it.Rect[2+i]); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "item %q", it.Name)
		}
	}
	if err := errors.ValidateLength("snap_radius", it.SnapRadius); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "item %q", it.Name)
	}

	if len(it.MinSize) != 0 && len(it.MinSize) != 2 {
		return errors.New(errors.ErrCodeInvalidScene, "item %q: min_size needs 2 numbers (width, height)", it.Name)
	}
	for _, v := range it.MinSize {
		if err := errors.ValidateLength("min_size", v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "item %q", it.Name)
		}
	}
	if it.MinSizeUnit == "" {
		it.MinSizeUnit = DefaultMinSizeUnit
	}
	if _, err := geom.ParseUnit(it.MinSizeUnit); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "item %q", it.Name)
	}

	if it.Element != "" {
		if err := errors.ValidateName("element", it.Element); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gesture) validate() error {
	switch g.Kind {
	case KindDrag, KindResize:
		if len(g.Moves) == 0 {
			return errors.New(errors.ErrCodeInvalidGesture, "%s needs at least one move", g.Kind)
		}
	case KindActivate:
		if len(g.Moves) != 0 {
			return errors.New(errors.ErrCodeInvalidGesture, "activate takes no moves")
		}
	default:
		return errors.New(errors.ErrCodeInvalidGesture, "unknown kind %q (must be drag, resize or activate)", g.Kind)
	}

	if g.Kind == KindResize {
		if err := layout.ValidateDirection(g.Direction); err != nil {
			return err
		}
	} else if g.Direction != "" {
		return errors.New(errors.ErrCodeInvalidGesture, "direction only applies to resize")
	}

	for i, m := range g.Moves {
		if len(m) != 2 {
			return errors.New(errors.ErrCodeInvalidGesture, "move %d needs 2 numbers (dx, dy)", i+1)
		}
		for _, v := range m {
			if err := errors.ValidateCoordinate("move", v); err != nil {
				return err
			}
		}
	}
	return nil
}
