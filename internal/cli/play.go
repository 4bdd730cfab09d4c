package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// playHeader is the number of terminal lines above the board.
const playHeader = 2

// Cell owners that are not boxes.
const (
	ownerEmpty = -1
	ownerEdge  = -2
)

var (
	playEmptyStyle = lipgloss.NewStyle().Foreground(colorDim)
	playEdgeStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	playHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the play command, an interactive terminal playground.
func (c *CLI) playCommand() *cobra.Command {
	var replay bool

	cmd := &cobra.Command{
		Use:   "play [scene.toml]",
		Short: "Drag and resize a scene's items with the mouse",
		Long: `Open a terminal playground for a scene. Each terminal cell covers
cell_width × cell_height pixels as set in the scene's [playground] table.

Mouse: press an item to raise it and drag it; grab its right column, bottom
row or bottom-right corner to resize it.
Keys: tab selects the next item, arrows move it, shift+arrows resize it,
enter raises it, e shows the edges it can snap to, b switches containers,
esc cancels a gesture and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			l, err := sc.Build(layout.New(layout.Options{Logger: c.Logger}))
			if err != nil {
				return err
			}
			if replay {
				if _, err := l.Replay(); err != nil {
					return err
				}
			}
			p := tea.NewProgram(newPlayModel(l, sc.Playground),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(playModel); ok && m.status != "" {
				printInfo(cmd.OutOrStdout(), "%s", m.status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replay, "replay", false, "replay the scene's gestures before starting")

	return cmd
}

// =============================================================================
// playModel - Interactive playground
// =============================================================================

// playModel is the bubbletea model of the playground. The engine and the
// boxes live behind pointers, so copies of the model share one scene.
type playModel struct {
	layout  *scene.Layout
	tracker *layout.Tracker

	cellW, cellH float64
	board        int

	selected  string
	grabbed   string
	showEdges bool
	status    string
}

func newPlayModel(l *scene.Layout, pg scene.Playground) playModel {
	m := playModel{
		layout:  l,
		tracker: layout.NewTracker(l.Engine),
		cellW:   float64(pg.CellWidth),
		cellH:   float64(pg.CellHeight),
	}
	if m.cellW <= 0 {
		m.cellW = scene.DefaultCellWidth
	}
	if m.cellH <= 0 {
		m.cellH = scene.DefaultCellHeight
	}
	if items := m.items(); len(items) > 0 {
		m.selected = items[0]
	}
	return m
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		return m.mouse(msg), nil
	}
	return m, nil
}

func (m playModel) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "esc":
		m.cancel()
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case "b":
		if m.grabbed == "" && len(m.layout.Boards) > 1 {
			m.board = (m.board + 1) % len(m.layout.Boards)
			m.selected = ""
			m.cycle(1)
		}
	case "e":
		m.showEdges = !m.showEdges
	case "enter":
		if e, ok := m.layout.Lookup(m.selected); ok {
			p, _ := m.layout.Engine.Activate(e.ID)
			m.status = fmt.Sprintf("raised %s to z=%d", m.selected, p)
		}
	case "up":
		m.nudge(geom.Offset{Y: -m.cellH})
	case "down":
		m.nudge(geom.Offset{Y: m.cellH})
	case "left":
		m.nudge(geom.Offset{X: -m.cellW})
	case "right":
		m.nudge(geom.Offset{X: m.cellW})
	case "shift+up":
		m.stretch(geom.Offset{Y: -m.cellH}, layout.South)
	case "shift+down":
		m.stretch(geom.Offset{Y: m.cellH}, layout.South)
	case "shift+left":
		m.stretch(geom.Offset{X: -m.cellW}, layout.East)
	case "shift+right":
		m.stretch(geom.Offset{X: m.cellW}, layout.East)
	}
	return m, nil
}

func (m playModel) mouse(msg tea.MouseMsg) playModel {
	p := m.pixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.grabbed != "" {
			return m
		}
		name, dir, ok := m.hit(msg.X, msg.Y-playHeader)
		if !ok {
			return m
		}
		e, _ := m.layout.Lookup(name)
		m.layout.Engine.Activate(e.ID)
		m.selected = name
		if dir == 0 {
			ok = m.tracker.DragStart(e.ID, p)
		} else {
			ok = m.tracker.ResizeStart(e.ID, dir, p)
		}
		if ok {
			m.grabbed = name
		}
	case tea.MouseActionMotion:
		if e, ok := m.layout.Lookup(m.grabbed); ok {
			m.report(m.tracker.PointerMove(e.ID, p), false)
		}
	case tea.MouseActionRelease:
		if e, ok := m.layout.Lookup(m.grabbed); ok {
			m.report(m.tracker.PointerUp(e.ID, p), true)
			m.grabbed = ""
		}
	}
	return m
}

// nudge drags the selected item by one step.
func (m *playModel) nudge(o geom.Offset) {
	e, ok := m.layout.Lookup(m.selected)
	if !ok || m.grabbed != "" {
		return
	}
	m.layout.Engine.StartDrag(e.ID)
	m.report(m.layout.Engine.EndDrag(e.ID, o), true)
}

// stretch resizes the selected item by one step from the given handle.
func (m *playModel) stretch(o geom.Offset, dir layout.Direction) {
	e, ok := m.layout.Lookup(m.selected)
	if !ok || m.grabbed != "" {
		return
	}
	m.layout.Engine.StartResize(e.ID)
	m.report(m.layout.Engine.EndResize(e.ID, o, dir), true)
}

func (m *playModel) cancel() {
	if e, ok := m.layout.Lookup(m.grabbed); ok {
		m.tracker.Cancel(e.ID)
		m.status = "cancelled " + m.grabbed
		m.grabbed = ""
	}
}

func (m *playModel) cycle(step int) {
	items := m.items()
	if len(items) == 0 {
		return
	}
	i := slices.Index(items, m.selected)
	if i < 0 {
		m.selected = items[0]
		return
	}
	m.selected = items[(i+step+len(items))%len(items)]
}

func (m *playModel) report(res layout.Result, final bool) {
	if !res.Applied {
		return
	}
	verb := "moving"
	if final {
		verb = "placed"
	}
	m.status = fmt.Sprintf("%s %s at %s", verb, m.selected, formatRect(res.Rect))
	if !res.Snap.IsZero() {
		m.status += fmt.Sprintf(" snapped %s", res.Snap)
	}
}

// =============================================================================
// Geometry
// =============================================================================

func (m playModel) current() *scene.Board {
	if len(m.layout.Boards) == 0 {
		return nil
	}
	return m.layout.Boards[m.board]
}

func (m playModel) items() []string {
	if b := m.current(); b != nil {
		return b.Items()
	}
	return nil
}

// pixel converts a terminal position into board pixels.
func (m playModel) pixel(x, y int) geom.Point {
	origin := m.current().BoundingRectangle().TopLeft
	return geom.Pt(origin.X+float64(x)*m.cellW, origin.Y+float64(y-playHeader)*m.cellH)
}

// cellSpan is the inclusive range of cells a rectangle covers.
type cellSpan struct{ col0, row0, col1, row1 int }

func (m playModel) span(r geom.Rectangle) cellSpan {
	origin := m.current().BoundingRectangle().TopLeft
	s := cellSpan{
		col0: int(math.Floor((r.Left() - origin.X) / m.cellW)),
		row0: int(math.Floor((r.Top() - origin.Y) / m.cellH)),
		col1: int(math.Ceil((r.Right()-origin.X)/m.cellW)) - 1,
		row1: int(math.Ceil((r.Bottom()-origin.Y)/m.cellH)) - 1,
	}
	s.col1 = max(s.col1, s.col0)
	s.row1 = max(s.row1, s.row0)
	return s
}

// drawOrder returns the board's items from bottom to top.
func (m playModel) drawOrder() []string {
	names := m.items()
	slices.SortStableFunc(names, func(a, b string) int {
		ea, _ := m.layout.Lookup(a)
		eb, _ := m.layout.Lookup(b)
		return ea.Box.Priority() - eb.Box.Priority()
	})
	return names
}

// hit finds the topmost item at a board cell and the resize handle under
// it; a zero direction means the item body.
func (m playModel) hit(col, row int) (string, layout.Direction, bool) {
	order := m.drawOrder()
	for i := len(order) - 1; i >= 0; i-- {
		e, _ := m.layout.Lookup(order[i])
		s := m.span(e.Box.VisualRectangle())
		if col < s.col0 || col > s.col1 || row < s.row0 || row > s.row1 {
			continue
		}
		var dir layout.Direction
		if col == s.col1 && s.col1 > s.col0 {
			dir |= layout.East
		}
		if row == s.row1 && s.row1 > s.row0 {
			dir |= layout.South
		}
		return order[i], dir, true
	}
	return "", 0, false
}

// =============================================================================
// View
// =============================================================================

func (m playModel) View() string {
	var b strings.Builder
	board := m.current()
	if board == nil {
		return "empty scene\n"
	}

	b.WriteString(StyleTitle.Render(appName+" · "+board.Name) + "\n")
	b.WriteString(playHelpStyle.Render("drag/resize with the mouse  tab select  arrows move  shift+arrows resize  enter raise  e edges  esc cancel  q quit") + "\n")

	r := board.BoundingRectangle()
	cols := int(math.Ceil(r.Width() / m.cellW))
	rows := int(math.Ceil(r.Height() / m.cellH))
	grid := make([][]rune, rows)
	owner := make([][]int, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat("·", cols))
		owner[y] = slices.Repeat([]int{ownerEmpty}, cols)
	}
	set := func(x, y int, ch rune, o int) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = ch
			owner[y][x] = o
		}
	}

	order := m.drawOrder()
	for i, name := range order {
		e, _ := m.layout.Lookup(name)
		s := m.span(e.Box.VisualRectangle())
		for y := s.row0; y <= s.row1; y++ {
			for x := s.col0; x <= s.col1; x++ {
				ch := ' '
				switch {
				case (x == s.col0 || x == s.col1) && (y == s.row0 || y == s.row1):
					ch = corner(x == s.col0, y == s.row0)
				case y == s.row0 || y == s.row1:
					ch = '─'
				case x == s.col0 || x == s.col1:
					ch = '│'
				}
				set(x, y, ch, i)
			}
		}
		for j, ch := range []rune(name) {
			if s.col0+1+j >= s.col1 {
				break
			}
			set(s.col0+1+j, s.row0, ch, i)
		}
	}

	if m.showEdges {
		if e, ok := m.layout.Lookup(m.selected); ok {
			for _, edge := range m.layout.Engine.VisibleEdges(e.ID) {
				s := m.span(edge.Bounds())
				vertical := edge.Side.Vertical()
				for y := s.row0; y <= s.row1; y++ {
					for x := s.col0; x <= s.col1; x++ {
						if vertical {
							set(x, y, '┃', ownerEdge)
						} else {
							set(x, y, '━', ownerEdge)
						}
					}
				}
			}
		}
	}

	for y := range grid {
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && owner[y][x] == owner[y][start] {
				continue
			}
			b.WriteString(m.cellStyle(owner[y][start], order).Render(string(grid[y][start:x])))
			start = x
		}
		b.WriteString("\n")
	}

	if e, ok := m.layout.Lookup(m.selected); ok {
		b.WriteString(fmt.Sprintf("%s  %s  z=%d  %s\n",
			StyleHighlight.Render(m.selected),
			formatRect(e.Box.BoundingRectangle()),
			e.Box.Priority(),
			StyleDim.Render(e.Box.Style())))
	}
	if m.status != "" {
		b.WriteString(StyleDim.Render(m.status) + "\n")
	}
	return b.String()
}

func (m playModel) cellStyle(o int, order []string) lipgloss.Style {
	switch o {
	case ownerEmpty:
		return playEmptyStyle
	case ownerEdge:
		return playEdgeStyle
	}
	style := lipgloss.NewStyle().Foreground(boxColors[o%len(boxColors)])
	if order[o] == m.selected {
		style = style.Bold(true)
	}
	return style
}

func corner(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	default:
		return '┘'
	}
}
