package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatkit/pkg/floating"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// demoCommand creates the demo command for interactive placement exploration.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Explore placement behavior in an interactive terminal view",
		Long: `Explore placement behavior interactively.

The demo renders a scrollable content plane with a fixed anchor and a
tooltip attached to it. Scrolling moves the anchor toward the viewport
edges; watch the tooltip flip to the opposite side and shift along the
edge to stay visible.

Keys:
  arrows / hjkl   scroll the content plane
  tab             cycle the preferred placement
  f               toggle flip/shift adjustment
  q               quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newDemoModel()
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// =============================================================================
// Demo Geometry
// =============================================================================

const (
	demoContentWidth  = 240
	demoContentHeight = 80

	// Anchor position in content coordinates.
	demoAnchorX = 110
	demoAnchorY = 38

	demoTooltipWidth  = 26
	demoTooltipHeight = 5
)

// demoPlacements is the tab-cycling order for the preferred placement.
var demoPlacements = []placement.Placement{
	placement.BottomCenter, placement.BottomStart, placement.BottomEnd,
	placement.TopCenter, placement.TopStart, placement.TopEnd,
	placement.RightCenter, placement.RightStart, placement.RightEnd,
	placement.LeftCenter, placement.LeftStart, placement.LeftEnd,
}

// =============================================================================
// DemoModel - Scrollable Viewport with Attached Tooltip
// =============================================================================

// demoState is the mutable scene shared between the model and the
// measurement sources. The sources close over it so the bridge re-reads
// current geometry on every notification.
type demoState struct {
	scroll floating.ScrollState
	sized  bool
}

// anchorRect returns the anchor in viewport coordinates, derived from the
// content-space anchor and the current scroll offset.
func (d *demoState) anchorRect() (geom.Rect, bool) {
	if !d.sized {
		return geom.Rect{}, false
	}
	return geom.Rect{
		X:      demoAnchorX - d.scroll.OffsetX,
		Y:      demoAnchorY - d.scroll.OffsetY,
		Width:  8,
		Height: 1,
	}, true
}

// floatingRect returns the tooltip's size. Tooltips have no position of
// their own; the engine computes it.
func (d *demoState) floatingRect() (geom.Rect, bool) {
	return geom.Rect{Width: demoTooltipWidth, Height: demoTooltipHeight}, true
}

// boundaryRect returns the visible viewport as the collision boundary.
func (d *demoState) boundaryRect() (geom.Rect, bool) {
	if !d.sized {
		return geom.Rect{}, false
	}
	return d.scroll.VisibleRect(geom.Point{}), true
}

// DemoModel is the bubbletea model for the placement demo.
type DemoModel struct {
	state    *demoState
	session  *floating.Session
	bridge   *floating.Bridge
	result   placement.Result
	placeIdx int
	adjust   bool
}

// newDemoModel wires a session and bridge around a fresh demo scene.
func newDemoModel() *DemoModel {
	state := &demoState{
		scroll: floating.ScrollState{
			ContentWidth:  demoContentWidth,
			ContentHeight: demoContentHeight,
		},
	}

	opts := placement.DefaultOptions()
	opts.Placement = demoPlacements[0]
	opts.Offset = 1

	sources := floating.Sources{
		Anchor:   floating.RectSourceFunc(state.anchorRect),
		Floating: floating.RectSourceFunc(state.floatingRect),
		Boundary: floating.RectSourceFunc(state.boundaryRect),
	}
	session := floating.NewSession(opts,
		floating.WithAnchorSource(sources.Anchor),
		floating.WithFloatingSource(sources.Floating),
		floating.WithBoundarySource(sources.Boundary),
	)

	m := &DemoModel{
		state:   state,
		session: session,
		bridge:  floating.NewBridge(session, sources),
		adjust:  true,
	}
	session.Subscribe(func(r placement.Result) { m.result = r })
	return m
}

func (m *DemoModel) Init() tea.Cmd {
	return nil
}

func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := !m.state.sized
		m.state.scroll.ViewportWidth = float64(msg.Width)
		m.state.scroll.ViewportHeight = float64(msg.Height - 2) // reserve status lines
		if m.state.scroll.ViewportHeight < 5 {
			m.state.scroll.ViewportHeight = 5
		}
		m.state.sized = true
		if first {
			// Start with the anchor centered in the viewport.
			m.state.scroll.OffsetX = demoAnchorX - m.state.scroll.ViewportWidth/2
			m.state.scroll.OffsetY = demoAnchorY - m.state.scroll.ViewportHeight/2
		}
		m.clampScroll()
		m.bridge.Reload()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.session.Close()
			m.bridge.Close()
			return m, tea.Quit
		case "left", "h":
			m.scrollBy(-4, 0)
		case "right", "l":
			m.scrollBy(4, 0)
		case "up", "k":
			m.scrollBy(0, -2)
		case "down", "j":
			m.scrollBy(0, 2)
		case "tab":
			m.placeIdx = (m.placeIdx + 1) % len(demoPlacements)
			m.updateOptions()
		case "f":
			m.adjust = !m.adjust
			m.updateOptions()
		}
	}
	return m, nil
}

// scrollBy moves the viewport and pushes the new geometry through the
// bridge. The anchor is re-read too since its viewport position depends on
// the offset.
func (m *DemoModel) scrollBy(dx, dy float64) {
	m.state.scroll.OffsetX += dx
	m.state.scroll.OffsetY += dy
	m.clampScroll()
	m.bridge.OnScroll(m.state.scroll, geom.Point{})
	m.bridge.Notify(floating.ScopeAnchor)
}

func (m *DemoModel) clampScroll() {
	s := &m.state.scroll
	if s.OffsetX < 0 {
		s.OffsetX = 0
	}
	if max := s.MaxOffsetX(); s.OffsetX > max {
		s.OffsetX = max
	}
	if s.OffsetY < 0 {
		s.OffsetY = 0
	}
	if max := s.MaxOffsetY(); s.OffsetY > max {
		s.OffsetY = max
	}
}

// updateOptions rebuilds the session options from the demo toggles.
func (m *DemoModel) updateOptions() {
	opts := m.session.Options()
	opts.Placement = demoPlacements[m.placeIdx]
	if m.adjust {
		opts.Middleware = placement.DefaultMiddleware()
	} else {
		opts.Middleware = nil
	}
	m.session.SetOptions(opts)
}

// =============================================================================
// Rendering
// =============================================================================

func (m *DemoModel) View() string {
	if !m.state.sized {
		return "measuring..."
	}

	vw := int(m.state.scroll.ViewportWidth)
	vh := int(m.state.scroll.ViewportHeight)
	canvas := newCanvas(vw, vh)

	m.drawContent(canvas)
	m.drawAnchor(canvas)
	if m.result.Ready {
		m.drawTooltip(canvas)
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ scroll · tab placement · f toggle flip/shift · q quit"))
	return b.String()
}

// newCanvas allocates a blank rune grid.
func newCanvas(w, h int) [][]rune {
	canvas := make([][]rune, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}
	return canvas
}

// drawContent draws a dot lattice so scrolling is visible, with the content
// edges marked.
func (m *DemoModel) drawContent(canvas [][]rune) {
	offX := int(m.state.scroll.OffsetX)
	offY := int(m.state.scroll.OffsetY)
	for y := range canvas {
		cy := y + offY
		for x := range canvas[y] {
			cx := x + offX
			switch {
			case cx == 0 || cx == demoContentWidth-1 || cy == 0 || cy == demoContentHeight-1:
				canvas[y][x] = '▒'
			case cx%8 == 0 && cy%4 == 0:
				canvas[y][x] = '·'
			}
		}
	}
}

// drawAnchor draws the anchor token at its viewport position.
func (m *DemoModel) drawAnchor(canvas [][]rune) {
	r, ok := m.state.anchorRect()
	if !ok {
		return
	}
	drawText(canvas, int(r.X), int(r.Y), "[anchor]")
}

// drawTooltip draws a bordered tooltip box at the computed position.
func (m *DemoModel) drawTooltip(canvas [][]rune) {
	x, y := int(m.result.X), int(m.result.Y)
	w, h := demoTooltipWidth, demoTooltipHeight

	drawText(canvas, x, y, "┌"+strings.Repeat("─", w-2)+"┐")
	for i := 1; i < h-1; i++ {
		drawText(canvas, x, y+i, "│"+strings.Repeat(" ", w-2)+"│")
	}
	drawText(canvas, x, y+h-1, "└"+strings.Repeat("─", w-2)+"┘")

	label := m.result.Placement.String()
	drawText(canvas, x+2, y+2, label)
	drawText(canvas, x+2, y+3, fmt.Sprintf("(%g, %g)", m.result.X, m.result.Y))
}

// drawText writes s into the canvas at (x, y), clipping at the edges.
func drawText(canvas [][]rune, x, y int, s string) {
	if y < 0 || y >= len(canvas) {
		return
	}
	row := canvas[y]
	for i, r := range []rune(s) {
		cx := x + i
		if cx < 0 || cx >= len(row) {
			continue
		}
		row[cx] = r
	}
}

// statusLine renders the one-line state summary below the canvas.
func (m *DemoModel) statusLine() string {
	preferred := demoPlacements[m.placeIdx]
	parts := []string{
		StyleTitle.Render(appName+" demo"),
		"preferred " + StyleHighlight.Render(preferred.String()),
	}
	if m.result.Ready {
		actual := m.result.Placement
		style := StyleValue
		if actual != preferred {
			style = StyleWarning
		}
		parts = append(parts, "actual "+style.Render(actual.String()))
	}
	if !m.adjust {
		parts = append(parts, StyleWarning.Render("adjustment off"))
	}
	parts = append(parts, StyleDim.Render(fmt.Sprintf("scroll (%g, %g)",
		m.state.scroll.OffsetX, m.state.scroll.OffsetY)))
	return strings.Join(parts, StyleDim.Render("  ·  "))
}
