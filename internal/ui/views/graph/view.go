package graph

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	layoutdto "wordgraph/internal/modules/layout/dto"
	viewdto "wordgraph/internal/modules/view/dto"
	"wordgraph/internal/ui/components"
	"wordgraph/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ScenePort interface {
	Load(ctx context.Context) (viewdto.Scene, error)
	SetThreshold(ctx context.Context, v float64) (viewdto.Scene, error)
	StepThreshold(ctx context.Context, steps int) (viewdto.Scene, error)
	SetTheme(ctx context.Context, name string) (viewdto.Scene, error)
	NextTheme(ctx context.Context) (viewdto.Scene, error)
	Reset(ctx context.Context) (viewdto.Scene, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SceneMsg carries the scene after a load or a view state change. Err may be
// set while Scene is still the one to show.
type SceneMsg struct {
	Scene viewdto.Scene
	Err   error
}

type tickMsg struct{ generation int }

// FrameInterval paces the layout ticks.
const FrameInterval = 33 * time.Millisecond

const noNode = -1

// headerRows holds the title and subtitle above the canvas and footerRows
// the threshold slider below it.
const (
	headerRows = 2
	footerRows = 1
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ScenePort
	scene    viewdto.Scene
	frame    layoutdto.FrameOutput
	styles   theme.Scene
	spinner  spinner.Model
	slider   progress.Model
	loading  bool
	ticking  bool
	err      error
	dragging int
	hovered  int
	originY  int
	width    int
	height   int
	canvasW  float64
	canvasH  float64
}

// New builds the graph view. canvasW and canvasH are the layout dimensions
// the scene sessions run in.
func New(port ScenePort, canvasW, canvasH float64) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		spinner:  sp,
		slider:   progress.New(progress.WithSolidFill(string(theme.Lavender)), progress.WithoutPercentage()),
		styles:   theme.ForScene(viewdto.PaletteOutput{}),
		loading:  true,
		dragging: noNode,
		hovered:  noNode,
		canvasW:  canvasW,
		canvasH:  canvasH,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) {
		return m.port.Load(ctx)
	}), m.spinner.Tick)
}

// SetOrigin tells the view which terminal row it starts at so mouse events
// can be mapped onto the canvas.
func (m *Model) SetOrigin(row int) { m.originY = row }

func (m Model) Scene() viewdto.Scene { return m.scene }

func (m Model) Err() error { return m.err }

// Hovered returns the tooltip of the node under the pointer.
func (m Model) Hovered() (string, bool) {
	if m.hovered == noNode {
		return "", false
	}
	return m.scene.Tooltip(m.hovered), true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.slider.Width = max(m.width-32, 10)

	case SceneMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Scene.Generation <= m.scene.Generation {
			return m, nil
		}
		return m, m.swap(msg.Scene)

	case tickMsg:
		if msg.generation != m.scene.Generation || m.scene.Session == nil {
			return m, nil
		}
		m.frame = m.scene.Session.Tick()
		if !m.frame.Running {
			m.ticking = false
			return m, nil
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.mouse(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=", "right":
			return m, m.step(1)
		case "-", "_", "left":
			return m, m.step(-1)
		case "t":
			return m, m.NextTheme()
		case "r":
			return m, m.Reset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading similarity matrix…")
	}
	if m.scene.Session == nil {
		text := "no graph"
		if m.err != nil {
			text = m.err.Error()
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Error.Render(text))
	}

	cols, rows := m.canvasSize()
	header := m.styles.Title.Width(cols).Render(m.scene.Title) + "\n" +
		m.styles.Subtitle.Width(cols).Render(m.scene.Subtitle)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.draw(cols, rows).Render(),
		m.renderSlider(),
	)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) SetThreshold(v float64) tea.Cmd {
	return m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) { return m.port.SetThreshold(ctx, v) })
}

func (m Model) SetTheme(name string) tea.Cmd {
	return m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) { return m.port.SetTheme(ctx, name) })
}

func (m Model) NextTheme() tea.Cmd {
	return m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) { return m.port.NextTheme(ctx) })
}

func (m Model) Reset() tea.Cmd {
	return m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) { return m.port.Reset(ctx) })
}

func (m Model) step(steps int) tea.Cmd {
	return m.sceneCmd(func(ctx context.Context) (viewdto.Scene, error) { return m.port.StepThreshold(ctx, steps) })
}

func (m Model) sceneCmd(fn func(ctx context.Context) (viewdto.Scene, error)) tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return SceneMsg{}
		}
		scene, err := fn(context.Background())
		return SceneMsg{Scene: scene, Err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.scene.Generation
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return tickMsg{generation: gen} })
}

// ─── private ─────────────────────────────────────────────────────────────────

// swap replaces the scene and starts ticking its session. Ticks still in
// flight for the previous generation are dropped on arrival.
func (m *Model) swap(scene viewdto.Scene) tea.Cmd {
	m.scene = scene
	m.styles = theme.ForScene(scene.Palette)
	m.dragging = noNode
	m.hovered = noNode
	m.ticking = false
	if scene.Session == nil {
		m.frame = layoutdto.FrameOutput{}
		return nil
	}
	m.frame = scene.Session.Frame()
	m.ticking = true
	return m.tickCmd()
}

func (m Model) mouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	s := m.scene.Session
	if s == nil {
		return m, nil
	}
	cols, rows := m.canvasSize()
	cv := components.NewCanvas(cols, rows, m.canvasW, m.canvasH, "")
	x, y := cv.Point(msg.X, msg.Y-m.originY-headerRows)
	slack := cv.CellRadius()
	radius := func(weight int) float64 { return math.Max(m.scene.Radius(weight), slack) }

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i, ok := s.NodeAt(x, y, radius)
		if !ok || s.DragStart(i) != nil {
			return m, nil
		}
		m.dragging = i
		m.frame = s.Frame()
		return m, m.ensureTicking()

	case tea.MouseActionMotion:
		if m.dragging != noNode {
			if s.Drag(m.dragging, x, y) == nil {
				m.frame = s.Frame()
			}
			return m, nil
		}
		i, ok := s.NodeAt(x, y, radius)
		if !ok {
			i = noNode
		}
		if i == m.hovered {
			return m, nil
		}
		m.hovered = i
		if i == noNode {
			s.HoverLeave()
		} else if s.HoverEnter(i) != nil {
			m.hovered = noNode
		}
		m.frame = s.Frame()

	case tea.MouseActionRelease:
		if m.dragging == noNode {
			return m, nil
		}
		_ = s.DragEnd(m.dragging)
		m.dragging = noNode
		m.frame = s.Frame()
	}
	return m, nil
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tickCmd()
}

func (m Model) canvasSize() (int, int) {
	return max(m.width, 1), max(m.height-headerRows-footerRows, 1)
}

func (m Model) draw(cols, rows int) *components.Canvas {
	bg := string(m.styles.Background)
	cv := components.NewCanvas(cols, rows, m.canvasW, m.canvasH, bg)
	link := string(m.styles.Link)
	for _, l := range m.frame.Links {
		if l.Source >= len(m.frame.Nodes) || l.Target >= len(m.frame.Nodes) {
			continue
		}
		a, b := m.frame.Nodes[l.Source], m.frame.Nodes[l.Target]
		cv.Line(a.X, a.Y, b.X, b.Y, '·', components.Fade(link, bg, l.Opacity))
	}
	for i, n := range m.frame.Nodes {
		if i >= len(m.scene.Styles) {
			break
		}
		st := m.scene.Styles[i]
		r := st.Radius
		glyph := '●'
		if n.Focused {
			r *= 2
			glyph = '◉'
		}
		cv.Disc(n.X, n.Y, r, glyph, components.Fade(st.Fill, bg, n.Opacity))
	}
	return cv
}

func (m Model) renderSlider() string {
	label := fmt.Sprintf(" threshold %.2f ", m.scene.Threshold)
	themeLabel := fmt.Sprintf(" %s ", m.scene.Theme)
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(label))
	sb.WriteString(m.slider.ViewAs(m.scene.Threshold))
	sb.WriteString(theme.Muted.Render(themeLabel))
	return sb.String()
}
