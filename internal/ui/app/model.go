package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	viewdto "wordgraph/internal/modules/view/dto"
	"wordgraph/internal/ui/components"
	"wordgraph/internal/ui/theme"
	graphview "wordgraph/internal/ui/views/graph"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type viewPort interface {
	Load(ctx context.Context) (viewdto.Scene, error)
	SetThreshold(ctx context.Context, v float64) (viewdto.Scene, error)
	StepThreshold(ctx context.Context, steps int) (viewdto.Scene, error)
	SetTheme(ctx context.Context, name string) (viewdto.Scene, error)
	NextTheme(ctx context.Context) (viewdto.Scene, error)
	Reset(ctx context.Context) (viewdto.Scene, error)
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Theme   key.Binding
	Reset   key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+/→", "raise threshold")),
		Down:    key.NewBinding(key.WithKeys("-", "_", "left"), key.WithHelp("-/←", "lower threshold")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Theme, k.Reset},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the title and status bars, the
// help overlay and the command palette, and delegates the graph to its view.
type Model struct {
	source    string
	graphView graphview.Model
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(source string, view viewPort, canvasW, canvasH float64) Model {
	gv := graphview.New(view, canvasW, canvasH)
	gv.SetOrigin(titleRows)
	return Model{
		source:    source,
		graphView: gv,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "loading " + source,
	}
}

const (
	titleRows  = 1
	statusRows = 1
)

func (m Model) Init() tea.Cmd {
	return m.graphView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts keys while open.
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 64))
		m.help.Width = m.width
		var cmd tea.Cmd
		m.graphView, cmd = m.graphView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - titleRows - statusRows})
		return m, cmd

	case graphview.SceneMsg:
		var cmd tea.Cmd
		m.graphView, cmd = m.graphView.Update(msg)
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = "ready"
		}
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	var cmd tea.Cmd
	m.graphView, cmd = m.graphView.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-titleRows-statusRows, 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.graphView.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleBar, content, statusBar)
}

func (m Model) renderTitleBar() string {
	bar := theme.Title.Render("wordgraph") + theme.Muted.Render("  "+m.source)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(titleRows).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if tip, ok := m.graphView.Hovered(); ok {
		left = theme.Hot.Render(tip)
	} else if sub := m.graphView.Scene().Subtitle; sub != "" && m.graphView.Err() == nil {
		left = sub
	}
	right := theme.Muted.Render("?:help  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(statusRows).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	cmd, err := components.ParseCommand(input)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	switch cmd.Name {
	case "threshold":
		return m, m.graphView.SetThreshold(cmd.Threshold)
	case "theme":
		return m, m.graphView.SetTheme(cmd.Theme)
	case "reset":
		return m, m.graphView.Reset()
	case "quit":
		return m, tea.Quit
	}
	return m, nil
}
