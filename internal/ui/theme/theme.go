package theme

import (
	"github.com/charmbracelet/lipgloss"

	viewdto "wordgraph/internal/modules/view/dto"
)

// Chrome colours for the frame around the graph. The graph itself is drawn
// with the scene palette.
var (
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)
)

// Scene holds the styles derived from a scene palette.
type Scene struct {
	Background lipgloss.Color
	Link       lipgloss.Color
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
}

func ForScene(p viewdto.PaletteOutput) Scene {
	bg := lipgloss.Color(orDefault(p.Background, "#000000"))
	fg := lipgloss.Color(orDefault(p.Text, "#ffffff"))
	return Scene{
		Background: bg,
		Link:       lipgloss.Color(orDefault(p.Link, "#aaaaaa")),
		Title:      lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true),
		Subtitle:   lipgloss.NewStyle().Background(bg).Foreground(fg).Faint(true),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
