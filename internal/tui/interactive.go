// Package tui implements the interactive terminal explorer for Koch
// fractals.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pamelaitzel/copo-koch/internal/koch"
	"github.com/pamelaitzel/copo-koch/internal/params"
	"github.com/pamelaitzel/copo-koch/internal/render"
	"github.com/pamelaitzel/copo-koch/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var figures = []string{params.FigCurve, params.FigTwo, params.FigSnow}

var figureInfo = map[string]string{
	params.FigCurve: "single koch curve",
	params.FigTwo:   "two-sided angle",
	params.FigSnow:  "closed snowflake",
}

type model struct {
	figIdx int
	order  int

	width  int
	height int
}

// NewModel returns the interactive explorer in its initial state.
func NewModel(p params.Params) tea.Model {
	m := model{order: p.Order, width: 80, height: 24}
	for i, fig := range figures {
		if fig == p.Figure {
			m.figIdx = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k", "+":
			if m.order < params.MaxOrder {
				m.order++
			}
		case "down", "j", "-":
			if m.order > params.MinOrder {
				m.order--
			}
		case "left", "h":
			m.figIdx = (m.figIdx + len(figures) - 1) % len(figures)
		case "right", "l", "tab":
			m.figIdx = (m.figIdx + 1) % len(figures)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	fig := figures[m.figIdx]

	p := params.Defaults()
	p.Figure = fig
	p.Order = m.order

	canvasW := max(m.width-4, 20)
	canvasH := max(m.height-6, 8)

	var b strings.Builder

	b.WriteString(cyan.Render("koch fractal explorer"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		dim.Render("figure:"), white.Render(fig),
		dim.Render("order:"), yellow.Render(fmt.Sprintf("%d", m.order)),
		dim.Render("points/side:"), white.Render(fmt.Sprintf("%d", koch.PointCount(m.order))),
	))
	b.WriteString(dim.Render(figureInfo[fig]))
	b.WriteString("\n")

	built, err := render.Build(p)
	if err != nil {
		b.WriteString(yellow.Render("error: " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	canvas := viz.NewCanvas(canvasW, canvasH)
	canvas.DrawFigure(built)
	b.WriteString(canvas.String())

	b.WriteString(dim.Render("←/→ figure  ↑/↓ order  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive explorer and blocks until it exits.
func Run(p params.Params) error {
	_, err := tea.NewProgram(NewModel(p), tea.WithAltScreen()).Run()
	return err
}
