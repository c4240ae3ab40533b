// Package tui is an interactive terminal browser over a normalized
// result: pick a unit operation, pick a field, view its curve.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/norm"
	"github.com/goxberry/chromanorm/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	marker = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
)

const (
	stateUnits = iota
	stateFields
	stateCurve
)

type plotField struct {
	name  string
	array *sparse.DenseArray
}

type model struct {
	res           *norm.Result
	state         int
	unitCursor    int
	fieldCursor   int
	component     int
	fields        []plotField
	width, height int
}

// NewBrowser returns a bubbletea model browsing res.
func NewBrowser(res *norm.Result) tea.Model {
	return model{res: res, width: 80, height: 24}
}

// Run starts the browser and blocks until it exits.
func Run(res *norm.Result) error {
	_, err := tea.NewProgram(NewBrowser(res), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		switch m.state {
		case stateFields:
			m.state = stateUnits
		case stateCurve:
			m.state = stateFields
		default:
			return m, tea.Quit
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "left", "h":
		if m.state == stateCurve && m.component > 0 {
			m.component--
		}
	case "right", "l":
		if m.state == stateCurve {
			m.component++
		}
	case "enter":
		switch m.state {
		case stateUnits:
			m.fields = unitPlotFields(m.res, m.unitCursor)
			m.fieldCursor = 0
			m.state = stateFields
		case stateFields:
			if len(m.fields) > 0 {
				m.component = 0
				m.state = stateCurve
			}
		}
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	switch m.state {
	case stateUnits:
		n := len(m.res.Solution.Outlet)
		m.unitCursor = clamp(m.unitCursor+delta, 0, n-1)
	case stateFields:
		m.fieldCursor = clamp(m.fieldCursor+delta, 0, len(m.fields)-1)
	}
}

func (m model) View() string {
	var sb strings.Builder
	switch m.state {
	case stateUnits:
		sb.WriteString(cyan.Render("unit operations") + "\n\n")
		for i := range m.res.Solution.Outlet {
			line := fmt.Sprintf("unit %03d  %s", i, dim.Render(unitSummary(m.res, i)))
			if i == m.unitCursor {
				line = marker.Render("> ") + white.Render(line)
			} else {
				line = "  " + line
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n" + dim.Render("enter: fields  q: quit"))
	case stateFields:
		sb.WriteString(cyan.Render(fmt.Sprintf("unit %03d fields", m.unitCursor)) + "\n\n")
		if len(m.fields) == 0 {
			sb.WriteString(dim.Render("no data for this unit") + "\n")
		}
		for i, f := range m.fields {
			line := fmt.Sprintf("%-14s %v", f.name, f.array.Shape)
			if i == m.fieldCursor {
				line = marker.Render("> ") + white.Render(line)
			} else {
				line = "  " + dim.Render(line)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n" + dim.Render("enter: plot  esc: back  q: quit"))
	case stateCurve:
		f := m.fields[m.fieldCursor]
		sb.WriteString(cyan.Render(fmt.Sprintf("unit %03d  %s  component %d", m.unitCursor, f.name, m.component)) + "\n\n")
		sb.WriteString(render.Curve(f.array, m.component, m.width-10, m.height-8))
		sb.WriteString("\n\n" + dim.Render("←/→: component  esc: back  q: quit"))
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func unitSummary(res *norm.Result, unit int) string {
	n := len(render.UnitFields(res, unit))
	if n == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d fields", n)
}

func unitPlotFields(res *norm.Result, unit int) []plotField {
	s := &res.Solution
	if unit < 0 || unit >= len(s.Outlet) {
		return nil
	}
	var fields []plotField
	add := func(name string, a *sparse.DenseArray) {
		if a != nil {
			fields = append(fields, plotField{name, a})
		}
	}
	add("outlet", s.Outlet[unit])
	add("outletDot", s.OutletDot[unit])
	add("inlet", s.Inlet[unit])
	add("inletDot", s.InletDot[unit])
	add("bulk", s.Bulk[unit])
	add("flux", s.Flux[unit])
	add("volume", s.Volume[unit])
	for t, a := range s.Particle[unit] {
		add(fmt.Sprintf("particle[%d]", t), a)
	}
	for t, a := range s.Solid[unit] {
		add(fmt.Sprintf("solid[%d]", t), a)
	}
	return fields
}
