// Package render draws normalized results in the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ctessum/sparse"
	"github.com/guptarohit/asciigraph"

	"github.com/goxberry/chromanorm/internal/export"
	"github.com/goxberry/chromanorm/internal/norm"
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Curve plots one component of a field array as an ASCII graph.
func Curve(field *sparse.DenseArray, component, width, height int) string {
	series := export.Series(field, component)
	if len(series) == 0 {
		return Warn.Render("no data")
	}
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
	)
}

// Summary renders the discovered dimensions of a result.
func Summary(res *norm.Result) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("normalized result") + "\n")
	sb.WriteString(fmt.Sprintf("%s %s\n",
		Label.Render("units:"), Value.Render(fmt.Sprintf("%d", res.Dims.Units))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		Label.Render("sensitivity params:"), Value.Render(fmt.Sprintf("%d", res.Dims.Params))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		Label.Render("sensitivity units:"), Value.Render(fmt.Sprintf("%d", res.Dims.SensUnits))))
	if res.Solution.Time != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			Label.Render("time points:"), Value.Render(fmt.Sprintf("%d", len(res.Solution.Time.Elements)))))
	}
	return sb.String()
}

// UnitFields lists the populated solution field kinds of one unit.
func UnitFields(res *norm.Result, unit int) []string {
	s := &res.Solution
	if unit < 0 || unit >= len(s.Outlet) {
		return nil
	}
	var fields []string
	add := func(name string, a *sparse.DenseArray) {
		if a != nil {
			fields = append(fields, fmt.Sprintf("%s %v", name, a.Shape))
		}
	}
	addTyped := func(name string, as []*sparse.DenseArray) {
		for t, a := range as {
			if a != nil {
				fields = append(fields, fmt.Sprintf("%s[%d] %v", name, t, a.Shape))
			}
		}
	}
	add("outlet", s.Outlet[unit])
	add("outletDot", s.OutletDot[unit])
	add("inlet", s.Inlet[unit])
	add("inletDot", s.InletDot[unit])
	add("bulk", s.Bulk[unit])
	add("bulkDot", s.BulkDot[unit])
	addTyped("particle", s.Particle[unit])
	addTyped("particleDot", s.ParticleDot[unit])
	addTyped("solid", s.Solid[unit])
	addTyped("solidDot", s.SolidDot[unit])
	add("flux", s.Flux[unit])
	add("fluxDot", s.FluxDot[unit])
	add("volume", s.Volume[unit])
	add("volumeDot", s.VolumeDot[unit])
	return fields
}
