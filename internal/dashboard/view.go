package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tanklab/internal/viz"
)

const sidebarWidth = 34

var paramLabels = map[string]string{
	"volume":       "volume m³",
	"base_cost":    "cap cost /m²",
	"side_cost":    "wall cost /m²",
	"sides":        "sides n",
	"base_density": "ρ base kg/m³",
	"top_density":  "ρ top kg/m³",
	"ambient":      "T ambient °C",
	"initial":      "T initial °C",
	"critical":     "T critical °C",
	"horizon":      "horizon h",
	"k":            "k 1/h",
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs() + "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		viz.Panel.Width(sidebarWidth).Render(m.viewSidebar()),
		" ",
		viz.Panel.Render(m.viewMain()),
	)
	b.WriteString(body + "\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts[i] = viz.TabActive.Render(label)
		} else {
			parts[i] = viz.TabInactive.Render(label)
		}
	}
	return viz.Title.Render("TANKLAB") + "  " + strings.Join(parts, " ")
}

func (m Model) viewSidebar() string {
	var b strings.Builder
	name := m.cfg.Name
	if name == "" {
		name = "custom"
	}
	b.WriteString(viz.Title.Render(m.cfg.Geometry.Shape) + viz.Subtle.Render(" · "+name) + "\n")
	b.WriteString(viz.Separator(sidebarWidth-4) + "\n")

	values := m.cfg.GetParams()
	for i, p := range m.visibleParams() {
		val := fmt.Sprintf("%g", values[p])
		if m.editing && i == m.cursor {
			val = m.editBuf + "_"
		}
		label := fmt.Sprintf("%-16s", paramLabels[p])
		if i == m.cursor {
			b.WriteString(viz.Selected.Render("▸ "+label) + viz.MetricValue.Render(val) + "\n")
		} else {
			b.WriteString(viz.Subtle.Render("  "+label+val) + "\n")
		}
	}
	return b.String()
}

func (m Model) chartSize() viz.ChartSize {
	w := m.width - sidebarWidth - 16
	h := m.height/2 - 6
	return viz.ChartSize{Width: max(20, w), Height: max(5, h)}
}

func (m Model) viewMain() string {
	if m.err != nil {
		return viz.StatusDanger.Render("invalid parameters") + "\n" + viz.Subtle.Render(m.err.Error())
	}
	size := m.chartSize()
	switch m.tab {
	case tabMass:
		return viz.MassPanel(m.design, size)
	case tabThermal:
		return viz.ThermalPanel(m.design, size)
	default:
		out := viz.OptimizationPanel(m.design, size)
		if sketch := viz.TankSketch(m.design, m.cam, size.Width/2, 10); sketch != "" {
			out += "\n\n" + sketch
		}
		return out
	}
}

func (m Model) viewFooter() string {
	hints := "tab/1-3 panel · j/k select · h/l adjust · enter edit · s shape · p preset · r reset · t theme · ←→↑↓ rotate · w save · q quit"
	if m.editing {
		hints = "type a value · enter apply · esc cancel"
	}
	out := viz.KeyHint.Render(hints)
	if m.status != "" {
		out += "\n" + viz.StatusWarning.Render(m.status)
	}
	return out
}
