package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel         lipgloss.Style
	Title         lipgloss.Style
	Subtle        lipgloss.Style
	MetricValue   lipgloss.Style
	MetricLabel   lipgloss.Style
	KeyHint       lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusSafe    lipgloss.Style
	StatusDanger  lipgloss.Style
	StatusWarning lipgloss.Style
	Selected      lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Subtle = lipgloss.NewStyle().Foreground(t.Muted)

	MetricValue = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	MetricLabel = lipgloss.NewStyle().
		Foreground(t.Muted).
		Width(18)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Background(t.Primary).
		Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 2)

	StatusSafe = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	StatusDanger = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	StatusWarning = lipgloss.NewStyle().Foreground(t.Warning)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)
}

// Metric renders a "label  value" row.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}

// ProgressBar renders a fill bar for a fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))
	return MetricValue.Render(strings.Repeat("█", filled)) + Subtle.Render(strings.Repeat("░", width-filled))
}

// Separator draws a muted rule.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
