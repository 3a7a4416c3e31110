package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	breakdownBarWidth = 20
	summaryBarWidth   = 30
)

var (
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// renderBar draws a filled bar proportional to value/max, at least one cell
// wide for any positive value.
func renderBar(value, max float64, width int) string {
	if value <= 0 || max <= 0 || width <= 0 {
		return ""
	}
	cells := int(value / max * float64(width))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return barStyle.Render(strings.Repeat("█", cells))
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
