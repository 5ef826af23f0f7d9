package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxCellWidth = 12

func (t Theme) LiveCell() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Live).
		Bold(true).
		Padding(0, 1)
}

func (t Theme) EmptyCell() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Empty).
		Foreground(t.Empty).
		Padding(0, 1)
}

func (t Theme) IndexLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func (t Theme) ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

// FillBar renders count/capacity as a bar of the given width.
func (t Theme) FillBar(count, capacity, width int) string {
	if capacity <= 0 || width <= 0 {
		return ""
	}
	filled := count * width / capacity
	if filled > width {
		filled = width
	}
	live := lipgloss.NewStyle().Foreground(t.Live).Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(t.Empty).Render(strings.Repeat("░", width-filled))
	return live + empty
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
