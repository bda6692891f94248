package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxLabelWidth = 24
	clockLayout   = "3:04 pm"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

// RenderTerminal draws the timeline with one line per row, bars sized to width cells.
func RenderTerminal(t Timeline, width int) string {
	if width <= 0 {
		width = DefaultTerminalWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title))
	b.WriteString("\n")
	if t.Empty {
		return b.String()
	}

	labelWidth := 0
	for _, r := range t.Rows {
		if w := lipgloss.Width(truncate(r.Label, maxLabelWidth)); w > labelWidth {
			labelWidth = w
		}
	}

	for i, r := range t.Rows {
		cells := make([]bool, width)
		for _, bar := range t.Bars {
			if bar.Row != i {
				continue
			}
			from, to := t.extent(bar, width)
			for c := from; c < to && c < width; c++ {
				cells[c] = true
			}
		}

		label := truncate(r.Label, maxLabelWidth)
		b.WriteString(labelStyle.Width(labelWidth).Render(label))
		b.WriteString(" │")
		b.WriteString(renderCells(cells, lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color))))
		b.WriteString("\n")
	}

	start := t.Min.Format(clockLayout)
	end := t.Max.Format(clockLayout)
	gap := width - len(start) - len(end)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(axisStyle.Render(start + strings.Repeat(" ", gap) + end))
	b.WriteString("\n")

	return b.String()
}

// renderCells styles consecutive filled cells as a single run.
func renderCells(cells []bool, style lipgloss.Style) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		if cells[i] {
			b.WriteString(style.Render(strings.Repeat("█", j-i)))
		} else {
			b.WriteString(strings.Repeat(" ", j-i))
		}
		i = j
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
