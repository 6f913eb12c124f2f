package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar with a done/total suffix.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(current.BarFull, filled) + strings.Repeat(current.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel draws a framed box with an optional title line using the current theme.
// A width of 0 sizes the box to its content.
func Panel(title string, lines []string, width int) string {
	body := strings.Join(lines, "\n")
	if title != "" {
		body = current.Title.Render(title) + "\n\n" + body
	}
	st := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width includes padding but not the border.
		st = st.Width(width - 2)
	}
	return st.Render(body)
}
