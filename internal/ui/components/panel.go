package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// ContentWidth returns the inner width used for framed screens, capped so
// text stays readable on wide terminals.
func ContentWidth(frameWidth, limit int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > limit {
		w = limit
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double-border frame, centering it within the
// given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel renders a titled box. The title is drawn in accent above a dashed
// rule, matching the section headers used across screens.
func Panel(title, content string, accent color.Color, width int) string {
	head := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("╌", max(width-4, 0)))
	body := head + "\n" + rule + "\n" + content
	if title == "" {
		body = content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Width(width - 2).
		Padding(0, 1).
		Render(body)
}

// Tag renders a short inline label such as a topic or code badge.
func Tag(label string, fg color.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(fg).
		Padding(0, 1).
		Render(label)
}
