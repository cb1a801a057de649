// Package layout draws the chrome around every screen: a one-line title
// bar, a key-hint bar, and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// Minimum terminal size. Below it only the notice is drawn.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "▌CYBERCALC"

// KeyHint is one entry of the hint bar.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Frame is the chrome for one render.
type Frame struct {
	Title string

	// Status is drawn right-aligned, e.g. the sub-topic code.
	Status string

	Hints []KeyHint
}

var (
	barStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Border)
	hintBarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(theme.Border)
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Padding(0, 1)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// Render draws the frame at width x height. body is called with the rows
// left between the bars and its output is clipped or padded to fit.
func (f Frame) Render(width, height int, body func(rows int) string) string {
	top := f.titleBar(width)
	bottom := f.hintBar(width)
	rows := max(height-lipgloss.Height(top)-lipgloss.Height(bottom), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Render(body(rows))
	return lipgloss.JoinVertical(lipgloss.Left, top, content, bottom)
}

func (f Frame) titleBar(width int) string {
	left := brandStyle.Render(brand)
	if f.Title != "" {
		left += titleStyle.Render(" // " + f.Title)
	}
	right := statusStyle.Render(f.Status)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return barStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (f Frame) hintBar(width int) string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return hintBarStyle.Width(width).Render(strings.Join(parts, "  "))
}

// RenderMinSizeMessage is drawn instead of the frame when the terminal is
// below MinWidth x MinHeight.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("LAYAR TERLALU KECIL\n\nPerbesar terminal minimal\n%d x %d\n\nSaat ini: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Align(lipgloss.Center).Render(text))
}
