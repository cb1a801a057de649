package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// BootBar renders boot progress as labeled segments, e.g.
// "BOOT ▰▰▰▰▱▱▱▱  50%". frac is clamped to [0, 1].
func BootBar(label string, frac float64, segments int) string {
	frac = min(max(frac, 0), 1)
	segments = max(segments, 1)
	lit := int(frac*float64(segments) + 0.5)

	on := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("▰", lit))
	off := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("▱", segments-lit))
	pct := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%4d%%", int(frac*100)))

	head := ""
	if label != "" {
		head = lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + " "
	}
	return head + on + off + " " + pct
}
