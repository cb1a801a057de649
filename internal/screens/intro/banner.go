package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

const bannerArt = `  ██████╗██╗   ██╗██████╗ ███████╗██████╗  ██████╗ █████╗ ██╗      ██████╗
 ██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██╔════╝██╔══██╗██║     ██╔════╝
 ██║      ╚████╔╝ ██████╔╝█████╗  ██████╔╝██║     ███████║██║     ██║
 ██║       ╚██╔╝  ██╔══██╗██╔══╝  ██╔══██╗██║     ██╔══██║██║     ██║
 ╚██████╗   ██║   ██████╔╝███████╗██║  ██║╚██████╗██║  ██║███████╗╚██████╗
  ╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝`

const bannerCompact = "C Y B E R C A L C"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 74

// glitchFrames alternate the banner color while the intro animates.
var glitchFrames = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
	lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
}

// RenderBanner returns the CYBERCALC banner. Uses a compact fallback for
// terminals narrower than the art or when compact is set.
func RenderBanner(width int, compact bool, frame int) string {
	style := glitchFrames[0]
	if frame >= 0 {
		style = glitchFrames[frame%len(glitchFrames)]
	}
	if compact || width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
