// Package theme holds the neon-on-void palette and the shared styles.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#00F0FF")
	Secondary = lipgloss.Color("#FF2A6D")
	Accent    = lipgloss.Color("#FCEE0A")
	Success   = lipgloss.Color("#05FFA1")
	Error     = lipgloss.Color("#FF3B3B")

	Text    = lipgloss.Color("#E0F7FA")
	TextDim = lipgloss.Color("#5C7C8A")
	Border  = lipgloss.Color("#1F3B4D")

	BgDark = lipgloss.Color("#05070D")
	BgCard = lipgloss.Color("#0D1321")
)

// Text styles.
var (
	Body     = lipgloss.NewStyle().Foreground(Text)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Mono is rendered math.
	Mono = lipgloss.NewStyle().Foreground(Success)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
)

// Boxes.
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// Field frames text inputs.
	Field = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Alert = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Error).
		Foreground(Error).
		Padding(0, 1)

	// Action is the call-to-action bar on the intro and formula screens.
	Action = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 3)
)

// Expression line.
var (
	Highlight = lipgloss.NewStyle().Background(Secondary).Foreground(BgDark)
	Caret     = lipgloss.NewStyle().Background(Primary).Foreground(BgDark)
)

// Keypad cells by key group.
var (
	KeyBasic    = lipgloss.NewStyle().Foreground(Text).Background(BgCard)
	KeyOperator = lipgloss.NewStyle().Foreground(Secondary).Background(BgCard).Bold(true)
	KeyControl  = lipgloss.NewStyle().Foreground(Accent).Background(BgCard)
	KeySolve    = lipgloss.NewStyle().Foreground(BgDark).Background(Success).Bold(true)
	KeyFocused  = lipgloss.NewStyle().Foreground(BgDark).Background(Primary).Bold(true)
)
