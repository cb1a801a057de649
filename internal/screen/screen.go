package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
)

// Screen defines the interface for all application screens. Screens keep
// only presentation state (focus, highlight, animation); everything else
// is read from the calc.State they are handed.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles a message. A non-nil event is fed to calc.Reduce by
	// the caller.
	Update(msg tea.Msg, st calc.State) (Screen, calc.Event, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(st calc.State, width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints(st calc.State) []layout.KeyHint
}
