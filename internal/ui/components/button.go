package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// Action is a single call-to-action such as "AKSES SISTEM". It has no
// focus state: when shown it is the only thing enter can trigger.
type Action struct {
	Label string
}

// Pressed reports whether msg triggers the action.
func (a Action) Pressed(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	switch k.String() {
	case "enter", "space":
		return true
	}
	return false
}

func (a Action) View() string {
	return theme.Action.Render("▶ " + a.Label + " ◀")
}
