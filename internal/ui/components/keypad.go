package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/keypad"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// cellWidth is the width of a single-span key, borders excluded.
const cellWidth = 7

// Keypad is the on-screen key grid. It only tracks focus; pressing a key
// is reported to the caller.
type Keypad struct {
	Pos     keypad.Pos
	Focused bool
}

// NewKeypad creates a keypad with the first key highlighted.
func NewKeypad() Keypad {
	return Keypad{}
}

// Update moves the highlight with the arrow keys. pressed is set when enter
// or space activates the highlighted key.
func (k Keypad) Update(msg tea.Msg) (kp Keypad, pressed *keypad.Key) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !k.Focused {
		return k, nil
	}

	switch kmsg.String() {
	case "up", "k":
		k.Pos = keypad.Move(k.Pos, -1, 0)
	case "down", "j":
		k.Pos = keypad.Move(k.Pos, 1, 0)
	case "left", "h":
		k.Pos = keypad.Move(k.Pos, 0, -1)
	case "right", "l":
		k.Pos = keypad.Move(k.Pos, 0, 1)
	case "enter", "space":
		key := keypad.At(k.Pos)
		return k, &key
	}
	return k, nil
}

// Width returns the rendered width of the grid.
func (k Keypad) Width() int {
	return keypad.Columns * (cellWidth + 1)
}

// View renders the grid row by row.
func (k Keypad) View() string {
	pos := keypad.Clamp(k.Pos)
	rows := make([]string, 0, len(keypad.Layout))
	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for c, key := range row {
			w := cellWidth*key.Span + (key.Span - 1)
			style := keyStyle(key.Class)
			if k.Focused && r == pos.Row && c == pos.Col {
				style = theme.KeyFocused
			}
			cells = append(cells, style.Width(w).Align(lipgloss.Center).Render(key.Label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func keyStyle(c keypad.Class) lipgloss.Style {
	switch c {
	case keypad.ClassOperator:
		return theme.KeyOperator
	case keypad.ClassControl:
		return theme.KeyControl
	case keypad.ClassSolve:
		return theme.KeySolve
	default:
		return theme.KeyBasic
	}
}
