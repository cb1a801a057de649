package calculator

import (
	"unicode/utf8"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/keypad"
	"github.com/cybercalc/cybercalc/internal/screen"
	"github.com/cybercalc/cybercalc/internal/ui/components"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// Focus is the widget receiving keys.
type Focus int

const (
	FocusExpression Focus = iota
	FocusLower
	FocusUpper
	FocusKeypad
)

// scrollStep is how many lines pgup/pgdown move the main column.
const scrollStep = 5

// CalculatorScreen is the computation module: expression line, integral
// bounds, keypad, and the solution with its plot.
type CalculatorScreen struct {
	focus   Focus
	lower   components.TextInput
	upper   components.TextInput
	pad     components.Keypad
	spinner spinner.Model

	offset    int
	maxOffset int
}

var _ screen.Screen = (*CalculatorScreen)(nil)

// New creates a CalculatorScreen for st.
func New(st calc.State) *CalculatorScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Selected

	c := &CalculatorScreen{
		lower:   components.NewTextInput("BATAS BAWAH (a)", "a", 16),
		upper:   components.NewTextInput("BATAS ATAS (b)", "b", 16),
		pad:     components.NewKeypad(),
		spinner: s,
	}
	c.sync(st)
	return c
}

func (c *CalculatorScreen) Init() tea.Cmd {
	return nil
}

func (c *CalculatorScreen) Title() string {
	return "Kalkulator"
}

// Focus returns the focused widget.
func (c *CalculatorScreen) Focus() Focus {
	return c.focus
}

// sync pulls the bound values from st so that AC and navigation are
// reflected in the text inputs.
func (c *CalculatorScreen) sync(st calc.State) {
	c.lower.SetValue(st.Bounds.Lower)
	c.upper.SetValue(st.Bounds.Upper)
	if !c.available(c.focus, st) {
		c.setFocus(FocusExpression)
	}
}

// available reports whether f can take focus in st.
func (c *CalculatorScreen) available(f Focus, st calc.State) bool {
	switch f {
	case FocusLower, FocusUpper:
		return st.IsIntegral()
	case FocusKeypad:
		return st.KeypadVisible
	default:
		return true
	}
}

func (c *CalculatorScreen) setFocus(f Focus) tea.Cmd {
	c.focus = f
	c.lower.Blur()
	c.upper.Blur()
	c.pad.Focused = f == FocusKeypad
	switch f {
	case FocusLower:
		return c.lower.Focus()
	case FocusUpper:
		return c.upper.Focus()
	}
	return nil
}

func (c *CalculatorScreen) cycleFocus(st calc.State, dir int) tea.Cmd {
	next := c.focus
	for range 4 {
		next = Focus((int(next) + dir + 4) % 4)
		if c.available(next, st) {
			return c.setFocus(next)
		}
	}
	return nil
}

func (c *CalculatorScreen) Update(msg tea.Msg, st calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	c.sync(st)

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !st.Loading {
			return c, nil, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, nil, cmd

	case tea.KeyPressMsg:
		return c.handleKey(msg, st)
	}

	// Cursor blink and other textinput messages.
	var cmd tea.Cmd
	switch c.focus {
	case FocusLower:
		c.lower, cmd, _ = c.lower.Update(msg)
	case FocusUpper:
		c.upper, cmd, _ = c.upper.Update(msg)
	}
	return c, nil, cmd
}

func (c *CalculatorScreen) handleKey(msg tea.KeyPressMsg, st calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return c, nil, c.cycleFocus(st, 1)
	case "shift+tab":
		return c, nil, c.cycleFocus(st, -1)
	case "ctrl+k":
		if c.focus == FocusKeypad {
			c.setFocus(FocusExpression)
		}
		return c, calc.ToggleKeypad{}, nil
	case "ctrl+l":
		return c, calc.Clear{}, nil
	case "pgdown":
		c.offset = min(c.offset+scrollStep, c.maxOffset)
		return c, nil, nil
	case "pgup":
		c.offset = max(c.offset-scrollStep, 0)
		return c, nil, nil
	case "ctrl+n":
		return c, selectAdjacent(st.Selection.Sub, 1), nil
	case "ctrl+p":
		return c, selectAdjacent(st.Selection.Sub, -1), nil
	}

	switch c.focus {
	case FocusKeypad:
		return c.handleKeypad(msg, st)
	case FocusLower:
		return c.handleBound(msg, st, calc.BoundLower)
	case FocusUpper:
		return c.handleBound(msg, st, calc.BoundUpper)
	default:
		return c.handleExpression(msg, st)
	}
}

func (c *CalculatorScreen) handleExpression(msg tea.KeyPressMsg, st calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	n := utf8.RuneCountInString(st.Buffer)
	switch msg.String() {
	case "enter":
		return c.submit(st)
	case "backspace":
		return c, calc.Backspace{}, nil
	case "left":
		return c, calc.MoveCursor{Delta: -1}, nil
	case "right":
		return c, calc.MoveCursor{Delta: 1}, nil
	case "shift+left":
		return c, calc.MoveCursor{Delta: -1, Extend: true}, nil
	case "shift+right":
		return c, calc.MoveCursor{Delta: 1, Extend: true}, nil
	case "home", "ctrl+a":
		return c, calc.MoveCursor{Delta: -n}, nil
	case "end", "ctrl+e":
		return c, calc.MoveCursor{Delta: n}, nil
	case "shift+home":
		return c, calc.MoveCursor{Delta: -n, Extend: true}, nil
	case "shift+end":
		return c, calc.MoveCursor{Delta: n, Extend: true}, nil
	}

	if text := msg.Key().Text; text != "" {
		return c, calc.Insert{Token: text}, nil
	}
	return c, nil, nil
}

func (c *CalculatorScreen) handleBound(msg tea.KeyPressMsg, st calc.State, which calc.Bound) (screen.Screen, calc.Event, tea.Cmd) {
	if msg.String() == "enter" {
		return c.submit(st)
	}
	input := &c.lower
	if which == calc.BoundUpper {
		input = &c.upper
	}
	var cmd tea.Cmd
	var changed bool
	*input, cmd, changed = input.Update(msg)
	if changed {
		return c, calc.SetBound{Which: which, Value: input.Value()}, cmd
	}
	return c, nil, cmd
}

func (c *CalculatorScreen) handleKeypad(msg tea.KeyPressMsg, st calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	var pressed *keypad.Key
	c.pad, pressed = c.pad.Update(msg)
	if pressed == nil {
		if msg.String() == "backspace" {
			return c, calc.Backspace{}, nil
		}
		return c, nil, nil
	}
	switch pressed.Action {
	case keypad.ActionClear:
		return c, calc.Clear{}, nil
	case keypad.ActionBackspace:
		return c, calc.Backspace{}, nil
	case keypad.ActionSolve:
		return c.submit(st)
	default:
		return c, calc.Insert{Token: pressed.Token}, nil
	}
}

// submit asks for a solve and starts the spinner. The spinner stops on its
// own when the reducer rejects the submission.
func (c *CalculatorScreen) submit(st calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	if st.Loading {
		return c, nil, nil
	}
	c.offset = 0
	return c, calc.Submit{}, c.spinner.Tick
}

// selectAdjacent picks the technique next to cur in menu order, wrapping.
func selectAdjacent(cur catalog.SubTopic, dir int) calc.Event {
	subs := catalog.SubTopics()
	idx := 0
	for i, s := range subs {
		if s == cur {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(subs)) % len(subs)
	return calc.SelectSubTopic{Sub: subs[idx]}
}

func (c *CalculatorScreen) KeyHints(st calc.State) []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Hitung"},
		{Key: "Tab", Description: "Fokus"},
		{Key: "Ctrl+K", Description: "Keypad"},
	}
	if c.maxOffset > 0 {
		hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Gulir"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+N/P", Description: "Modul"},
		layout.KeyHint{Key: "Esc", Description: "Menu"},
	)
	if st.Loading {
		hints[0] = layout.KeyHint{Key: "…", Description: "Memproses"}
	}
	return hints
}
