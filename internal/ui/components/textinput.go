package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and the app styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates an unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label}
}

// Update handles messages. changed reports whether the value was edited.
func (t TextInput) Update(msg tea.Msg) (ti TextInput, cmd tea.Cmd, changed bool) {
	before := t.Model.Value()
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd, t.Model.Value() != before
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetValue replaces the value without emitting a change.
func (t *TextInput) SetValue(v string) {
	if t.Model.Value() != v {
		t.Model.SetValue(v)
	}
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// View renders the label and the input box.
func (t TextInput) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	box := theme.Field
	if t.Focused() {
		labelStyle = labelStyle.Foreground(theme.Primary)
		box = box.BorderForeground(theme.Primary)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(t.Label),
		box.Padding(0, 1).Render(t.Model.View()),
	)
}
