package formula

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/screen"
	"github.com/cybercalc/cybercalc/internal/texfmt"
	"github.com/cybercalc/cybercalc/internal/ui/components"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

const (
	loadedLabel   = "THEORY_DATABASE_LOADED"
	activateLabel = "AKTIFKAN KALKULATOR"
)

// FormulaScreen is the reference card shown before the calculator.
type FormulaScreen struct{}

var _ screen.Screen = (*FormulaScreen)(nil)

// New creates a FormulaScreen.
func New() *FormulaScreen {
	return &FormulaScreen{}
}

func (f *FormulaScreen) Init() tea.Cmd {
	return nil
}

func (f *FormulaScreen) Title() string {
	return "Formula"
}

func (f *FormulaScreen) Update(msg tea.Msg, _ calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return f, nil, nil
	}
	if (components.Action{Label: activateLabel}).Pressed(kmsg) {
		return f, calc.ActivateCalculator{}, nil
	}
	if kmsg.String() == "backspace" {
		return f, calc.GoMenu{}, nil
	}
	return f, nil, nil
}

func (f *FormulaScreen) KeyHints(calc.State) []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Aktifkan kalkulator"},
		{Key: "Esc", Description: "Kembali ke menu"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}

func (f *FormulaScreen) View(st calc.State, width, height int) string {
	info := st.Formula()
	cw := components.ContentWidth(width, 90)

	status := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("● " + loadedLabel)
	code := components.Tag("CODE: "+st.Selection.Sub.Code(), theme.Primary)
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(strings.ToUpper(info.Title))
	gap := cw - lipgloss.Width(title) - lipgloss.Width(code)
	headRow := title + strings.Repeat(" ", max(gap, 1)) + code

	formula := lipgloss.NewStyle().
		Width(cw-2).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Secondary).
		Foreground(theme.Text).
		Bold(true).
		Render(texfmt.Render(info.Latex, true))

	half := (cw - 2) / 2
	definition := components.Panel("DEFINISI", theme.Body.Render(info.Definition), theme.Primary, half)

	methods := make([]string, len(info.Methods))
	for i, m := range info.Methods {
		methods[i] = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("[%d]", i+1)) + " " + theme.Body.Render(m)
	}
	algo := components.Panel("ALGORITMA PENYELESAIAN", strings.Join(methods, "\n"), theme.Accent, cw-half-2)
	grid := lipgloss.JoinHorizontal(lipgloss.Top, definition, "  ", algo)

	sections := []string{status, headRow, "", formula, "", grid}
	if info.Note != "" {
		note := lipgloss.NewStyle().
			Width(cw-1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(theme.Secondary).
			PaddingLeft(1).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("CATATAN SISTEM") + "\n" + theme.Body.Render(info.Note))
		sections = append(sections, "", note)
	}
	sections = append(sections, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.Action{Label: activateLabel}.View()))

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
