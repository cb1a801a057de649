package menu

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/screen"
	"github.com/cybercalc/cybercalc/internal/ui/components"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

const (
	heading    = "CYBER DECK MENU"
	subheading = "SILAKAN PILIH MODUL KALKULUS ANDA"
)

// MenuScreen lists every topic with its sub-topics. Topic rows are headers
// and cannot be chosen.
type MenuScreen struct {
	list components.GroupedList
}

var _ screen.Screen = (*MenuScreen)(nil)

// New builds the menu from the catalog.
func New() *MenuScreen {
	var groups []components.ListGroup
	for _, t := range catalog.Topics() {
		g := components.ListGroup{Heading: strings.ToUpper(t.Label)}
		for _, s := range t.SubTopics {
			g.Items = append(g.Items, s.Label())
		}
		groups = append(groups, g)
	}
	return &MenuScreen{list: components.NewGroupedList(groups)}
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Title() string {
	return "Menu"
}

// Highlighted returns the sub-topic under the cursor.
func (m *MenuScreen) Highlighted() catalog.SubTopic {
	g, i := m.list.Cursor()
	topics := catalog.Topics()
	if g >= len(topics) || i >= len(topics[g].SubTopics) {
		return catalog.None
	}
	return topics[g].SubTopics[i]
}

func (m *MenuScreen) Update(msg tea.Msg, _ calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.list.Move(-1)
	case "down", "j":
		m.list.Move(1)
	case "enter", "space":
		if sub := m.Highlighted(); sub != catalog.None {
			return m, calc.SelectSubTopic{Sub: sub}, nil
		}
	default:
		// 1-4 jump to the first technique of a topic.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.list.SetCursor(int(key[0]-'1'), 0)
		}
	}
	return m, nil, nil
}

func (m *MenuScreen) KeyHints(calc.State) []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pilih"},
		{Key: "1-4", Description: "Topik"},
		{Key: "Enter", Description: "Buka"},
		{Key: "Ctrl+H", Description: "Intro"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}

func (m *MenuScreen) View(_ calc.State, width, height int) string {
	cw := components.ContentWidth(width, 96)
	listWidth := 34
	cardWidth := cw - listWidth - 2

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("≡ "+heading))
	if height >= 22 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(subheading))
	}

	list := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	card := m.renderCard(cardWidth)
	sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", card))

	return components.Frame(strings.Join(sections, "\n"), width, height)
}

// renderCard shows the topic of the highlighted technique.
func (m *MenuScreen) renderCard(width int) string {
	sub := m.Highlighted()
	info := sub.Topic().Info()

	icon := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 2).
		Render(info.Icon)

	var lines []string
	lines = append(lines, icon, "", theme.Body.Render(info.Description), "")
	for _, s := range info.SubTopics {
		if s == sub {
			lines = append(lines, theme.Selected.Render("▌ "+s.Label()))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("│ "+s.Label()))
		}
	}
	lines = append(lines, "", components.Tag("CODE: "+sub.Code(), theme.Accent))

	return components.Panel(strings.ToUpper(info.Label), strings.Join(lines, "\n"), theme.Secondary, width)
}
