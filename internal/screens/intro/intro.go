package intro

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/screen"
	"github.com/cybercalc/cybercalc/internal/ui/components"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const (
	tagline = "CALCULUS COMPUTATION ENGINE"
	motto   = "Intelligent Calculus System."

	purposeTitle = "TUJUAN SISTEM"
	purposeText  = "Aplikasi ini dirancang untuk memfasilitasi mahasiswa Pend. Ilmu Komputer dalam memahami konsep Kalkulus."

	dedicationTitle = "DEDIKASI"
	dedicationText  = `"Kami persembahkan karya ini untuk Bapak Drs. H. Eka Fitrajaya Rahman, M.T sebagai dosen pengampu mata kuliah Kalkulus Pendidikan Ilmu Komputer A 2025."`

	teamTitle = "TIM PENGEMBANG - KELOMPOK 8"

	accessLabel = "AKSES SISTEM"
)

// Member is one entry in the team roster.
type Member struct {
	Name string
	NIM  string
}

// Team is the roster shown on the intro screen.
var Team = []Member{
	{Name: "Elsa Tiara Octaviani", NIM: "NIM. 2501975"},
	{Name: "M. Yunus Haqial Azmi", NIM: "NIM. 2507885"},
	{Name: "Muhammad Azmy Al-Manafi", NIM: "NIM. 2508123"},
	{Name: "Putri Fajriah Oktaviani", NIM: "NIM. 2501702"},
	{Name: "Randika Andriawan", NIM: "NIM. 2501691"},
}

type tickMsg time.Time

// IntroScreen shows the boot animation, dedication and team, then hands
// over to the menu on "AKSES SISTEM".
type IntroScreen struct {
	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*IntroScreen)(nil)

// New creates an IntroScreen.
func New() *IntroScreen {
	return &IntroScreen{}
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// done reports whether the animation has finished.
func (s *IntroScreen) done() bool {
	return s.elapsed >= totalDur
}

func (s *IntroScreen) Update(msg tea.Msg, _ calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.done() {
			return s, nil, nil
		}
		s.elapsed += tickInterval
		s.tickCount++
		return s, nil, tick()

	case tea.KeyPressMsg:
		// First key skips the animation.
		if !s.done() {
			s.elapsed = totalDur
			return s, nil, nil
		}
		switch msg.String() {
		case "enter", "space":
			return s, calc.Enter{}, nil
		}
	}

	return s, nil, nil
}

func (s *IntroScreen) KeyHints(calc.State) []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Akses sistem"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}

func (s *IntroScreen) View(_ calc.State, width, height int) string {
	full := s.render(width, false, true)
	if lipgloss.Height(full) > height {
		full = s.render(width, false, false)
	}
	if lipgloss.Height(full) > height {
		full = s.render(width, true, false)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, full)
}

func (s *IntroScreen) render(width int, compact, details bool) string {
	frame := -1
	if !s.done() {
		frame = s.tickCount
	}

	var sections []string
	sections = append(sections, RenderBanner(width, compact, frame))

	// Phase 2+: tagline
	if s.elapsed >= phase1End {
		sections = append(sections,
			"",
			lipgloss.NewStyle().Foreground(theme.Primary).Render("• "+tagline+" •"),
			theme.Subtitle.Render(motto),
		)
	}

	// Phase 3+: purpose, dedication and team
	if s.elapsed >= phase2End && details {
		cardWidth := (width - 8) / 2
		if cardWidth > 44 {
			cardWidth = 44
		}
		purpose := card(purposeTitle, purposeText, theme.Secondary, cardWidth)
		dedication := card(dedicationTitle, dedicationText, theme.Primary, cardWidth)
		sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, purpose, "  ", dedication))
		sections = append(sections, "", renderTeam())
	}

	if s.done() {
		sections = append(sections, "", components.Action{Label: accessLabel}.View())
	} else {
		bar := components.BootBar("BOOT", float64(s.elapsed)/float64(totalDur), 32)
		sections = append(sections, "", bar, theme.Hint.Render("tekan tombol apa saja untuk melewati"))
	}

	centered := make([]string, len(sections))
	for i, sec := range sections {
		centered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, sec)
	}
	return strings.Join(centered, "\n")
}

func card(title, body string, accent color.Color, width int) string {
	head := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return theme.Card.
		BorderForeground(accent).
		Padding(0, 1).
		Width(width).
		Render(head + "\n" + theme.Body.Render(body))
}

func renderTeam() string {
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(teamTitle)
	lines := []string{head}
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	nimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	var row []string
	for _, m := range Team {
		row = append(row, nameStyle.Render(m.Name)+" "+nimStyle.Render(m.NIM))
	}
	// Two members per line keeps the roster inside 80 columns.
	for i := 0; i < len(row); i += 2 {
		end := i + 2
		if end > len(row) {
			end = len(row)
		}
		lines = append(lines, strings.Join(row[i:end], "   "))
	}
	return strings.Join(lines, "\n")
}
