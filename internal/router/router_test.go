package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
	event   calc.Event
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg, calc.State) (screen.Screen, calc.Event, tea.Cmd) {
	s.updates++
	return s, s.event, nil
}
func (s *stubScreen) View(calc.State, int, int) string { return s.title }
func (s *stubScreen) Title() string                    { return s.title }

func newTestRouter(built *[]calc.View) *Router {
	mk := func(title string, ev calc.Event) Factory {
		return func(st calc.State) screen.Screen {
			*built = append(*built, st.View)
			return &stubScreen{title: title, event: ev}
		}
	}
	return New(map[calc.View]Factory{
		calc.ViewIntro:      mk("intro", calc.Enter{}),
		calc.ViewMenu:       mk("menu", nil),
		calc.ViewCalculator: mk("calculator", nil),
	})
}

func TestSyncBuildsActive(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	if r.Active() != nil {
		t.Fatal("expected no active screen before Sync")
	}

	r.Sync(calc.Initial())
	if r.Active() == nil || r.Active().Title() != "intro" {
		t.Fatalf("expected intro screen, got %v", r.Active())
	}
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() to run on built screen")
	}
	if r.View() != calc.ViewIntro {
		t.Errorf("expected view intro, got %v", r.View())
	}
}

func TestSyncSameViewKeepsScreen(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	st := calc.Initial()
	r.Sync(st)
	first := r.Active()
	r.Sync(st)

	if r.Active() != first {
		t.Error("expected the same screen instance for an unchanged view")
	}
	if len(built) != 1 {
		t.Errorf("expected 1 build, got %d", len(built))
	}
}

func TestSyncViewChangeRebuilds(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	st := calc.Initial()
	r.Sync(st)
	st.View = calc.ViewMenu
	r.Sync(st)
	st.View = calc.ViewIntro
	r.Sync(st)

	want := []calc.View{calc.ViewIntro, calc.ViewMenu, calc.ViewIntro}
	if len(built) != len(want) {
		t.Fatalf("expected %d builds, got %d", len(want), len(built))
	}
	for i := range want {
		if built[i] != want[i] {
			t.Errorf("build %d: expected %v, got %v", i, want[i], built[i])
		}
	}
}

func TestSyncUnknownView(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	st := calc.Initial()
	st.View = calc.ViewFormula
	if cmd := r.Sync(st); cmd != nil {
		t.Error("expected nil cmd for unregistered view")
	}
	if r.Active() != nil {
		t.Error("expected nil active screen for unregistered view")
	}
	if got := r.Render(st, 80, 24); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
	if ev, _ := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}, st); ev != nil {
		t.Errorf("expected no event, got %T", ev)
	}
}

func TestUpdateForwardsEvent(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	st := calc.Initial()
	r.Sync(st)
	ev, _ := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}, st)

	if _, ok := ev.(calc.Enter); !ok {
		t.Fatalf("expected calc.Enter, got %T", ev)
	}
	if r.Active().(*stubScreen).updates != 1 {
		t.Error("expected the active screen to receive the message")
	}
}

func TestRender(t *testing.T) {
	var built []calc.View
	r := newTestRouter(&built)

	st := calc.Initial()
	st.View = calc.ViewCalculator
	r.Sync(st)
	if got := r.Render(st, 80, 24); got != "calculator" {
		t.Errorf("expected 'calculator', got %q", got)
	}
}
