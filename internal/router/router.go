package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/screen"
)

// Factory builds the screen for a view.
type Factory func(st calc.State) screen.Screen

// Router keeps the screen for the current calc.View. A screen is rebuilt
// whenever the view changes, so presentation state never outlives it.
type Router struct {
	factories map[calc.View]Factory
	view      calc.View
	active    screen.Screen
}

// New creates a Router with one factory per view.
func New(factories map[calc.View]Factory) *Router {
	return &Router{factories: factories, view: -1}
}

// Sync makes the active screen match st.View and returns the new screen's
// Init command when it was rebuilt.
func (r *Router) Sync(st calc.State) tea.Cmd {
	if r.active != nil && r.view == st.View {
		return nil
	}
	f, ok := r.factories[st.View]
	if !ok {
		r.active = nil
		r.view = st.View
		return nil
	}
	r.active = f(st)
	r.view = st.View
	return r.active.Init()
}

// Active returns the current screen, or nil before the first Sync.
func (r *Router) Active() screen.Screen {
	return r.active
}

// View returns the view the active screen was built for.
func (r *Router) View() calc.View {
	return r.view
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg, st calc.State) (calc.Event, tea.Cmd) {
	if r.active == nil {
		return nil, nil
	}
	updated, ev, cmd := r.active.Update(msg, st)
	r.active = updated
	return ev, cmd
}

// Render renders the active screen.
func (r *Router) Render(st calc.State, width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(st, width, height)
}
