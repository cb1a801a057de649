package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/router"
	"github.com/cybercalc/cybercalc/internal/screen"
	"github.com/cybercalc/cybercalc/internal/screens/calculator"
	"github.com/cybercalc/cybercalc/internal/screens/formula"
	"github.com/cybercalc/cybercalc/internal/screens/intro"
	"github.com/cybercalc/cybercalc/internal/screens/menu"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/ui/layout"
)

// Solver runs one solve. *solver.Solver satisfies it.
type Solver interface {
	Solve(ctx context.Context, in solver.Input) (solver.Response, error)
}

// Options configures the TUI.
type Options struct {
	// Solver answers submissions. When nil every solve yields the
	// fallback response.
	Solver Solver

	// ModelID is shown in the header outside the calculator.
	ModelID string

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model. It owns calc.State, turns screen
// events into reducer calls and runs the resulting effects.
type AppModel struct {
	router *router.Router
	state  calc.State

	solver  Solver
	modelID string
	logger  *zap.Logger

	// cancel aborts the in-flight solve, nil when idle.
	cancel context.CancelFunc

	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		router:  router.New(factories()),
		state:   calc.Initial(),
		solver:  opts.Solver,
		modelID: opts.ModelID,
		logger:  logger.Named("app"),
	}
}

func factories() map[calc.View]router.Factory {
	return map[calc.View]router.Factory{
		calc.ViewIntro: func(calc.State) screen.Screen {
			return intro.New()
		},
		calc.ViewMenu: func(calc.State) screen.Screen {
			return menu.New()
		},
		calc.ViewFormula: func(calc.State) screen.Screen {
			return formula.New()
		},
		calc.ViewCalculator: func(st calc.State) screen.Screen {
			return calculator.New(st)
		},
	}
}

// State returns the current UI state.
func (m AppModel) State() calc.State {
	return m.state
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Sync(m.state)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.stopSolve()
			return m, tea.Quit
		case "ctrl+h":
			return m.dispatch(calc.GoHome{})
		case "ctrl+g":
			return m.dispatch(calc.GoMenu{})
		case "esc":
			if m.state.View != calc.ViewIntro {
				return m.dispatch(calc.GoMenu{})
			}
			return m, nil
		}

	case calc.SolveFinished:
		next, cmd := m.dispatch(msg)
		nm := next.(AppModel)
		if !nm.state.Loading {
			nm.stopSolve()
		}
		return nm, cmd
	}

	ev, cmd := m.router.Update(msg, m.state)
	if ev == nil {
		return m, cmd
	}
	next, evCmd := m.dispatch(ev)
	return next, tea.Batch(cmd, evCmd)
}

// dispatch runs ev through the reducer, performs the effect and syncs the
// router with the new view.
func (m AppModel) dispatch(ev calc.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	var eff calc.Effect
	m.state, eff = calc.Reduce(m.state, ev)

	if prev.View != m.state.View {
		m.logger.Debug("view changed",
			zap.Stringer("from", prev.View),
			zap.Stringer("to", m.state.View),
			zap.String("sub_topic", m.state.Selection.Sub.Code()),
		)
	}

	var cmds []tea.Cmd
	switch eff := eff.(type) {
	case calc.SolveEffect:
		m.stopSolve()
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		m.logger.Info("solve submitted",
			zap.Uint64("request_id", eff.ID),
			zap.String("sub_topic", eff.Input.SubTopic.Code()),
		)
		cmds = append(cmds, runSolve(ctx, m.solver, eff))
	case calc.CancelEffect:
		m.logger.Info("solve canceled", zap.Uint64("request_id", prev.RequestID))
		m.stopSolve()
	}

	cmds = append(cmds, m.router.Sync(m.state))
	return m, tea.Batch(cmds...)
}

func (m *AppModel) stopSolve() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// runSolve performs eff off the event loop and reports the outcome as a
// SolveFinished carrying the same ID.
func runSolve(ctx context.Context, s Solver, eff calc.SolveEffect) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return calc.SolveFinished{ID: eff.ID, Response: solver.Fallback()}
		}
		resp, err := s.Solve(ctx, eff.Input)
		return calc.SolveFinished{ID: eff.ID, Response: resp, Err: err}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the framed screen for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	frame := layout.Frame{
		Title:  title,
		Status: m.modelID,
		Hints:  []layout.KeyHint{{Key: "Ctrl+C", Description: "Keluar"}},
	}
	if !m.state.Selection.IsZero() {
		frame.Status = m.state.Selection.Sub.Code()
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		frame.Hints = hp.KeyHints(m.state)
	}
	return frame.Render(m.width, m.height, func(rows int) string {
		return m.router.Render(m.state, m.width, rows)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
