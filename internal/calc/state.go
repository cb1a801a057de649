// Package calc holds the view-state machine behind the TUI. State is a plain
// value; Reduce applies one Event and returns the next State plus an optional
// Effect for the caller to run.
package calc

import (
	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/validate"
)

// View is the screen currently shown.
type View int

const (
	ViewIntro View = iota
	ViewMenu
	ViewFormula
	ViewCalculator
)

func (v View) String() string {
	switch v {
	case ViewIntro:
		return "intro"
	case ViewMenu:
		return "menu"
	case ViewFormula:
		return "formula"
	case ViewCalculator:
		return "calculator"
	default:
		return "unknown"
	}
}

// Selection is the chosen topic and technique. The zero value is unset.
type Selection struct {
	Topic catalog.Topic
	Sub   catalog.SubTopic
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.Sub == catalog.None
}

// Cursor is a selection range in rune indices. Anchor stays put while Head
// moves during an extending move.
type Cursor struct {
	Anchor int
	Head   int
}

// Range returns the ordered selection bounds.
func (c Cursor) Range() (start, end int) {
	if c.Anchor <= c.Head {
		return c.Anchor, c.Head
	}
	return c.Head, c.Anchor
}

// Collapsed reports whether the cursor has no selection.
func (c Cursor) Collapsed() bool {
	return c.Anchor == c.Head
}

func collapsedAt(pos int) Cursor {
	return Cursor{Anchor: pos, Head: pos}
}

// State is the complete UI state. Treat it as immutable: Reduce returns a
// modified copy.
type State struct {
	View      View
	Selection Selection

	Buffer string
	Cursor Cursor
	Bounds solver.Bounds

	KeypadVisible bool

	// Loading is set between Submit and the matching SolveFinished.
	Loading bool

	// RequestID identifies the current in-flight solve. It is bumped on
	// every Submit and on every navigation so late results are dropped.
	RequestID uint64

	Err      *validate.Error
	Response *solver.Response
}

// Initial returns the state at launch.
func Initial() State {
	return State{View: ViewIntro}
}

// IsIntegral reports whether the selection uses integration bounds.
func (s State) IsIntegral() bool {
	return s.Selection.Topic == catalog.TopicIntegral
}

// Preview returns the live integral preview for the current buffer.
func (s State) Preview() string {
	return solver.Preview(s.Buffer, s.Selection.Sub, s.Bounds)
}

// Formula returns the reference card for the current selection.
func (s State) Formula() catalog.FormulaInfo {
	return catalog.Formula(s.Selection.Sub)
}

// Input builds the solve input from the current state. Bounds are only
// attached for Integral selections.
func (s State) Input() solver.Input {
	in := solver.Input{Expression: s.Buffer, SubTopic: s.Selection.Sub}
	if s.IsIntegral() {
		b := s.Bounds
		in.Bounds = &b
	}
	return in
}

// clearSolve drops everything tied to the previous selection.
func (s State) clearSolve() State {
	s.Buffer = ""
	s.Cursor = Cursor{}
	s.Bounds = solver.Bounds{}
	s.Err = nil
	s.Response = nil
	s.Loading = false
	return s
}
