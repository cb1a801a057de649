package calc

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/keypad"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/validate"
)

// Reduce applies ev to s. Events that make no sense in the current view are
// ignored and return s unchanged.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Enter:
		if s.View == ViewIntro {
			s.View = ViewMenu
		}
		return s, nil

	case SelectSubTopic:
		if !ev.Sub.Valid() || ev.Sub == catalog.None {
			return s, nil
		}
		if s.View != ViewMenu && s.View != ViewCalculator && s.View != ViewFormula {
			return s, nil
		}
		var eff Effect
		s, eff = navigate(s, ViewFormula)
		s.Selection = Selection{Topic: ev.Sub.Topic(), Sub: ev.Sub}
		return s, eff

	case ActivateCalculator:
		if s.View != ViewFormula || s.Selection.IsZero() {
			return s, nil
		}
		s.View = ViewCalculator
		s.KeypadVisible = true
		return s, nil

	case GoHome:
		return navigate(s, ViewIntro)

	case GoMenu:
		return navigate(s, ViewMenu)

	case Insert:
		if !editable(s) || ev.Token == "" {
			return s, nil
		}
		start, end := s.Cursor.Range()
		buf, pos := keypad.Insert(s.Buffer, start, end, ev.Token)
		s.Buffer, s.Cursor, s.Err = buf, collapsedAt(pos), nil
		return s, nil

	case Backspace:
		if !editable(s) {
			return s, nil
		}
		start, end := s.Cursor.Range()
		buf, pos := keypad.Backspace(s.Buffer, start, end)
		s.Buffer, s.Cursor, s.Err = buf, collapsedAt(pos), nil
		return s, nil

	case Clear:
		if !editable(s) {
			return s, nil
		}
		s.Buffer = ""
		s.Cursor = Cursor{}
		s.Bounds = solver.Bounds{}
		s.Err = nil
		return s, nil

	case MoveCursor:
		if !editable(s) {
			return s, nil
		}
		s.Cursor = moveCursor(s.Cursor, utf8.RuneCountInString(s.Buffer), ev)
		return s, nil

	case SetBound:
		if !editable(s) || !s.IsIntegral() {
			return s, nil
		}
		switch ev.Which {
		case BoundLower:
			s.Bounds.Lower = ev.Value
		case BoundUpper:
			s.Bounds.Upper = ev.Value
		}
		s.Err = nil
		return s, nil

	case ToggleKeypad:
		if s.View == ViewCalculator {
			s.KeypadVisible = !s.KeypadVisible
		}
		return s, nil

	case Submit:
		return submit(s)

	case SolveFinished:
		if !s.Loading || ev.ID != s.RequestID {
			return s, nil
		}
		s.Loading = false
		var verr *validate.Error
		switch {
		case errors.As(ev.Err, &verr):
			s.Err = verr
		case ev.Err != nil:
			fb := solver.Fallback()
			s.Response = &fb
		default:
			resp := ev.Response
			s.Response = &resp
		}
		return s, nil
	}

	return s, nil
}

// editable reports whether buffer edits are accepted.
func editable(s State) bool {
	return s.View == ViewCalculator
}

// navigate moves to view, dropping the selection-scoped state and any
// in-flight solve.
func navigate(s State, view View) (State, Effect) {
	var eff Effect
	if s.Loading {
		eff = CancelEffect{}
	}
	s = s.clearSolve()
	s.RequestID++
	s.Selection = Selection{}
	s.View = view
	if view != ViewCalculator {
		s.KeypadVisible = false
	}
	return s, eff
}

func submit(s State) (State, Effect) {
	if s.View != ViewCalculator || s.Loading {
		return s, nil
	}
	s.Err = nil
	s.Response = nil

	if strings.TrimSpace(s.Buffer) == "" {
		s.Err = validate.EmptySubmission()
		return s, nil
	}
	if verr := validate.Validate(s.Buffer, s.Selection.Sub); verr != nil {
		s.Err = verr
		return s, nil
	}

	s.RequestID++
	s.Loading = true
	return s, SolveEffect{ID: s.RequestID, Input: s.Input()}
}

func moveCursor(c Cursor, n int, ev MoveCursor) Cursor {
	if ev.Extend {
		c.Head = clamp(c.Head+ev.Delta, 0, n)
		return c
	}
	if !c.Collapsed() {
		start, end := c.Range()
		switch {
		case ev.Delta < 0:
			return collapsedAt(start)
		case ev.Delta > 0:
			return collapsedAt(end)
		}
		return c
	}
	return collapsedAt(clamp(c.Head+ev.Delta, 0, n))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
