package calc

import (
	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/solver"
)

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// Enter leaves the intro for the menu.
type Enter struct{}

// SelectSubTopic picks a technique. The topic follows from it.
type SelectSubTopic struct {
	Sub catalog.SubTopic
}

// ActivateCalculator leaves the formula card for the calculator.
type ActivateCalculator struct{}

// GoHome returns to the intro from anywhere.
type GoHome struct{}

// GoMenu returns to the menu from anywhere.
type GoMenu struct{}

// Insert places Token at the cursor, replacing any selection.
type Insert struct {
	Token string
}

// Backspace deletes the selection or the rune before the cursor.
type Backspace struct{}

// Clear empties the buffer and the bounds.
type Clear struct{}

// MoveCursor moves the cursor head by Delta runes. With Extend the anchor
// stays put and the selection grows or shrinks.
type MoveCursor struct {
	Delta  int
	Extend bool
}

// Bound names one integration limit.
type Bound int

const (
	BoundLower Bound = iota
	BoundUpper
)

// SetBound replaces one integration limit.
type SetBound struct {
	Which Bound
	Value string
}

// ToggleKeypad shows or hides the on-screen keypad.
type ToggleKeypad struct{}

// Submit requests a solve of the current buffer.
type Submit struct{}

// SolveFinished delivers the result of the solve tagged ID. Err carries a
// validation failure; external failures arrive as a fallback Response.
type SolveFinished struct {
	ID       uint64
	Response solver.Response
	Err      error
}

func (Enter) isEvent()              {}
func (SelectSubTopic) isEvent()     {}
func (ActivateCalculator) isEvent() {}
func (GoHome) isEvent()             {}
func (GoMenu) isEvent()             {}
func (Insert) isEvent()             {}
func (Backspace) isEvent()          {}
func (Clear) isEvent()              {}
func (MoveCursor) isEvent()         {}
func (SetBound) isEvent()           {}
func (ToggleKeypad) isEvent()       {}
func (Submit) isEvent()             {}
func (SolveFinished) isEvent()      {}

// Effect is work Reduce asks the caller to perform.
type Effect interface {
	isEffect()
}

// SolveEffect asks the caller to run a solve and report back with a
// SolveFinished carrying the same ID.
type SolveEffect struct {
	ID    uint64
	Input solver.Input
}

// CancelEffect asks the caller to abandon the in-flight solve.
type CancelEffect struct{}

func (SolveEffect) isEffect()  {}
func (CancelEffect) isEffect() {}
