package solver

import (
	"slices"

	"github.com/cybercalc/cybercalc/internal/catalog"
)

// Bounds holds the optional integration limits as typed by the user.
// An empty field means "unspecified".
type Bounds struct {
	Lower string
	Upper string
}

// IsZero reports whether neither bound is set.
func (b Bounds) IsZero() bool {
	return b.Lower == "" && b.Upper == ""
}

// Input is a single solve request.
type Input struct {
	// Expression is the raw text from the input buffer.
	Expression string

	// SubTopic selects the task description and validation rules.
	SubTopic catalog.SubTopic

	// Bounds is only honoured for Integral sub-topics.
	Bounds *Bounds
}

// Step is one worked step of a solution.
type Step struct {
	// Explanation is prose shown above the step (Indonesian).
	Explanation string `json:"explanation"`

	// Result is the LaTeX produced by this step.
	Result string `json:"result"`
}

// GraphPoint is one sample of the plotted function.
type GraphPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Response is a structured step-by-step solution.
type Response struct {
	// LatexResult is the final answer as LaTeX.
	LatexResult string `json:"latexResult"`

	// Steps are shown in order.
	Steps []Step `json:"steps"`

	// Explanation summarises the method used.
	Explanation string `json:"explanation"`

	// GraphPoints are plotted as a line chart; may be empty.
	GraphPoints []GraphPoint `json:"graphPoints"`
}

// clone copies r so that callers never share slices with a cached entry.
func (r Response) clone() Response {
	r.Steps = slices.Clone(r.Steps)
	r.GraphPoints = slices.Clone(r.GraphPoints)
	return r
}
