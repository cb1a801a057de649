package solver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cybercalc/cybercalc/internal/llm"
)

const (
	fallbackLatex       = `\text{Error}`
	fallbackStepText    = "Terjadi kesalahan saat memproses data. Silakan coba lagi."
	fallbackStepResult  = `\text{Gagal memuat}`
	fallbackExplanation = "Layanan sedang sibuk atau input tidak valid."
)

// Fallback returns the response shown when the solve could not complete.
func Fallback() Response {
	return Response{
		LatexResult: fallbackLatex,
		Steps:       []Step{{Explanation: fallbackStepText, Result: fallbackStepResult}},
		Explanation: fallbackExplanation,
	}
}

// IsFallback reports whether r is the fallback response.
func IsFallback(r Response) bool {
	return r.LatexResult == fallbackLatex &&
		r.Explanation == fallbackExplanation &&
		len(r.Steps) == 1 &&
		r.Steps[0] == Step{Explanation: fallbackStepText, Result: fallbackStepResult} &&
		len(r.GraphPoints) == 0
}

// wireStep and wireResponse use pointers so that a missing key can be told
// apart from an empty value.
type wireStep struct {
	Explanation *string `json:"explanation"`
	Result      *string `json:"result"`
}

type wireResponse struct {
	LatexResult *string      `json:"latexResult"`
	Steps       *[]wireStep  `json:"steps"`
	Explanation string       `json:"explanation"`
	GraphPoints []GraphPoint `json:"graphPoints"`
}

var (
	errMissingLatex = errors.New("missing latexResult")
	errMissingSteps = errors.New("missing steps")
)

// ParseStrict decodes raw model output into a Response. Markdown code
// fences around the JSON are tolerated.
func ParseStrict(raw []byte) (Response, error) {
	cleaned := llm.StripCodeFences(string(raw))

	var w wireResponse
	if err := json.Unmarshal([]byte(cleaned), &w); err != nil {
		return Response{}, fmt.Errorf("decode solution: %w", err)
	}
	if w.LatexResult == nil {
		return Response{}, errMissingLatex
	}
	if w.Steps == nil {
		return Response{}, errMissingSteps
	}

	steps := make([]Step, 0, len(*w.Steps))
	for i, s := range *w.Steps {
		if s.Explanation == nil || s.Result == nil {
			return Response{}, fmt.Errorf("step %d: missing explanation or result", i)
		}
		steps = append(steps, Step{Explanation: *s.Explanation, Result: *s.Result})
	}

	return Response{
		LatexResult: *w.LatexResult,
		Steps:       steps,
		Explanation: w.Explanation,
		GraphPoints: w.GraphPoints,
	}, nil
}

// Parse is the total form of ParseStrict: any decode failure yields
// Fallback.
func Parse(raw []byte) Response {
	r, err := ParseStrict(raw)
	if err != nil {
		return Fallback()
	}
	return r
}
