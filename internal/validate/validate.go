// Package validate performs the keyword sanity check run on an expression
// before it is sent to the solver. It is a heuristic, not a grammar: it only
// looks for the presence of notation tokens that belong to another topic.
package validate

import (
	"errors"
	"strings"

	"github.com/cybercalc/cybercalc/internal/catalog"
)

// Kind classifies a validation failure.
type Kind int

const (
	EmptyInput Kind = iota + 1
	MissingLimitNotation
	WrongOperatorIntegral
	WrongOperatorLimit
	WrongOperatorDerivative
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty_input"
	case MissingLimitNotation:
		return "missing_limit_notation"
	case WrongOperatorIntegral:
		return "wrong_operator_integral"
	case WrongOperatorLimit:
		return "wrong_operator_limit"
	case WrongOperatorDerivative:
		return "wrong_operator_derivative"
	default:
		return "unknown"
	}
}

// Error is a user-facing validation failure. Message is shown verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is a validation Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var verr *Error
	return errors.As(err, &verr) && verr.Kind == kind
}

// EmptySubmission is the error produced when a solve is requested with no
// expression at all.
func EmptySubmission() *Error {
	return &Error{Kind: EmptyInput, Message: "Mohon masukkan soal terlebih dahulu."}
}

var (
	limitKeywords    = []string{"lim", "->", `\to`, "mendekati", "approaches"}
	arrowTokens      = []string{"->", `\to`}
	integralTokens   = []string{`\int`, "∫"}
	derivativeTokens = []string{"d/dx", `\frac{d}{dx}`, "turunan"}
)

// Validate checks text against the notation expected by sub. It returns nil
// when the input is acceptable. Checks run in a fixed order and the first
// failure wins.
func Validate(text string, sub catalog.SubTopic) *Error {
	normalized := strings.ToLower(text)

	if strings.TrimSpace(normalized) == "" {
		return &Error{Kind: EmptyInput, Message: "Input tidak boleh kosong."}
	}

	switch sub.Topic() {
	case catalog.TopicLimit:
		if !containsAny(normalized, limitKeywords) {
			return &Error{
				Kind:    MissingLimitNotation,
				Message: `Format Limit tidak terdeteksi. Harap sertakan kata 'lim', tanda panah '->', atau '\to' (Contoh: limit x->0 ...).`,
			}
		}

	case catalog.TopicIntegral:
		// The selected mode supplies the operator; a bare integrand is fine.

	case catalog.TopicDerivative:
		if containsAny(normalized, integralTokens) {
			return &Error{
				Kind:    WrongOperatorIntegral,
				Message: "Input terlihat seperti Integral (mengandung ∫), namun Anda berada di mode Turunan. Silakan ganti mode.",
			}
		}
		if looksLikeLimit(normalized) {
			return &Error{
				Kind:    WrongOperatorLimit,
				Message: "Input terlihat seperti Limit, namun Anda berada di mode Turunan. Silakan ganti mode.",
			}
		}

	case catalog.TopicAlgebra:
		if containsAny(normalized, integralTokens) {
			return &Error{
				Kind:    WrongOperatorIntegral,
				Message: "Input mengandung simbol Integral. Silakan gunakan menu Integral.",
			}
		}
		if looksLikeLimit(normalized) {
			return &Error{
				Kind:    WrongOperatorLimit,
				Message: "Input mengandung notasi Limit. Silakan gunakan menu Limit.",
			}
		}
		if containsAny(normalized, derivativeTokens) {
			return &Error{
				Kind:    WrongOperatorDerivative,
				Message: "Input mengandung notasi Turunan. Silakan gunakan menu Turunan.",
			}
		}
	}

	return nil
}

// looksLikeLimit needs both "lim" and an arrow so words such as
// "elimination" do not trip it.
func looksLikeLimit(s string) bool {
	return strings.Contains(s, "lim") && containsAny(s, arrowTokens)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
