package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cybercalc/cybercalc/internal/catalog"
)

func subTopicsOf(topic catalog.Topic) []catalog.SubTopic {
	return topic.Info().SubTopics
}

func TestValidate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		sub  catalog.SubTopic
		want Kind // 0 means accepted
	}{
		{"limit accepted", "lim x->0 sin(x)/x", catalog.LimTrig, 0},
		{"limit rejected", "x^2+1", catalog.LimAlgebra, MissingLimitNotation},
		{"derivative integral conflict", `\int x dx`, catalog.DerAlgebra, WrongOperatorIntegral},
		{"derivative integral sign", "∫ x dx", catalog.DerTrig, WrongOperatorIntegral},
		{"derivative limit conflict", `\lim_{x \to 0} x`, catalog.DerAlgebra, WrongOperatorLimit},
		{"derivative elimination word", "elimination of x^2", catalog.DerAlgebra, 0},
		{"derivative plain", "x^3 + 2x", catalog.DerAlgebra, 0},
		{"algebra integral", `\int x`, catalog.SysAlgebra, WrongOperatorIntegral},
		{"algebra limit", "lim x->1 x", catalog.SysTrig, WrongOperatorLimit},
		{"algebra derivative", "d/dx x^2", catalog.SysAlgebra, WrongOperatorDerivative},
		{"algebra frac derivative", `\frac{d}{dx} x^2`, catalog.SysAlgebra, WrongOperatorDerivative},
		{"algebra turunan word", "Turunan dari x", catalog.SysAlgebra, WrongOperatorDerivative},
		{"algebra plain", "x^2 - 4 = 0", catalog.SysAlgebra, 0},
		{"integral permissive", "x^2", catalog.IntArea, 0},
		{"integral with limit text", "lim x->0 x", catalog.IntVolume, 0},
		{"limit case insensitive", "LIM X->0 X", catalog.LimFinite, 0},
		{"limit mendekati", "x mendekati 2 dari x^2", catalog.LimAlgebra, 0},
		{"limit approaches", "x approaches infinity", catalog.LimInfinite, 0},
		{"limit latex arrow", `x \to \infty`, catalog.LimInfinite, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.text, tt.sub)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("Validate(%q, %s) = %v, want nil", tt.text, tt.sub, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Validate(%q, %s) = nil, want %s", tt.text, tt.sub, tt.want)
			}
			if got.Kind != tt.want {
				t.Errorf("Validate(%q, %s).Kind = %s, want %s", tt.text, tt.sub, got.Kind, tt.want)
			}
			if got.Message == "" {
				t.Error("expected a user-facing message")
			}
		})
	}
}

func TestValidate_EmptyAnyMode(t *testing.T) {
	subs := append([]catalog.SubTopic{catalog.None}, catalog.SubTopics()...)
	for _, sub := range subs {
		for _, text := range []string{"", "   ", "\t\n"} {
			got := Validate(text, sub)
			if got == nil || got.Kind != EmptyInput {
				t.Errorf("Validate(%q, %s) = %v, want EmptyInput", text, sub, got)
			}
		}
	}
}

func TestValidate_LimitRequiresKeyword(t *testing.T) {
	withoutKeyword := []string{"x^2+1", "sin(x)/x", "1/x", "sqrt(x)"}
	withKeyword := map[string]string{
		"lim":        "lim sin(x)/x",
		"arrow":      "x->0 sin(x)/x",
		"tex arrow":  `x \to 0`,
		"mendekati":  "x mendekati 0",
		"approaches": "as x approaches 0",
	}
	for _, sub := range subTopicsOf(catalog.TopicLimit) {
		for _, text := range withoutKeyword {
			if got := Validate(text, sub); got == nil || got.Kind != MissingLimitNotation {
				t.Errorf("Validate(%q, %s) = %v, want MissingLimitNotation", text, sub, got)
			}
		}
		for name, text := range withKeyword {
			if got := Validate(text, sub); got != nil {
				t.Errorf("%s: Validate(%q, %s) = %v, want nil", name, text, sub, got)
			}
		}
	}
}

func TestValidate_DerivativeIntegralAlwaysWins(t *testing.T) {
	inputs := []string{`\int x dx`, "∫x", `lim x->0 \int x`, `d/dx \int`}
	for _, sub := range subTopicsOf(catalog.TopicDerivative) {
		for _, text := range inputs {
			got := Validate(text, sub)
			if got == nil || got.Kind != WrongOperatorIntegral {
				t.Errorf("Validate(%q, %s) = %v, want WrongOperatorIntegral", text, sub, got)
			}
		}
	}
}

func TestIsKind(t *testing.T) {
	var err error = Validate("x", catalog.LimTrig)
	if !IsKind(err, MissingLimitNotation) {
		t.Fatalf("IsKind(%v, MissingLimitNotation) = false", err)
	}
	wrapped := fmt.Errorf("solve: %w", err)
	if !IsKind(wrapped, MissingLimitNotation) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(errors.New("other"), MissingLimitNotation) {
		t.Error("IsKind matched a foreign error")
	}
}

func TestEmptySubmission(t *testing.T) {
	err := EmptySubmission()
	if err.Kind != EmptyInput {
		t.Errorf("Kind = %s, want %s", err.Kind, EmptyInput)
	}
	if err.Error() != "Mohon masukkan soal terlebih dahulu." {
		t.Errorf("Error() = %q", err.Error())
	}
}
