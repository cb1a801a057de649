package solver

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Valid(t *testing.T) {
	raw := `{
		"latexResult": "1",
		"steps": [
			{"explanation": "Substitusi langsung menghasilkan 0/0", "result": "\\frac{0}{0}"},
			{"explanation": "Gunakan limit standar", "result": "1"}
		],
		"explanation": "Limit trigonometri standar.",
		"graphPoints": [{"x": -1, "y": 0.84}, {"x": 1, "y": 0.84}]
	}`

	want := Response{
		LatexResult: "1",
		Steps: []Step{
			{Explanation: "Substitusi langsung menghasilkan 0/0", Result: `\frac{0}{0}`},
			{Explanation: "Gunakan limit standar", Result: "1"},
		},
		Explanation: "Limit trigonometri standar.",
		GraphPoints: []GraphPoint{{X: -1, Y: 0.84}, {X: 1, Y: 0.84}},
	}

	got, err := ParseStrict([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseStrict() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"latexResult\":\"2x\",\"steps\":[]}\n```"},
		{"bare fence", "```\n{\"latexResult\":\"2x\",\"steps\":[]}\n```"},
		{"surrounding whitespace", "  \n```json {\"latexResult\":\"2x\",\"steps\":[]} ```\n"},
		{"inline json tag", "```json {\"latexResult\":\"2x\",\"steps\":[]} ```"},
		{"inline tag no space", "```json{\"latexResult\":\"2x\",\"steps\":[]}```"},
		{"inline bare fence", "```{\"latexResult\":\"2x\",\"steps\":[]}```"},
		{"no fence", `{"latexResult":"2x","steps":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.raw))
			if IsFallback(got) {
				t.Fatalf("unexpected fallback for %q", tt.raw)
			}
			if got.LatexResult != "2x" {
				t.Errorf("LatexResult = %q, want 2x", got.LatexResult)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "maaf, saya tidak bisa"},
		{"truncated", `{"latexResult":"1","steps":[`},
		{"array", `[1,2,3]`},
		{"missing latexResult", `{"steps":[]}`},
		{"missing steps", `{"latexResult":"1"}`},
		{"null steps", `{"latexResult":"1","steps":null}`},
		{"step missing result", `{"latexResult":"1","steps":[{"explanation":"a"}]}`},
		{"step missing explanation", `{"latexResult":"1","steps":[{"result":"a"}]}`},
		{"wrong type", `{"latexResult":1,"steps":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStrict([]byte(tt.raw)); err == nil {
				t.Fatal("expected ParseStrict error")
			}
			if got := Parse([]byte(tt.raw)); !IsFallback(got) {
				t.Errorf("Parse() = %+v, want fallback", got)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cases := []Response{
		{LatexResult: "0", Steps: []Step{}},
		{
			LatexResult: `\frac{8}{3}`,
			Steps:       []Step{{Explanation: "Antiturunan", Result: `\frac{x^3}{3}`}},
			Explanation: "Integral tentu.",
			GraphPoints: []GraphPoint{{X: 0, Y: 0}, {X: 2, Y: 4}},
		},
		Fallback(),
	}

	for _, want := range cases {
		raw, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got := Parse(raw)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFallback(t *testing.T) {
	f := Fallback()
	if f.LatexResult != `\text{Error}` {
		t.Errorf("LatexResult = %q", f.LatexResult)
	}
	if len(f.GraphPoints) != 0 {
		t.Errorf("expected no graph points, got %d", len(f.GraphPoints))
	}
	if len(f.Steps) != 1 || f.Steps[0].Result != `\text{Gagal memuat}` {
		t.Errorf("unexpected steps: %+v", f.Steps)
	}
	if !IsFallback(f) {
		t.Error("IsFallback(Fallback()) = false")
	}

	f.LatexResult = "1"
	if IsFallback(f) {
		t.Error("modified fallback still reported as fallback")
	}
}
