package texfmt

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "2x + 1", "2x + 1"},
		{"simple fraction", `\frac{1}{2}`, "1/2"},
		{"compound fraction", `\frac{x+1}{x-1}`, "(x+1)/(x-1)"},
		{"nested fraction", `\frac{1}{\frac{1}{x}}`, "1/(1/x)"},
		{"definite integral", `\int_{0}^{1} x^2 \, dx`, "∫₀¹ x² dx"},
		{"limit", `\lim_{x \to 0} \frac{\sin x}{x}`, "lim(x→0) (sin x)/x"},
		{"limit at infinity", `\lim_{x \to \infty} \frac{1}{x}`, "lim(x→∞) 1/x"},
		{"bare lim keeps spacing", `\lim x`, "lim x"},
		{"sqrt atom", `\sqrt{x}`, "√x"},
		{"sqrt compound", `\sqrt{x+1}`, "√(x+1)"},
		{"cube root", `\sqrt[3]{x}`, "³√x"},
		{"greek", `\alpha + \beta = \pi`, "α + β = π"},
		{"superscript group", `x^{n+1}`, "xⁿ⁺¹"},
		{"superscript fallback", `e^{-x}`, "e^(-x)"},
		{"superscript single fallback", `e^x`, "e^x"},
		{"subscript", `x_1 + a_{ij}`, "x₁ + a_(ij)"},
		{"trig power", `\sin^2 x + \cos^2 x`, "sin² x + cos² x"},
		{"cdot and infinity", `a \cdot \infty`, "a · ∞"},
		{"left right", `\left[ x^2 \right]_{0}^{2}`, "[ x² ]₀²"},
		{"left dot", `\left. F(x) \right|_a^b`, "F(x) |ₐ^b"},
		{"text", `\text{Gagal memuat}`, "Gagal memuat"},
		{"error marker", `\text{Error}`, "Error"},
		{"escaped braces", `\{1, 2\}`, "{1, 2}"},
		{"unknown command", `\foo`, "foo"},
		{"dollar delimiters", `$$x^2$$`, "x²"},
		{"display brackets", `\[ x^2 \]`, "x²"},
		{"code fence", "```latex\n\\frac{a}{b}\n```", "a/b"},
		{"bare fence", "```\nx\n```", "x"},
		{"line break inline", `a \\ b`, "a b"},
		{"thin spaces", `a\,b\;c\!d`, "a b cd"},
		{"quad", `x = 1 \quad y = 2`, "x = 1 y = 2"},
		{"environment", `\begin{aligned} x &= 1 \end{aligned}`, "x = 1"},
		{"rightarrow", `a \Rightarrow b`, "a ⇒ b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.latex, false); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.latex, got, tt.want)
			}
		})
	}
}

func TestRender_DisplayLineBreaks(t *testing.T) {
	got := Render(`x = 1 \\ y = 2`, true)
	if got != "x = 1\ny = 2" {
		t.Errorf("Render display = %q", got)
	}
}

func TestRender_Malformed(t *testing.T) {
	inputs := []string{
		`\frac{1}{`,
		`\frac`,
		`\sqrt[3`,
		`x^`,
		`x_`,
		`}}}`,
		`{{{`,
		`\`,
		`\left`,
		`\lim_`,
		`$`,
		"```",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Render(%q) panicked: %v", in, r)
				}
			}()
			Render(in, false)
			Render(in, true)
		})
	}
}
