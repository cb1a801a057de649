package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model     string
		wantInput float64
		found     bool
	}{
		{"gemini-2.5-flash", 0.3, true},
		{"google/gemini-2.5-flash", 0.3, true},
		{"gemini-2.5-flash-lite", 0.1, true},
		{"gemini-2.5-flash-preview-09-2025", 0.3, true},
		{"claude-haiku-4-5-20251001", 1, true},
		{"gpt-4o-mini-2024-07-18", 0.15, true},
		{"gpt-4o-2024-08-06", 2.5, true},
		{"mock", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.found {
			t.Errorf("%q: found = %v, want %v", tt.model, c != nil, tt.found)
			continue
		}
		if c != nil && c.InputPerMTok != tt.wantInput {
			t.Errorf("%q: input price = %v, want %v", tt.model, c.InputPerMTok, tt.wantInput)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Cost = %v, want 0.8", got)
	}
}
