package llm

import (
	"sort"
	"strings"
)

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices one request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost prices a model ID as reported by a vendor. Gateway prefixes
// ("google/") are ignored and dated snapshots match their family, so
// "claude-haiku-4-5-20251001" prices as "claude-haiku-4-5". Returns nil
// for unknown models.
func LookupCost(model string) *ModelCost {
	if i := strings.LastIndexByte(model, '/'); i >= 0 {
		model = model[i+1:]
	}
	if c, ok := modelCosts[model]; ok {
		return &c
	}
	// Longest family prefix wins: "gpt-4o-mini-2024" is gpt-4o-mini, not gpt-4o.
	for _, family := range costFamilies {
		if strings.HasPrefix(model, family+"-") {
			c := modelCosts[family]
			return &c
		}
	}
	return nil
}

// modelCosts covers the models the vendor defaults and aliases resolve to,
// plus their close siblings. Prices from models.dev, 2026-02.
var modelCosts = map[string]ModelCost{
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-3-flash":        {0.5, 3},
	"gemini-3-pro":          {2, 12},

	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},
	"o3-mini":      {1.1, 4.4},
	"o4-mini":      {1.1, 4.4},
}

// costFamilies is the keys of modelCosts, longest first.
var costFamilies = func() []string {
	keys := make([]string, 0, len(modelCosts))
	for k := range modelCosts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()
