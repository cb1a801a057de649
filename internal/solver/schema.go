package solver

import "github.com/cybercalc/cybercalc/internal/llm"

// SolveSchema defines the JSON schema for LLM solution responses.
var SolveSchema = &llm.Schema{
	Name:        "calculus-solution",
	Description: "A step-by-step calculus solution with LaTeX results and plot samples",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"latexResult": map[string]any{
				"type":        "string",
				"description": "The final answer as pure LaTeX, without $ delimiters or code fences",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"explanation": map[string]any{
							"type":        "string",
							"description": "What this step does, in Indonesian",
						},
						"result": map[string]any{
							"type":        "string",
							"description": "The mathematical result of this step as pure LaTeX",
						},
					},
					"required":             []any{"explanation", "result"},
					"additionalProperties": false,
				},
				"description": "The worked solution, one entry per step",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Ringkasan metode yang digunakan dalam Bahasa Indonesia.",
			},
			"graphPoints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"x": map[string]any{"type": "number"},
						"y": map[string]any{"type": "number"},
					},
					"required":             []any{"x", "y"},
					"additionalProperties": false,
				},
				"description": "Samples (x, y) of the function for plotting",
			},
		},
		"required":             []any{"latexResult", "steps", "explanation", "graphPoints"},
		"additionalProperties": false,
	},
}
