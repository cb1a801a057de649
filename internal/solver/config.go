package solver

import "time"

// Config controls the behavior of the Solver.
type Config struct {
	// GraphPoints is the number of samples the model is asked to return.
	GraphPoints int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// CacheTTL is how long a successful solution is reused for an
	// identical request. Zero disables the cache.
	CacheTTL time.Duration
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		GraphPoints: 150,
		MaxTokens:   8192,
		Temperature: 0.2,
		CacheTTL:    30 * time.Minute,
	}
}
