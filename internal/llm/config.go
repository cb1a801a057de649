package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures one provider.
type Config struct {
	// Provider is one of the Vendor* names.
	Provider string

	APIKey string

	// Model is a model ID or one of the vendor's short names. Empty means
	// the vendor default.
	Model string

	// BaseURL overrides the endpoint of OpenAI-compatible vendors.
	BaseURL string

	Retry RetryConfig

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig targets Gemini Flash.
func DefaultConfig() Config {
	return Config{
		Provider: VendorGemini,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv reads CYBERCALC_LLM_PROVIDER and the selected vendor's
// CYBERCALC_<VENDOR>_API_KEY, _MODEL and _BASE_URL over DefaultConfig.
// Unparseable retry and timeout values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv("CYBERCALC_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if v, ok := lookupVendor(cfg.Provider); ok {
		cfg.APIKey = os.Getenv("CYBERCALC_" + v.envPrefix + "_API_KEY")
		cfg.Model = os.Getenv("CYBERCALC_" + v.envPrefix + "_MODEL")
		cfg.BaseURL = os.Getenv("CYBERCALC_" + v.envPrefix + "_BASE_URL")
	}

	if n, err := strconv.Atoi(os.Getenv("CYBERCALC_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("CYBERCALC_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig returns a Config for the first vendor whose conventional
// key variable (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.discoveryKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.name
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == VendorMock {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("CYBERCALC_%s_API_KEY is required for the %s provider", v.envPrefix, v.name)
	}
	return nil
}
