package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cybercalc/cybercalc/internal/store"
)

// NewProvider builds the provider named by cfg, wrapped as
// timeout(retry(logging(vendor))).
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case VendorMock:
		return NewMockProvider(), nil
	case VendorGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case VendorAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case VendorOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case VendorOpenRouter:
		base, err = NewOpenRouterProvider(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, events, logger)
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}

// NewProviderFromEnv is NewProvider over ConfigFromEnv. When the selected
// vendor has no CYBERCALC_ key, DiscoverConfig picks the vendor instead,
// keeping the retry and timeout settings from the environment.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.APIKey == "" && cfg.Provider != VendorMock {
		if found, ok := DiscoverConfig(); ok {
			found.Retry, found.Timeout = cfg.Retry, cfg.Timeout
			cfg = found
		}
	}
	return NewProvider(ctx, cfg, events, logger)
}
