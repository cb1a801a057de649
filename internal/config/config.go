// Package config loads application settings from the environment. A .env
// file in the working directory is read first; real environment variables
// win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/cybercalc/cybercalc/internal/solver"
)

// Config holds app-level settings. LLM provider settings live in
// llm.Config.
type Config struct {
	DBPath  string
	LogPath string
	Debug   bool

	CacheTTL    time.Duration `validate:"gte=0"`
	GraphPoints int           `validate:"min=10,max=1000"`
	MaxTokens   int           `validate:"min=256,max=65536"`
	Temperature float64       `validate:"gte=0,lte=1"`
}

// Default returns the settings used when no variable is set.
func Default() Config {
	sc := solver.DefaultConfig()
	return Config{
		CacheTTL:    sc.CacheTTL,
		GraphPoints: sc.GraphPoints,
		MaxTokens:   sc.MaxTokens,
		Temperature: sc.Temperature,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv reads .env from the working directory if present. Existing
// variables are not overwritten.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads CYBERCALC_* variables over Default and validates the result.
// Malformed numbers are reported rather than silently ignored.
func Load() (Config, error) {
	cfg := Default()
	var errs []error

	cfg.DBPath = os.Getenv("CYBERCALC_DB")
	cfg.LogPath = os.Getenv("CYBERCALC_LOG")

	if v, ok := lookup("CYBERCALC_DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CYBERCALC_DEBUG: %w", err))
		}
		cfg.Debug = b
	}
	if v, ok := lookup("CYBERCALC_CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CYBERCALC_CACHE_TTL: %w", err))
		} else {
			cfg.CacheTTL = d
		}
	}
	if v, ok := lookup("CYBERCALC_GRAPH_POINTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CYBERCALC_GRAPH_POINTS: %w", err))
		} else {
			cfg.GraphPoints = n
		}
	}
	if v, ok := lookup("CYBERCALC_MAX_TOKENS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CYBERCALC_MAX_TOKENS: %w", err))
		} else {
			cfg.MaxTokens = n
		}
	}
	if v, ok := lookup("CYBERCALC_TEMPERATURE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CYBERCALC_TEMPERATURE: %w", err))
		} else {
			cfg.Temperature = f
		}
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, cfg.Validate()
}

// Validate checks the struct tags and reports each failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Solver returns the solver settings carried by c.
func (c Config) Solver() solver.Config {
	return solver.Config{
		GraphPoints: c.GraphPoints,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		CacheTTL:    c.CacheTTL,
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
