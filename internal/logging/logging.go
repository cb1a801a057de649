// Package logging builds the application zap logger. The TUI owns the
// terminal, so output goes to a rotating JSON file only.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Path is the log file. Empty disables logging.
	Path string

	// Debug lowers the level from info to debug.
	Debug bool

	// MaxSizeMB, MaxBackups and MaxAgeDays tune rotation. Zero values use
	// the defaults below.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
	defaultMaxAgeDays = 30
)

// New returns a file-only logger and a cleanup func that flushes it. With
// an empty path it returns a no-op logger.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Path == "" {
		return zap.NewNop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, defaultMaxAgeDays),
		Compress:   true,
	}

	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(NewEncoder(), zapcore.AddSync(rotator), level)
	l := zap.New(core, zap.AddCaller())

	cleanup := func() {
		_ = l.Sync()
		_ = rotator.Close()
	}
	return l, cleanup, nil
}

// NewEncoder returns the JSON encoder used for log files.
func NewEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

// DefaultPath resolves the log file path:
// 1. CYBERCALC_LOG environment variable
// 2. $XDG_STATE_HOME/cybercalc/cybercalc.log
// 3. ~/.local/state/cybercalc/cybercalc.log
func DefaultPath() (string, error) {
	if p := os.Getenv("CYBERCALC_LOG"); p != "" {
		return p, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "cybercalc", "cybercalc.log"), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
