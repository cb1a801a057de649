package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybercalc/cybercalc/internal/config"
	"github.com/cybercalc/cybercalc/internal/llm"
	"github.com/cybercalc/cybercalc/internal/logging"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "cybercalc",
	Short:         "Terminal calculus tutor",
	Long:          "CyberCalc: pick a calculus technique, type an expression and get a worked, step-by-step solution with a plot.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// reportedError wraps an error the command has already shown.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Execute runs the root command and prints any error not yet shown.
func Execute() error {
	err := rootCmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CYBERCALC_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to log file (overrides CYBERCALC_LOG env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CYBERCALC_DB via cfg, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLogPath mirrors resolveDBPath for the log file.
func resolveLogPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		return p, nil
	}
	if cfg.LogPath != "" {
		return cfg.LogPath, nil
	}
	return logging.DefaultPath()
}

// openStore opens the event store named by --db or cfg.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openEventStore loads the config and opens the store, for commands that
// only read events.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

// deps bundles what the solving commands need.
type deps struct {
	cfg    config.Config
	logger *zap.Logger
	store  *store.Store
	solver *solver.Solver
	model  string

	closers []func()
}

func (r *deps) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// newDeps loads config, opens the logger and store, and builds the
// solver. A missing LLM configuration is not fatal: the solver is left nil
// and warn reports why.
func newDeps(ctx context.Context, cmd *cobra.Command, warn func(error)) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	rt := &deps{cfg: cfg}

	logPath, err := resolveLogPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	logger, flush, err := logging.New(logging.Options{Path: logPath, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	rt.logger = logger
	rt.closers = append(rt.closers, flush)

	st, err := openStore(cmd, cfg)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.store = st
	rt.closers = append(rt.closers, func() { _ = st.Close() })

	events := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, events, logger)
	if err != nil {
		logger.Warn("llm provider not configured", zap.Error(err))
		if warn != nil {
			warn(err)
		}
		return rt, nil
	}
	rt.model = provider.ModelID()
	rt.solver = solver.New(provider, cfg.Solver(), events, logger)
	logger.Info("solver ready", zap.String("model", rt.model))
	return rt, nil
}
