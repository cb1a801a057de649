package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybercalc/cybercalc/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the calculator TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := newDeps(cmd.Context(), cmd, func(err error) {
		w := cmd.ErrOrStderr()
		fmt.Fprintln(w, "LLM provider not configured:", err)
		fmt.Fprintln(w, "Solutions will fall back to the offline notice.")
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := app.Options{
		ModelID: rt.model,
		Logger:  rt.logger,
	}
	// A nil *solver.Solver must not become a non-nil interface.
	if rt.solver != nil {
		opts.Solver = rt.solver
	}
	return app.Run(opts)
}
