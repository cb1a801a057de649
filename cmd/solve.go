package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/plot"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/texfmt"
	"github.com/cybercalc/cybercalc/internal/validate"
)

const (
	plotWidth  = 60
	plotHeight = 16
)

var errFallback = errors.New("no solution: the solver is unavailable")

var solveCmd = &cobra.Command{
	Use:   "solve <expression>",
	Short: "Solve one expression and print the worked steps",
	Example: `  cybercalc solve --mode LIM_TRIG "lim x->0 sin(x)/x"
  cybercalc solve --mode INT_AREA --lower 0 --upper 2 "x^2" --plot`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		lower, _ := cmd.Flags().GetString("lower")
		upper, _ := cmd.Flags().GetString("upper")
		asJSON, _ := cmd.Flags().GetBool("json")
		withPlot, _ := cmd.Flags().GetBool("plot")

		sub, ok := catalog.Lookup(mode)
		if !ok {
			return fmt.Errorf("unknown mode %q (see `cybercalc topics`)", mode)
		}

		in := solver.Input{Expression: strings.Join(args, " "), SubTopic: sub}
		if sub.Topic() == catalog.TopicIntegral {
			in.Bounds = &solver.Bounds{Lower: lower, Upper: upper}
		}

		out := cmd.OutOrStdout()
		if verr := validate.Validate(in.Expression, sub); verr != nil {
			printValidationError(cmd.ErrOrStderr(), verr)
			return reportedError{verr}
		}

		rt, err := newDeps(cmd.Context(), cmd, nil)
		if err != nil {
			return err
		}
		defer rt.Close()
		if rt.solver == nil {
			return errors.New("LLM provider not configured; set CYBERCALC_LLM_PROVIDER and an API key")
		}

		resp, err := rt.solver.Solve(cmd.Context(), in)
		var verr *validate.Error
		if errors.As(err, &verr) {
			printValidationError(cmd.ErrOrStderr(), verr)
			return reportedError{verr}
		}
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
		} else {
			printSolution(out, in, resp, withPlot)
		}

		if solver.IsFallback(resp) {
			return errFallback
		}
		return nil
	},
}

func printValidationError(w io.Writer, verr *validate.Error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "⚠ ")
	color.New(color.FgRed).Fprintln(w, verr.Message)
}

// printSolution writes resp as a readable report.
func printSolution(w io.Writer, in solver.Input, resp solver.Response, withPlot bool) {
	label := color.New(color.FgCyan, color.Bold)
	accent := color.New(color.FgMagenta, color.Bold)
	dim := color.New(color.Faint)

	accent.Fprintf(w, "[%s] ", in.SubTopic.Code())
	fmt.Fprintln(w, in.SubTopic.Label())
	if p := solver.Preview(in.Expression, in.SubTopic, derefBounds(in.Bounds)); p != "" {
		dim.Fprintln(w, texfmt.Render(p, true))
	} else {
		dim.Fprintln(w, in.Expression)
	}
	fmt.Fprintln(w)

	label.Fprintln(w, "FINAL_OUTPUT")
	color.New(color.Bold).Fprintln(w, "  "+texfmt.Render(resp.LatexResult, true))
	fmt.Fprintln(w)

	if len(resp.Steps) > 0 {
		label.Fprintln(w, "COMPUTATION_STEPS")
		for i, step := range resp.Steps {
			accent.Fprintf(w, "  [%d] ", i+1)
			fmt.Fprintln(w, step.Explanation)
			color.New(color.FgGreen).Fprintln(w, "      "+texfmt.Render(step.Result, true))
		}
		fmt.Fprintln(w)
	}

	label.Fprintln(w, "AI_SUMMARY")
	fmt.Fprintln(w, "  "+resp.Explanation)

	if withPlot {
		fmt.Fprintln(w)
		label.Fprintln(w, "GRAPH_VISUALIZATION")
		fmt.Fprintln(w, plot.Render(resp.GraphPoints, plotWidth, plotHeight))
		dim.Fprintln(w, plot.Caption(resp.GraphPoints))
	}
}

func derefBounds(b *solver.Bounds) solver.Bounds {
	if b == nil {
		return solver.Bounds{}
	}
	return *b
}

func init() {
	solveCmd.Flags().StringP("mode", "m", "SYS_ALGEBRA", "Sub-topic code, e.g. LIM_TRIG or INT_AREA")
	solveCmd.Flags().String("lower", "", "Lower integration bound (integral modes only)")
	solveCmd.Flags().String("upper", "", "Upper integration bound (integral modes only)")
	solveCmd.Flags().Bool("json", false, "Print the raw solution as JSON")
	solveCmd.Flags().Bool("plot", false, "Draw the graph points as a text chart")
}
