package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybercalc/cybercalc/internal/llm"
	"github.com/cybercalc/cybercalc/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests and their cost",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}
		printLLMEvents(out, events)
		return nil
	},
}

func printLLMEvents(w io.Writer, events []store.LLMRequestEvent) {
	fmt.Fprintf(w, "%-5s  %-19s  %-8s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	okMark := color.New(color.FgGreen).Sprint("✓")
	failMark := color.New(color.FgRed).Sprint("✗")
	for _, e := range events {
		mark := okMark
		if !e.Success {
			mark = failMark
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-8s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Purpose,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			mark,
		)
	}
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

func printLLMEvent(w io.Writer, e *store.LLMRequestEvent) {
	field := color.New(color.FgCyan)
	row := func(name, format string, a ...any) {
		field.Fprintf(w, "%-10s ", name+":")
		fmt.Fprintf(w, format+"\n", a...)
	}

	row("ID", "%d", e.ID)
	row("Time", "%s", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	row("Provider", "%s", e.Provider)
	row("Model", "%s", e.Model)
	row("Purpose", "%s", e.Purpose)
	row("Tokens", "%d in / %d out", e.InputTokens, e.OutputTokens)
	row("Latency", "%dms", e.LatencyMs)
	row("Success", "%v", e.Success)
	if e.ErrorMessage != "" {
		row("Error", "%s", color.RedString(e.ErrorMessage))
	}

	section := func(title, body string) {
		sep := strings.Repeat("─", 60)
		fmt.Fprintln(w, sep)
		color.New(color.Bold).Fprintln(w, title)
		fmt.Fprintln(w, sep)
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(w, body)
	}
	fmt.Fprintln(w)
	section("REQUEST", e.RequestBody)
	section("RESPONSE", e.ResponseBody)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		printUsage(out, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			printCost(out, byModel)
		}
		return nil
	},
}

func printUsage(w io.Writer, rows []store.UsageRow) {
	color.New(color.Bold).Fprintln(w, "Usage by Purpose")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var calls, in, outTok int
	for _, r := range rows {
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			r.Purpose, r.Calls, r.InputTokens, r.OutputTokens, r.InputTokens+r.OutputTokens, r.AvgLatencyMs)
		calls += r.Calls
		in += r.InputTokens
		outTok += r.OutputTokens
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, outTok, in+outTok)
}

func printCost(w io.Writer, rows []store.UsageRow) {
	color.New(color.Bold).Fprintln(w, "Estimated Cost (USD)")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var total float64
	var unknown []string
	for _, r := range rows {
		cost := "?"
		if mc := llm.LookupCost(r.Model); mc != nil {
			c := mc.Cost(r.InputTokens, r.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unknown = append(unknown, r.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(r.Model, 32), r.Calls, r.InputTokens, r.OutputTokens, cost)
	}

	fmt.Fprintln(w, strings.Repeat("─", 72))
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unknown) > 0 {
		color.New(color.FgYellow).Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. solve)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
