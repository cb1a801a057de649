package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		mode, _ := cmd.Flags().GetString("mode")
		if mode != "" {
			sub, ok := catalog.Lookup(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q", mode)
			}
			mode = sub.Code()
		}

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QuerySolveEvents(cmd.Context(), mode, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query solves: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No solves recorded yet.")
			return nil
		}
		printHistory(cmd.OutOrStdout(), events)
		return nil
	},
}

func printHistory(w io.Writer, events []store.SolveEvent) {
	fmt.Fprintf(w, "%-5s  %-19s  %-12s  %-28s  %-20s  %6s  %s\n",
		"ID", "Timestamp", "Mode", "Expression", "Result", "Ms", "Flags")
	fmt.Fprintln(w, strings.Repeat("─", 110))

	warn := color.New(color.FgYellow)
	for _, e := range events {
		var flags []string
		if e.CacheHit {
			flags = append(flags, "cache")
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-12s  %-28s  %-20s  %6d  ",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.SubTopic,
			truncate(e.Expression, 28),
			truncate(e.LatexResult, 20),
			e.LatencyMs,
		)
		if e.Fallback {
			warn.Fprint(w, "fallback ")
		}
		fmt.Fprintln(w, strings.Join(flags, " "))
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of solves to show")
	historyCmd.Flags().StringP("mode", "m", "", "Only show one sub-topic code")
}
