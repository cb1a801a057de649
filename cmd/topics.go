package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybercalc/cybercalc/internal/catalog"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics and the sub-topic codes accepted by solve --mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		out := cmd.OutOrStdout()

		switch output {
		case "text":
			printTopics(out)
			return nil
		case "yaml":
			raw, err := catalog.ExportYAML()
			if err != nil {
				return fmt.Errorf("encode catalogue: %w", err)
			}
			_, err = out.Write(raw)
			return err
		default:
			return fmt.Errorf("unknown output format %q (want text or yaml)", output)
		}
	},
}

func printTopics(w io.Writer) {
	head := color.New(color.FgMagenta, color.Bold)
	code := color.New(color.FgCyan)
	for i, t := range catalog.Topics() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		head.Fprintln(w, t.Label)
		fmt.Fprintf(w, "  %s\n", t.Description)
		for _, s := range t.SubTopics {
			code.Fprintf(w, "  %-14s", s.Code())
			fmt.Fprintln(w, s.Label())
		}
	}
}

func init() {
	topicsCmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
}
