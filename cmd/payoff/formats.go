package main

import (
	"fmt"
	"strings"

	"github.com/payoffcalc/payoff-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
