package main

import (
	"fmt"

	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/payoffcalc/payoff-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example inputs file with the calculator defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_inputs.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			inputs := config.NewInputParser().CreateExampleInputs()
			if err := output.SaveInputs(inputs, path); err != nil {
				return fmt.Errorf("write example inputs: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", path)
			return nil
		},
	}
}
