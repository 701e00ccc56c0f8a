package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// newLogger builds the process logger. Without --verbose only warnings and errors
// reach stderr. Tests replace it with a no-op logger.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payoff",
		Short: "Balance transfer debt payoff calculator",
		Long: `payoff compares how a balance transferred to a 0% promotional card is paid down:
the payment required to clear it within the promotional period, the effect of an
extra monthly payment, and optionally what the same debt costs at a regular APY.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newCalculateCmd())
	root.AddCommand(newExampleCmd())
	root.AddCommand(newFormatsCmd())
	return root
}
