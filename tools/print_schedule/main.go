package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/payoffcalc/payoff-calculator/internal/calculation"
	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// print_schedule dumps the raw and trimmed balance series of every scenario.
// usage: print_schedule [inputs.yaml]
func main() {
	parser := config.NewInputParser()
	inputs := parser.CreateExampleInputs()
	if len(os.Args) > 1 {
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		inputs = loaded
	}

	res := calculation.NewCalculationEngine().RunScenarios(*inputs)
	fmt.Printf("Balance with fee: %s  Required payment: %s  Display months: %d\n",
		res.BalanceWithFee, res.RequiredPayment, res.DisplayMonths)

	for _, plan := range res.Scenarios.Plans() {
		fmt.Printf("\n%s (%s)\n", plan.Scenario.Label(), plan.Scenario)
		fmt.Printf("  payment=%s rate=%s horizon=%d payoff_month=%s total_paid=%s\n",
			plan.MonthlyPayment, plan.AnnualRate, plan.HorizonMonths, domain.FormatPayoffMonth(plan.PayoffMonth), plan.TotalPaid)
		fmt.Printf("  raw (%d):     %s\n", len(plan.Series), preview(plan.Series))
		fmt.Printf("  trimmed (%d): %s\n", len(plan.Trimmed), preview(plan.Trimmed))
	}
}

// preview shows the head and tail of long series.
func preview(s domain.BalanceSeries) string {
	const edge = 6
	parts := make([]string, 0, 2*edge+1)
	for i, b := range s {
		if len(s) > 2*edge && i == edge {
			parts = append(parts, "...")
		}
		if len(s) > 2*edge && i >= edge && i < len(s)-edge {
			continue
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}
