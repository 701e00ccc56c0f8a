package output

import (
	"bytes"
	"fmt"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PayoffComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BALANCE TRANSFER PAYOFF SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Balance with fee: %s\n", FormatCurrency(results.BalanceWithFee))
	fmt.Fprintln(&buf)
	for _, line := range Summarize(results).Lines() {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintln(&buf)
	for _, plan := range results.Scenarios.Plans() {
		fmt.Fprintf(&buf, "%s: Payment=%s PayoffMonth=%s TotalPaid=%s\n",
			plan.Scenario.Label(),
			FormatCurrency(plan.MonthlyPayment),
			domain.FormatPayoffMonth(plan.PayoffMonth),
			FormatCurrency(plan.TotalPaid),
		)
	}
	return buf.Bytes(), nil
}
