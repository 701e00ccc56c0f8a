package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
)

const (
	monthColumnWidth  = 6
	amountColumnWidth = 16
	paidOffMarker     = "*"
)

// ConsoleVerboseFormatter renders the full report: assumptions, summary and the month
// by month debt table with a total-paid footer.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PayoffComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "BALANCE TRANSFER DEBT PAYOFF ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULTS")
	fmt.Fprintln(&buf, strings.Repeat("=", 45))
	for _, line := range Summarize(results).Lines() {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintln(&buf)

	writeDebtTable(&buf, results)
	return buf.Bytes(), nil
}

func writeDebtTable(buf *bytes.Buffer, results *domain.PayoffComparison) {
	plans := results.Scenarios.Plans()

	fmt.Fprintln(buf, "COLUMNS:")
	for i, plan := range plans {
		fmt.Fprintf(buf, "  %c = %s\n", 'A'+i, plan.Scenario.Label())
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%-*s", monthColumnWidth, "Month")
	for i := range plans {
		fmt.Fprintf(buf, "%*c", amountColumnWidth, 'A'+i)
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, strings.Repeat("-", monthColumnWidth+amountColumnWidth*len(plans)))

	for _, row := range results.Table {
		fmt.Fprintf(buf, "%-*d", monthColumnWidth, row.Month)
		for _, cell := range rowCells(row) {
			fmt.Fprintf(buf, "%*s", amountColumnWidth, markPaidOff(cell))
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, strings.Repeat("-", monthColumnWidth+amountColumnWidth*len(plans)))
	fmt.Fprintf(buf, "%-*s", monthColumnWidth, "Total")
	for _, plan := range plans {
		fmt.Fprintf(buf, "%*s", amountColumnWidth, plan.TotalPaid.String()+" ")
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%s balance paid off\n", paidOffMarker)
}

// rowCells returns the active scenario balances of a row in column order.
func rowCells(row domain.DebtTableRow) []money.Money {
	cells := []money.Money{row.RemainingDebt, row.RemainingDebtWithAdditional}
	if row.RemainingDebtWithCustomAPY != nil {
		cells = append(cells, *row.RemainingDebtWithCustomAPY)
	}
	if row.RemainingDebtWithCurrentMonthlyPayment != nil {
		cells = append(cells, *row.RemainingDebtWithCurrentMonthlyPayment)
	}
	return cells
}

func markPaidOff(m money.Money) string {
	if m.String() == "0.00" {
		return m.String() + paidOffMarker
	}
	return m.String() + " "
}
