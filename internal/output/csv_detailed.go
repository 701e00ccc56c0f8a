package output

import (
	"bytes"
	"encoding/csv"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// CSVScheduleExporter provides the raw per-scenario schedule in long form: one row per
// scenario and simulated month, up to the month the scenario is paid off.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "detailed-csv" }

func (c CSVScheduleExporter) Format(results *domain.PayoffComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "MonthlyPayment", "AnnualRate", "RemainingBalance", "PaidOff"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, plan := range results.Scenarios.Plans() {
		for i, balance := range plan.Trimmed {
			row := []string{
				string(plan.Scenario),
				intToString(i + 1),
				plan.MonthlyPayment.String(),
				plan.AnnualRate.String(),
				balance.String(),
				boolToString(balance.IsZero()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
