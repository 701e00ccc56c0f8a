package output

import (
	"bytes"
	"encoding/csv"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// CSVTableFormatter writes the debt table, one row per month, with a total-paid footer row.
type CSVTableFormatter struct{}

func (c CSVTableFormatter) Name() string { return "csv" }

func (c CSVTableFormatter) Format(results *domain.PayoffComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	plans := results.Scenarios.Plans()

	header := []string{"Month"}
	for _, plan := range plans {
		header = append(header, plan.Scenario.Label())
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range results.Table {
		record := []string{intToString(row.Month)}
		for _, cell := range rowCells(row) {
			record = append(record, cell.String())
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	footer := []string{"Total Amount Paid"}
	for _, plan := range plans {
		footer = append(footer, plan.TotalPaid.String())
	}
	if err := w.Write(footer); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
