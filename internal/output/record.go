package output

import (
	"encoding/json"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
)

// Record is the machine-readable rendering of a comparison. Amounts are strings with
// exactly two decimals; chart points are two-decimal JSON numbers.
type Record struct {
	RequiredPayment                          string            `json:"requiredPayment"`
	TotalPaymentWithAdditional               string            `json:"totalPaymentWithAdditional"`
	MonthsToPayOffWithAdditional             int               `json:"monthsToPayOffWithAdditional"`
	PayOffMonthWithCustomAPY                 *int              `json:"payOffMonthWithCustomAPY"`
	PayOffMonthWithCurrentMonthlyPayment     *int              `json:"payOffMonthWithCurrentMonthlyPayment"`
	TotalAmountPaidWithPayment               string            `json:"totalAmountPaidWithPayment"`
	TotalAmountPaidWithAdditionalPayment     string            `json:"totalAmountPaidWithAdditionalPayment"`
	TotalAmountPaidWithCustomAPY             *string           `json:"totalAmountPaidWithCustomAPY"`
	TotalAmountPaidWithCurrentMonthlyPayment *string           `json:"totalAmountPaidWithCurrentMonthlyPayment"`
	DebtTable                                []DebtTableRecord `json:"debtTable"`
	ChartData                                ChartRecord       `json:"chartData"`
}

// DebtTableRecord is one month of the debt table.
type DebtTableRecord struct {
	Month                                  int     `json:"month"`
	RemainingDebt                          string  `json:"remainingDebt"`
	RemainingDebtWithAdditional            string  `json:"remainingDebtWithAdditional"`
	RemainingDebtWithCustomAPY             *string `json:"remainingDebtWithCustomAPY"`
	RemainingDebtWithCurrentMonthlyPayment *string `json:"remainingDebtWithCurrentMonthlyPayment"`
}

// ChartRecord mirrors the Chart.js data object.
type ChartRecord struct {
	Labels   []int           `json:"labels"`
	Datasets []DatasetRecord `json:"datasets"`
}

// DatasetRecord is one Chart.js dataset. Bar datasets carry no fill flag.
type DatasetRecord struct {
	Label           string        `json:"label"`
	Type            string        `json:"type"`
	Data            []json.Number `json:"data"`
	Fill            *bool         `json:"fill,omitempty"`
	BackgroundColor string        `json:"backgroundColor"`
	BorderColor     string        `json:"borderColor"`
}

// BuildRecord converts a comparison into its emission record.
func BuildRecord(results *domain.PayoffComparison) Record {
	set := results.Scenarios
	rec := Record{
		RequiredPayment:                      results.RequiredPayment.String(),
		TotalPaymentWithAdditional:           results.TotalPaymentWithAdditional.String(),
		MonthsToPayOffWithAdditional:         results.MonthsToPayOffWithAdditional,
		PayOffMonthWithCustomAPY:             results.PayOffMonthWithCustomAPY,
		PayOffMonthWithCurrentMonthlyPayment: results.PayOffMonthWithCurrentMonthlyPayment,
		TotalAmountPaidWithPayment:           set.Required.TotalPaid.String(),
		TotalAmountPaidWithAdditionalPayment: set.WithAdditional.TotalPaid.String(),
		DebtTable:                            make([]DebtTableRecord, 0, len(results.Table)),
	}
	if set.CustomAPY != nil {
		rec.TotalAmountPaidWithCustomAPY = optionalAmount(&set.CustomAPY.TotalPaid)
	}
	if set.CurrentPayment != nil {
		rec.TotalAmountPaidWithCurrentMonthlyPayment = optionalAmount(&set.CurrentPayment.TotalPaid)
	}

	for _, row := range results.Table {
		rec.DebtTable = append(rec.DebtTable, DebtTableRecord{
			Month:                                  row.Month,
			RemainingDebt:                          row.RemainingDebt.String(),
			RemainingDebtWithAdditional:            row.RemainingDebtWithAdditional.String(),
			RemainingDebtWithCustomAPY:             optionalAmount(row.RemainingDebtWithCustomAPY),
			RemainingDebtWithCurrentMonthlyPayment: optionalAmount(row.RemainingDebtWithCurrentMonthlyPayment),
		})
	}

	rec.ChartData.Labels = results.Chart.Labels
	if rec.ChartData.Labels == nil {
		rec.ChartData.Labels = []int{}
	}
	for _, ds := range results.Chart.Datasets {
		data := make([]json.Number, len(ds.Data))
		for i, b := range ds.Data {
			data[i] = json.Number(b.String())
		}
		out := DatasetRecord{
			Label:           ds.Label,
			Type:            ds.Type,
			Data:            data,
			BackgroundColor: ds.Color,
			BorderColor:     ds.Color,
		}
		if ds.Type == "line" {
			fill := false
			out.Fill = &fill
		}
		rec.ChartData.Datasets = append(rec.ChartData.Datasets, out)
	}
	return rec
}

func optionalAmount(m *money.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}
