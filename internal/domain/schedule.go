package domain

import (
	"strconv"

	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// BalanceSeries holds month-end remaining balances; index 0 is month 1.
type BalanceSeries []money.Money

// At returns the balance for a 0-based month index, or zero past the end of the series.
func (s BalanceSeries) At(i int) money.Money {
	if i < 0 || i >= len(s) {
		return money.Zero()
	}
	return s[i]
}

// Last returns the final balance, or zero for an empty series.
func (s BalanceSeries) Last() money.Money {
	return s.At(len(s) - 1)
}

// FirstZeroIndex returns the 0-based index of the first zero balance, or -1.
func (s BalanceSeries) FirstZeroIndex() int {
	for i, b := range s {
		if b.IsZero() {
			return i
		}
	}
	return -1
}

// PayoffMonth returns the 1-based month in which the balance first reaches zero,
// or nil when it never does within the series.
func (s BalanceSeries) PayoffMonth() *int {
	i := s.FirstZeroIndex()
	if i < 0 {
		return nil
	}
	month := i + 1
	return &month
}

// FormatPayoffMonth renders an optional payoff month, "never" when absent.
func FormatPayoffMonth(m *int) string {
	if m == nil {
		return "never"
	}
	return strconv.Itoa(*m)
}

// ScenarioKind identifies one of the payment scenarios being compared.
type ScenarioKind string

const (
	ScenarioRequired       ScenarioKind = "required"
	ScenarioWithAdditional ScenarioKind = "with_additional"
	ScenarioCustomAPY      ScenarioKind = "custom_apy"
	ScenarioCurrentPayment ScenarioKind = "current_payment"
)

// Label is the human readable series name used by tables and charts.
func (k ScenarioKind) Label() string {
	switch k {
	case ScenarioRequired:
		return "Remaining Debt ($)"
	case ScenarioWithAdditional:
		return "Remaining Debt with Additional Payment ($)"
	case ScenarioCustomAPY:
		return "Remaining Debt with Custom APY ($)"
	case ScenarioCurrentPayment:
		return "Remaining Debt with Custom APY and Payment ($)"
	}
	return string(k)
}

// Color is the RGBA colour each scenario is drawn with.
func (k ScenarioKind) Color() string {
	switch k {
	case ScenarioRequired:
		return "rgba(153,102,255,1)"
	case ScenarioWithAdditional:
		return "rgba(255,99,132,1)"
	case ScenarioCustomAPY:
		return "rgba(255,206,86,1)"
	case ScenarioCurrentPayment:
		return "rgba(54,162,235,1)"
	}
	return "rgba(0,0,0,1)"
}

// ChartType is "bar" for the current-payment scenario and "line" otherwise.
func (k ScenarioKind) ChartType() string {
	if k == ScenarioCurrentPayment {
		return "bar"
	}
	return "line"
}

// PayoffPlan is one fully derived scenario.
type PayoffPlan struct {
	Scenario       ScenarioKind    `json:"scenario"`
	InitialBalance money.Money     `json:"initial_balance"`
	MonthlyPayment money.Money     `json:"monthly_payment"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	HorizonMonths  int             `json:"horizon_months"`

	// Series is padded to HorizonMonths; Trimmed stops at the first zero.
	Series      BalanceSeries `json:"series"`
	Trimmed     BalanceSeries `json:"trimmed"`
	PayoffMonth *int          `json:"payoff_month"`
	TotalPaid   money.Money   `json:"total_paid"`
}

// ScenarioSet holds the compared plans. The custom APY plans are nil unless that mode
// is enabled; CurrentPayment is also nil without a positive current payment.
type ScenarioSet struct {
	Required       PayoffPlan  `json:"required"`
	WithAdditional PayoffPlan  `json:"with_additional"`
	CustomAPY      *PayoffPlan `json:"custom_apy,omitempty"`
	CurrentPayment *PayoffPlan `json:"current_payment,omitempty"`
}

// Plans returns the active plans in display order.
func (ss ScenarioSet) Plans() []PayoffPlan {
	plans := []PayoffPlan{ss.Required, ss.WithAdditional}
	if ss.CustomAPY != nil {
		plans = append(plans, *ss.CustomAPY)
	}
	if ss.CurrentPayment != nil {
		plans = append(plans, *ss.CurrentPayment)
	}
	return plans
}

// DebtTableRow is one month of the combined comparison table.
type DebtTableRow struct {
	Month                                  int          `json:"month"`
	RemainingDebt                          money.Money  `json:"remaining_debt"`
	RemainingDebtWithAdditional            money.Money  `json:"remaining_debt_with_additional"`
	RemainingDebtWithCustomAPY             *money.Money `json:"remaining_debt_with_custom_apy,omitempty"`
	RemainingDebtWithCurrentMonthlyPayment *money.Money `json:"remaining_debt_with_current_monthly_payment,omitempty"`
}

// ChartSeries is one dataset of the comparison chart.
type ChartSeries struct {
	Scenario ScenarioKind  `json:"scenario"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Color    string        `json:"color"`
	Data     BalanceSeries `json:"data"`
}

// ChartData holds month labels and one dataset per active scenario.
type ChartData struct {
	Labels   []int         `json:"labels"`
	Datasets []ChartSeries `json:"datasets"`
}

// PayoffComparison is the complete result of one calculator run.
type PayoffComparison struct {
	Inputs                               PayoffInputs `json:"inputs"`
	BalanceWithFee                       money.Money  `json:"balance_with_fee"`
	RequiredPayment                      money.Money  `json:"required_payment"`
	TotalPaymentWithAdditional           money.Money  `json:"total_payment_with_additional"`
	MonthsToPayOffWithAdditional         int          `json:"months_to_pay_off_with_additional"`
	PayOffMonthWithCustomAPY             *int         `json:"pay_off_month_with_custom_apy"`
	PayOffMonthWithCurrentMonthlyPayment *int         `json:"pay_off_month_with_current_monthly_payment"`
	DisplayMonths                        int          `json:"display_months"`

	Scenarios ScenarioSet    `json:"scenarios"`
	Table     []DebtTableRow `json:"table"`
	Chart     ChartData      `json:"chart"`
}

// MonthsSaved reports how many months sooner the additional payment retires the debt.
// ok is false when there is no additional payment or it does not shorten the payoff.
func (pc *PayoffComparison) MonthsSaved() (months int, ok bool) {
	if !pc.Inputs.AdditionalPayment.IsPositive() {
		return 0, false
	}
	if pc.MonthsToPayOffWithAdditional >= pc.Inputs.DesiredMonths {
		return 0, false
	}
	return pc.Inputs.DesiredMonths - pc.MonthsToPayOffWithAdditional, true
}

// CurrentPaymentPayoff returns the payoff month at the user's current payment and custom APY.
func (pc *PayoffComparison) CurrentPaymentPayoff() (month int, ok bool) {
	if !pc.Inputs.HasCurrentPaymentScenario() || pc.PayOffMonthWithCurrentMonthlyPayment == nil {
		return 0, false
	}
	return *pc.PayOffMonthWithCurrentMonthlyPayment, true
}
