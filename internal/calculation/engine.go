package calculation

import (
	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// SimulationCeilingMonths is how far the custom APY scenarios are simulated. It is long
// enough for any realistic payment to reach zero or visibly plateau.
const SimulationCeilingMonths = 1000

// CalculationEngine builds the payoff scenario comparison. It holds no per-run state,
// so one engine may be shared by concurrent callers once configured.
type CalculationEngine struct {
	SimulationCeiling int  // months simulated for the custom APY scenarios
	Debug             bool // log per-scenario detail
	Logger            Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		SimulationCeiling: SimulationCeilingMonths,
		Logger:            NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SolveRequiredPayment runs the payment search and logs the result.
func (ce *CalculationEngine) SolveRequiredPayment(balance money.Money, months int) money.Money {
	payment := SolveRequiredPayment(balance, months)
	ce.Logger.Debugf("required payment for %s over %d months: %s", balance, months, payment)
	return payment
}

// RunScenarios derives every payoff scenario from inputs. The transfer fee applies to the
// promotional scenarios only; the custom APY scenarios start from the original principal.
func (ce *CalculationEngine) RunScenarios(inputs domain.PayoffInputs) *domain.PayoffComparison {
	balanceWithFee := inputs.Principal.Mul(decimal.NewFromInt(1).Add(inputs.BalanceTransferFeeRate))
	required := ce.SolveRequiredPayment(balanceWithFee, inputs.DesiredMonths)
	withAdditional := required.Add(inputs.AdditionalPayment)

	set := domain.ScenarioSet{
		Required:       newPlan(domain.ScenarioRequired, balanceWithFee, required, decimal.Zero, inputs.DesiredMonths),
		WithAdditional: newPlan(domain.ScenarioWithAdditional, balanceWithFee, withAdditional, decimal.Zero, inputs.DesiredMonths),
	}

	if inputs.CustomAPYEnabled {
		rate := inputs.CustomAnnualRate()
		customAPY := newPlan(domain.ScenarioCustomAPY, inputs.Principal, withAdditional, rate, ce.ceiling())
		set.CustomAPY = &customAPY
		if inputs.CurrentMonthlyPayment.IsPositive() {
			current := newPlan(domain.ScenarioCurrentPayment, inputs.Principal, inputs.CurrentMonthlyPayment, rate, ce.ceiling())
			set.CurrentPayment = &current
		}
	}

	display := displayMonths(inputs.DesiredMonths, set)
	for _, plan := range []*domain.PayoffPlan{&set.Required, &set.WithAdditional, set.CustomAPY, set.CurrentPayment} {
		if plan == nil {
			continue
		}
		plan.TotalPaid = TotalPaid(plan.InitialBalance, plan.MonthlyPayment, plan.AnnualRate, display)
		if ce.Debug {
			ce.Logger.Debugf("scenario %s: payment=%s rate=%s payoff_month=%s total_paid=%s",
				plan.Scenario, plan.MonthlyPayment, plan.AnnualRate, domain.FormatPayoffMonth(plan.PayoffMonth), plan.TotalPaid)
		}
	}

	monthsWithAdditional := inputs.DesiredMonths
	if m := set.WithAdditional.PayoffMonth; m != nil {
		monthsWithAdditional = *m
	}

	result := &domain.PayoffComparison{
		Inputs:                       inputs,
		BalanceWithFee:               balanceWithFee,
		RequiredPayment:              required,
		TotalPaymentWithAdditional:   withAdditional,
		MonthsToPayOffWithAdditional: monthsWithAdditional,
		DisplayMonths:                display,
		Scenarios:                    set,
		Table:                        buildTable(set, display),
		Chart:                        buildChart(set),
	}
	if set.CustomAPY != nil {
		result.PayOffMonthWithCustomAPY = set.CustomAPY.PayoffMonth
	}
	if set.CurrentPayment != nil {
		result.PayOffMonthWithCurrentMonthlyPayment = set.CurrentPayment.PayoffMonth
	}

	if set.CurrentPayment != nil && set.CurrentPayment.PayoffMonth == nil {
		ce.Logger.Warnf("current payment %s does not pay off %s within %d months at %s%% APY",
			inputs.CurrentMonthlyPayment, inputs.Principal, set.CurrentPayment.HorizonMonths, inputs.CustomAPY)
	}

	ce.Logger.Infof("payoff comparison: balance_with_fee=%s required=%s months_with_additional=%d display_months=%d",
		balanceWithFee, required, monthsWithAdditional, display)
	return result
}

func (ce *CalculationEngine) ceiling() int {
	if ce.SimulationCeiling <= 0 {
		return SimulationCeilingMonths
	}
	return ce.SimulationCeiling
}

func newPlan(kind domain.ScenarioKind, balance, payment money.Money, annualRate decimal.Decimal, months int) domain.PayoffPlan {
	series := Simulate(balance, payment, months, annualRate)
	return domain.PayoffPlan{
		Scenario:       kind,
		InitialBalance: balance,
		MonthlyPayment: payment,
		AnnualRate:     annualRate,
		HorizonMonths:  months,
		Series:         series,
		Trimmed:        TrimToFirstZero(series),
		PayoffMonth:    series.PayoffMonth(),
	}
}

// displayMonths is the common row count: the desired horizon or any later custom APY payoff.
func displayMonths(desired int, set domain.ScenarioSet) int {
	months := desired
	for _, plan := range []*domain.PayoffPlan{set.CustomAPY, set.CurrentPayment} {
		if plan != nil && plan.PayoffMonth != nil && *plan.PayoffMonth > months {
			months = *plan.PayoffMonth
		}
	}
	return months
}

func buildTable(set domain.ScenarioSet, months int) []domain.DebtTableRow {
	if months <= 0 {
		return []domain.DebtTableRow{}
	}
	rows := make([]domain.DebtTableRow, 0, months)
	for i := 0; i < months; i++ {
		row := domain.DebtTableRow{
			Month:                       i + 1,
			RemainingDebt:               set.Required.Trimmed.At(i),
			RemainingDebtWithAdditional: set.WithAdditional.Trimmed.At(i),
		}
		if set.CustomAPY != nil {
			v := set.CustomAPY.Trimmed.At(i)
			row.RemainingDebtWithCustomAPY = &v
		}
		if set.CurrentPayment != nil {
			v := set.CurrentPayment.Trimmed.At(i)
			row.RemainingDebtWithCurrentMonthlyPayment = &v
		}
		rows = append(rows, row)
	}
	return rows
}

// buildChart labels months up to the longest trimmed series and adds one dataset per plan.
func buildChart(set domain.ScenarioSet) domain.ChartData {
	plans := set.Plans()
	longest := 0
	datasets := make([]domain.ChartSeries, 0, len(plans))
	for _, plan := range plans {
		if len(plan.Trimmed) > longest {
			longest = len(plan.Trimmed)
		}
		datasets = append(datasets, domain.ChartSeries{
			Scenario: plan.Scenario,
			Label:    plan.Scenario.Label(),
			Type:     plan.Scenario.ChartType(),
			Color:    plan.Scenario.Color(),
			Data:     plan.Trimmed,
		})
	}

	labels := make([]int, longest)
	for i := range labels {
		labels[i] = i + 1
	}
	return domain.ChartData{Labels: labels, Datasets: datasets}
}
