package calculation

import (
	"sync"
	"testing"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func baseInputs() domain.PayoffInputs {
	return domain.PayoffInputs{
		Principal:              m("9000"),
		BalanceTransferFeeRate: decimal.RequireFromString("0.05"),
		DesiredMonths:          20,
		AdditionalPayment:      money.Zero(),
		CustomAPY:              decimal.NewFromInt(21),
		CurrentMonthlyPayment:  money.Zero(),
	}
}

func tableStrings(rows []domain.DebtTableRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{r.RemainingDebt.String(), r.RemainingDebtWithAdditional.String()}
		if r.RemainingDebtWithCustomAPY != nil {
			row = append(row, r.RemainingDebtWithCustomAPY.String())
		}
		if r.RemainingDebtWithCurrentMonthlyPayment != nil {
			row = append(row, r.RemainingDebtWithCurrentMonthlyPayment.String())
		}
		out = append(out, row)
	}
	return out
}

func TestRunScenarios_RequiredPaymentOnly(t *testing.T) {
	res := NewCalculationEngine().RunScenarios(baseInputs())

	assert.Equal(t, "9450.00", res.BalanceWithFee.String())
	assert.Equal(t, "472.50", res.RequiredPayment.String())
	assert.Equal(t, "472.50", res.TotalPaymentWithAdditional.String())
	assert.Equal(t, 20, res.MonthsToPayOffWithAdditional)
	assert.Equal(t, 20, res.DisplayMonths)
	assert.Nil(t, res.PayOffMonthWithCustomAPY)
	assert.Nil(t, res.PayOffMonthWithCurrentMonthlyPayment)

	req := res.Scenarios.Required
	require.Len(t, req.Series, 20)
	assert.True(t, req.Series.Last().IsZero())
	assert.Equal(t, "9450.00", req.TotalPaid.String())
	assert.Nil(t, res.Scenarios.CustomAPY)
	assert.Nil(t, res.Scenarios.CurrentPayment)

	require.Len(t, res.Table, 20)
	assert.Equal(t, 1, res.Table[0].Month)
	assert.Equal(t, "8977.50", res.Table[0].RemainingDebt.String())
	assert.Equal(t, "0.00", res.Table[19].RemainingDebt.String())
	assert.Nil(t, res.Table[0].RemainingDebtWithCustomAPY)
	assert.Nil(t, res.Table[0].RemainingDebtWithCurrentMonthlyPayment)

	assert.Len(t, res.Chart.Labels, 20)
	require.Len(t, res.Chart.Datasets, 2)
	assert.Equal(t, domain.ScenarioRequired.Label(), res.Chart.Datasets[0].Label)

	_, sooner := res.MonthsSaved()
	assert.False(t, sooner)
}

func TestRunScenarios_AdditionalPaymentPaysOffEarly(t *testing.T) {
	in := baseInputs()
	in.AdditionalPayment = m("100")
	res := NewCalculationEngine().RunScenarios(in)

	assert.Equal(t, "472.50", res.RequiredPayment.String())
	assert.Equal(t, "572.50", res.TotalPaymentWithAdditional.String())
	assert.Equal(t, 17, res.MonthsToPayOffWithAdditional)
	assert.Equal(t, 17, *res.Scenarios.WithAdditional.PayoffMonth)
	assert.Equal(t, "9450.00", res.Scenarios.WithAdditional.TotalPaid.String())

	assert.Len(t, res.Scenarios.WithAdditional.Trimmed, 17)
	assert.Equal(t, "290.00", res.Table[15].RemainingDebtWithAdditional.String())
	assert.Equal(t, "0.00", res.Table[16].RemainingDebtWithAdditional.String())
	assert.Equal(t, "0.00", res.Table[19].RemainingDebtWithAdditional.String())
	assert.Equal(t, "472.50", res.Table[18].RemainingDebt.String())

	saved, ok := res.MonthsSaved()
	assert.True(t, ok)
	assert.Equal(t, 3, saved)
}

func TestRunScenarios_CustomAPYWithCurrentPayment(t *testing.T) {
	in := baseInputs()
	in.CustomAPYEnabled = true
	in.CurrentMonthlyPayment = m("300")
	res := NewCalculationEngine().RunScenarios(in)

	require.NotNil(t, res.Scenarios.CustomAPY)
	require.NotNil(t, res.Scenarios.CurrentPayment)

	custom := res.Scenarios.CustomAPY
	assert.True(t, custom.InitialBalance.Equal(m("9000")), "custom APY starts from the principal without the fee")
	assert.Len(t, custom.Series, SimulationCeilingMonths)
	assert.Equal(t, 24, *res.PayOffMonthWithCustomAPY)
	assert.Equal(t, 43, *res.PayOffMonthWithCurrentMonthlyPayment)

	assert.Equal(t, 43, res.DisplayMonths)
	require.Len(t, res.Table, 43)
	assert.Equal(t, "0.00", res.Table[30].RemainingDebt.String())
	require.NotNil(t, res.Table[0].RemainingDebtWithCustomAPY)
	assert.Equal(t, "8685.00", res.Table[0].RemainingDebtWithCustomAPY.String())
	assert.Equal(t, "8857.50", res.Table[0].RemainingDebtWithCurrentMonthlyPayment.String())
	assert.Equal(t, "0.00", res.Table[42].RemainingDebtWithCurrentMonthlyPayment.String())

	assert.Equal(t, "12873.39", res.Scenarios.CurrentPayment.TotalPaid.String())
	assert.Equal(t, "11044.03", custom.TotalPaid.String())

	assert.Len(t, res.Chart.Labels, 43)
	require.Len(t, res.Chart.Datasets, 4)
	assert.Equal(t, "bar", res.Chart.Datasets[3].Type)
	assert.Equal(t, "line", res.Chart.Datasets[2].Type)

	month, ok := res.CurrentPaymentPayoff()
	assert.True(t, ok)
	assert.Equal(t, 43, month)
}

func TestRunScenarios_CurrentPaymentBelowInterestNeverPaysOff(t *testing.T) {
	in := baseInputs()
	in.CustomAPYEnabled = true
	in.CurrentMonthlyPayment = m("100") // first month's interest alone is 157.50

	res := NewCalculationEngine().RunScenarios(in)

	require.NotNil(t, res.Scenarios.CurrentPayment)
	assert.Nil(t, res.PayOffMonthWithCurrentMonthlyPayment)
	assert.Equal(t, 24, res.DisplayMonths)
	assert.Len(t, res.Scenarios.CurrentPayment.Trimmed, SimulationCeilingMonths)
	assert.Len(t, res.Chart.Labels, SimulationCeilingMonths)
	assert.True(t, res.Scenarios.CurrentPayment.Series.Last().GreaterThan(m("9000")))

	_, ok := res.CurrentPaymentPayoff()
	assert.False(t, ok)
}

func TestRunScenarios_CustomAPYWithoutCurrentPayment(t *testing.T) {
	in := baseInputs()
	in.CustomAPYEnabled = true

	res := NewCalculationEngine().RunScenarios(in)

	assert.NotNil(t, res.Scenarios.CustomAPY)
	assert.Nil(t, res.Scenarios.CurrentPayment)
	assert.Len(t, res.Scenarios.Plans(), 3)
	assert.NotNil(t, res.Table[0].RemainingDebtWithCustomAPY)
	assert.Nil(t, res.Table[0].RemainingDebtWithCurrentMonthlyPayment)
}

func TestRunScenarios_DegenerateHorizon(t *testing.T) {
	in := baseInputs()
	in.DesiredMonths = 0

	res := NewCalculationEngine().RunScenarios(in)

	assert.Equal(t, "9450.00", res.RequiredPayment.String())
	assert.Empty(t, res.Table)
	assert.Empty(t, res.Scenarios.Required.Series)
}

func TestRunScenarios_Idempotent(t *testing.T) {
	in := baseInputs()
	in.AdditionalPayment = m("37.25")
	in.CustomAPYEnabled = true
	in.CurrentMonthlyPayment = m("250")
	engine := NewCalculationEngine()

	first := engine.RunScenarios(in)
	second := engine.RunScenarios(in)

	assert.True(t, first.RequiredPayment.Equal(second.RequiredPayment))
	assert.Equal(t, tableStrings(first.Table), tableStrings(second.Table))
	assert.Equal(t, first.PayOffMonthWithCurrentMonthlyPayment, second.PayOffMonthWithCurrentMonthlyPayment)
	assert.Equal(t, first.Scenarios.CurrentPayment.TotalPaid.String(), second.Scenarios.CurrentPayment.TotalPaid.String())
}

func TestRunScenarios_ConcurrentCallers(t *testing.T) {
	in := baseInputs()
	in.CustomAPYEnabled = true
	in.CurrentMonthlyPayment = m("300")
	engine := NewCalculationEngine()
	want := tableStrings(engine.RunScenarios(in).Table)

	var wg sync.WaitGroup
	results := make([][][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tableStrings(engine.RunScenarios(in).Table)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCalculationEngine_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewCalculationEngine()
	engine.SetLogger(zap.New(core).Sugar())
	engine.Debug = true

	in := baseInputs()
	in.CustomAPYEnabled = true
	engine.RunScenarios(in)

	assert.Equal(t, 1, logs.FilterMessageSnippet("required payment for 9450.00 over 20 months: 472.50").Len())
	assert.Equal(t, 3, logs.FilterMessageSnippet("scenario ").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestCalculationEngine_WarnsWhenCurrentPaymentNeverPaysOff(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := NewCalculationEngine()
	engine.SetLogger(zap.New(core).Sugar())

	in := baseInputs()
	in.CustomAPYEnabled = true
	in.CurrentMonthlyPayment = m("100")
	engine.RunScenarios(in)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "current payment 100.00 does not pay off 9000.00 within 1000 months at 21% APY", logs.All()[0].Message)

	in.CurrentMonthlyPayment = m("300")
	engine.RunScenarios(in)
	assert.Equal(t, 1, logs.Len())
}
