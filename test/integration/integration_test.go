package integration

import (
	"errors"
	"testing"

	"github.com/payoffcalc/payoff-calculator/internal/calculation"
	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	inputs, err := parser.LoadFromFile("../testdata/example_inputs.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	results := engine.RunScenarios(*inputs)

	assert.Equal(t, "9450.00", results.BalanceWithFee.String())
	assert.Equal(t, "472.50", results.RequiredPayment.String())
	assert.Equal(t, "572.50", results.TotalPaymentWithAdditional.String())
	assert.Equal(t, 17, results.MonthsToPayOffWithAdditional)
	assert.Len(t, results.Table, 20)
	assert.Len(t, results.Chart.Datasets, 2)

	// Solver round trip: the required payment clears the balance in the horizon.
	series := calculation.Simulate(results.BalanceWithFee, results.RequiredPayment, inputs.DesiredMonths, decimal.Zero)
	assert.True(t, series.Last().IsZero())
}

func TestCustomAPYNeverPaysOff(t *testing.T) {
	parser := config.NewInputParser()
	inputs, err := parser.LoadFromFile("../testdata/custom_apy_inputs.yaml")
	require.NoError(t, err)

	results := calculation.NewCalculationEngine().RunScenarios(*inputs)

	require.NotNil(t, results.Scenarios.CustomAPY)
	require.NotNil(t, results.Scenarios.CurrentPayment)
	assert.Equal(t, 24, *results.PayOffMonthWithCustomAPY)
	assert.Nil(t, results.PayOffMonthWithCurrentMonthlyPayment)
	assert.Equal(t, 24, results.DisplayMonths)
	assert.Len(t, results.Chart.Labels, calculation.SimulationCeilingMonths)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.LoadFromFile("../testdata/invalid_inputs.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidInputs))

	_, err = parser.LoadFromFile("../testdata/does_not_exist.yaml")
	assert.Error(t, err)
}
