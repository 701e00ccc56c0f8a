package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/payoffcalc/payoff-calculator/internal/calculation"
	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// TestEngineSnapshot produces a deterministic snapshot of core comparison metrics.
func TestEngineSnapshot(t *testing.T) {
	parser := config.NewInputParser()
	inputs, err := parser.LoadFromFile("../../example_inputs.yaml")
	if err != nil {
		t.Fatalf("load inputs: %v", err)
	}

	res := calculation.NewCalculationEngine().RunScenarios(*inputs)

	// Trim to stable summary fields only
	type total struct {
		Scenario  domain.ScenarioKind `json:"scenario"`
		TotalPaid string              `json:"totalPaid"`
	}
	var out struct {
		RequiredPayment            string  `json:"requiredPayment"`
		TotalPaymentWithAdditional string  `json:"totalPaymentWithAdditional"`
		MonthsWithAdditional       int     `json:"monthsToPayOffWithAdditional"`
		CustomAPYPayoff            *int    `json:"payOffMonthWithCustomAPY"`
		CurrentPaymentPayoff       *int    `json:"payOffMonthWithCurrentMonthlyPayment"`
		DisplayMonths              int     `json:"displayMonths"`
		Totals                     []total `json:"totals"`
	}
	out.RequiredPayment = res.RequiredPayment.String()
	out.TotalPaymentWithAdditional = res.TotalPaymentWithAdditional.String()
	out.MonthsWithAdditional = res.MonthsToPayOffWithAdditional
	out.CustomAPYPayoff = res.PayOffMonthWithCustomAPY
	out.CurrentPaymentPayoff = res.PayOffMonthWithCurrentMonthlyPayment
	out.DisplayMonths = res.DisplayMonths
	for _, plan := range res.Scenarios.Plans() {
		out.Totals = append(out.Totals, total{Scenario: plan.Scenario, TotalPaid: plan.TotalPaid.String()})
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
