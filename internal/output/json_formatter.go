package output

import (
	"encoding/json"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// JSONFormatter serializes the comparison's emission record as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PayoffComparison) ([]byte, error) {
	return json.MarshalIndent(BuildRecord(results), "", "  ")
}
