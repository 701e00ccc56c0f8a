package output

import (
	"fmt"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// Summary holds the headline sentences shown above the payoff schedule. Optional
// sentences are empty when they do not apply.
type Summary struct {
	RequiredPayment string
	MonthsSooner    string
	CurrentPayment  string
	// NeverPaidOff is set when the current payment does not retire the debt within the
	// simulated horizon.
	NeverPaidOff string
}

// Lines returns the non-empty sentences in display order.
func (s Summary) Lines() []string {
	lines := make([]string, 0, 4)
	for _, l := range []string{s.RequiredPayment, s.MonthsSooner, s.CurrentPayment, s.NeverPaidOff} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Summarize derives the headline sentences from a comparison.
// Extracted from the formatters so the conditions can be tested on their own.
func Summarize(results *domain.PayoffComparison) Summary {
	in := results.Inputs
	s := Summary{
		RequiredPayment: fmt.Sprintf("Required Monthly Payment to pay off the debt in %d months: %s",
			in.DesiredMonths, FormatCurrency(results.RequiredPayment)),
	}

	if saved, ok := results.MonthsSaved(); ok {
		s.MonthsSooner = fmt.Sprintf("With an additional payment of %s per month (total: %s), you will pay off the debt in %d months, which is %d months sooner.",
			FormatCurrency(in.AdditionalPayment), FormatCurrency(results.TotalPaymentWithAdditional),
			results.MonthsToPayOffWithAdditional, saved)
	}

	if month, ok := results.CurrentPaymentPayoff(); ok {
		s.CurrentPayment = fmt.Sprintf("With a monthly payment of %s, it will take approximately %d months to pay off the debt with the current APY.",
			FormatCurrency(in.CurrentMonthlyPayment), month)
	} else if plan := results.Scenarios.CurrentPayment; plan != nil {
		s.NeverPaidOff = fmt.Sprintf("With a monthly payment of %s, the debt is not paid off within %d months at %s APY.",
			FormatCurrency(in.CurrentMonthlyPayment), plan.HorizonMonths, FormatPercentage(in.CustomAPY))
	}
	return s
}
