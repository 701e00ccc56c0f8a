package output

import (
	"fmt"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// GenerateAssumptions lists the inputs and modeling assumptions behind a comparison,
// rendered in the detailed outputs.
func GenerateAssumptions(results *domain.PayoffComparison) []string {
	in := results.Inputs
	out := []string{
		fmt.Sprintf("Transferred balance: %s", FormatCurrency(in.Principal)),
		fmt.Sprintf("Balance transfer fee: %s (balance with fee: %s)",
			FormatPercentage(in.BalanceTransferFeeRate.Mul(decimalHundred)), FormatCurrency(results.BalanceWithFee)),
		fmt.Sprintf("Promotional period: %d months at 0%% APY", in.DesiredMonths),
		fmt.Sprintf("Additional monthly payment: %s", FormatCurrency(in.AdditionalPayment)),
	}
	if in.CustomAPYEnabled {
		out = append(out, fmt.Sprintf("Custom APY: %s, compounded monthly on the transferred balance without the fee", FormatPercentage(in.CustomAPY)))
		if in.CurrentMonthlyPayment.IsPositive() {
			out = append(out, fmt.Sprintf("Current monthly payment: %s", FormatCurrency(in.CurrentMonthlyPayment)))
		}
	}
	return out
}
