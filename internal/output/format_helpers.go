package output

import (
	"strconv"

	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount money.Money) string { return amount.Dollars() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
