package calculation

import (
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// PaymentTolerance is the bracket width at which the payment search stops.
var PaymentTolerance = decimal.NewFromFloat(0.01)

// SolveRequiredPayment returns the minimum flat monthly payment, rounded to cents, that
// brings balance to zero within months months at zero interest.
//
// The search brackets the payment between balance/months (no payment below it can
// amortize a non-negative balance in time) and the balance itself (paid off in month one).
// The result is the smallest whole-cent payment for which the simulated balance ends at
// exactly zero. A non-positive horizon returns the whole balance.
func SolveRequiredPayment(balance money.Money, months int) money.Money {
	if months <= 0 {
		return balance.Round()
	}

	retires := func(p decimal.Decimal) bool {
		return Simulate(balance, money.NewMoneyFromDecimal(p), months, decimal.Zero).Last().IsZero()
	}

	lo := balance.Div(decimal.NewFromInt(int64(months)))
	payment := money.NewMoneyFromDecimal(Bisect(lo.Decimal, balance.Decimal, PaymentTolerance, retires)).Round()

	// The bracket midpoint rounds to either side of the threshold. Settle on the
	// smallest whole-cent payment that still retires the balance.
	cent := money.MustMoney("0.01")
	for !retires(payment.Decimal) {
		payment = payment.Add(cent)
	}
	for lower := payment.Sub(cent); lower.IsPositive() && retires(lower.Decimal); lower = payment.Sub(cent) {
		payment = lower
	}
	return payment
}
