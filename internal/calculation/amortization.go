package calculation

import (
	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// WorkingPrecision is the number of decimal places interest-bearing balances are kept at
// between months. Without it every month of accrual lengthens the exact decimal.
const WorkingPrecision int32 = 12

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyRate converts an annual rate into the flat monthly rate (annual / 12).
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(monthsPerYear)
}

// AmortizationSchedule records one simulation pass.
type AmortizationSchedule struct {
	// Balances has exactly the requested number of months, zero-padded after payoff.
	Balances domain.BalanceSeries
	// Paid holds what was actually paid in each simulated month. It stops at the
	// payoff month, so it can be shorter than Balances.
	Paid []money.Money
}

// TotalPaid sums the amounts actually paid.
func (s AmortizationSchedule) TotalPaid() money.Money {
	return money.Sum(s.Paid...)
}

// Amortize simulates a fixed monthly payment against a balance for up to months months.
// Each month interest accrues first, then the payment (capped at the accrued balance for
// the amount paid) is subtracted. The simulation stops advancing once the balance is
// exhausted and the remaining months are recorded as zero.
//
// Amortize never fails: months <= 0 yields an empty schedule and a negative payment
// grows the balance.
func Amortize(initialBalance, monthlyPayment money.Money, months int, annualRate decimal.Decimal) AmortizationSchedule {
	if months <= 0 {
		return AmortizationSchedule{Balances: domain.BalanceSeries{}}
	}

	rate := MonthlyRate(annualRate)
	accrues := !rate.IsZero()
	balances := make(domain.BalanceSeries, 0, months)
	paid := make([]money.Money, 0, months)

	balance := initialBalance
	for i := 0; i < months; i++ {
		if accrues {
			balance = balance.AccrueInterest(rate).RoundTo(WorkingPrecision)
		}
		paid = append(paid, money.Min(balance, monthlyPayment))
		balance = balance.Sub(monthlyPayment)
		balances = append(balances, balance.ClampZero())
		if !balance.IsPositive() {
			break
		}
	}

	for len(balances) < months {
		balances = append(balances, money.Zero())
	}

	return AmortizationSchedule{Balances: balances, Paid: paid}
}

// Simulate returns the month-end remaining balances, exactly months long.
func Simulate(initialBalance, monthlyPayment money.Money, months int, annualRate decimal.Decimal) domain.BalanceSeries {
	return Amortize(initialBalance, monthlyPayment, months, annualRate).Balances
}

// TotalPaid returns the total actually paid over at most months months. It shares the
// simulation pass with Simulate so the two always agree.
func TotalPaid(initialBalance, monthlyPayment money.Money, annualRate decimal.Decimal, months int) money.Money {
	return Amortize(initialBalance, monthlyPayment, months, annualRate).TotalPaid()
}

// TrimToFirstZero returns the series up to and including its first zero balance, or the
// whole series when it never reaches zero.
func TrimToFirstZero(series domain.BalanceSeries) domain.BalanceSeries {
	i := series.FirstZeroIndex()
	if i < 0 {
		return series
	}
	return series[: i+1 : i+1]
}
