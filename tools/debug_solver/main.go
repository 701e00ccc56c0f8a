package main

import (
	"fmt"
	"os"

	calc "github.com/payoffcalc/payoff-calculator/internal/calculation"
	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// debug_solver prints every candidate payment the bisection tries for the required
// payment, as CSV.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_solver <inputs-file>")
		return
	}
	p := config.NewInputParser()
	inputs, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	balance := inputs.Principal.Mul(decimal.NewFromInt(1).Add(inputs.BalanceTransferFeeRate))
	months := inputs.DesiredMonths
	lo := balance.Div(decimal.NewFromInt(int64(months))).Decimal
	hi := balance.Decimal

	fmt.Println("Iteration,Candidate,FinalBalance,Sufficient")
	iteration := 0
	found := calc.Bisect(lo, hi, calc.PaymentTolerance, func(candidate decimal.Decimal) bool {
		iteration++
		series := calc.Simulate(balance, money.NewMoneyFromDecimal(candidate), months, decimal.Zero)
		ok := series.Last().IsZero()
		fmt.Printf("%d,%s,%s,%t\n", iteration, candidate.StringFixed(6), series.Last(), ok)
		return ok
	})

	required := calc.SolveRequiredPayment(balance, months)
	fmt.Printf("# balance=%s months=%d raw=%s rounded=%s required=%s\n",
		balance, months, found.StringFixed(6), found.StringFixed(2), required)
	if required.String() != found.StringFixed(2) {
		fmt.Println("# rounded midpoint is not the smallest retiring cent payment")
	}
}
