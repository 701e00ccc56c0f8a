package calculation

import "github.com/shopspring/decimal"

// maxBisectIterations guards against tolerances finer than decimal division precision.
const maxBisectIterations = 200

var two = decimal.NewFromInt(2)

// Bisect finds the smallest value in [lo, hi] for which sufficient holds, to within
// tolerance. sufficient must be monotone: false below some threshold and true from it on.
// The midpoint of the final bracket is returned; hi itself is assumed sufficient and is
// never tested.
func Bisect(lo, hi, tolerance decimal.Decimal, sufficient func(decimal.Decimal) bool) decimal.Decimal {
	for i := 0; i < maxBisectIterations && hi.Sub(lo).GreaterThan(tolerance); i++ {
		mid := lo.Add(hi).Div(two)
		if sufficient(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo.Add(hi).Div(two)
}
