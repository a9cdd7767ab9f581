package generic

import "github.com/shopspring/decimal"

// Bisect narrows [low, high] for exactly iterations steps and returns the
// final low bound. below(mid) reports whether mid is still under the target;
// when it is, low moves up to mid, otherwise high moves down.
//
// The step count is fixed, not tolerance-driven: the same inputs always give
// the same digits. below must be true then false as mid grows for the result
// to be the crossing point; nothing here checks that.
func Bisect(low, high decimal.Decimal, iterations int, below func(mid decimal.Decimal) bool) decimal.Decimal {
	for i := 0; i < iterations; i++ {
		mid := low.Add(high).Div(two)
		if below(mid) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}
