package calculation

import (
	"math"
)

// FutureValue returns the future value of a yearly investment compounded
// annually. Each contribution is made at the start of year y and grows for
// the remaining years - y + 1 years (annuity-due). Terms are summed in year
// order so the result matches a term-by-term evaluation.
//
// Inputs are not range checked; a non-positive horizon yields 0.
func FutureValue(yearlyInvestment, annualReturnRatePercent float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if annualReturnRatePercent == 0 {
		return yearlyInvestment * float64(years)
	}

	growth := 1 + annualReturnRatePercent/100
	futureValue := 0.0
	for year := 1; year <= years; year++ {
		futureValue += yearlyInvestment * math.Pow(growth, float64(years-year+1))
	}
	return futureValue
}

// FutureValueClosedForm evaluates the annuity-due closed form
// P(1+r)((1+r)^n - 1)/r. It agrees with FutureValue up to floating point
// rounding in the last digits.
func FutureValueClosedForm(yearlyInvestment, annualReturnRatePercent float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	r := annualReturnRatePercent / 100
	if r == 0 {
		return yearlyInvestment * float64(years)
	}
	return yearlyInvestment * (1 + r) * (math.Pow(1+r, float64(years)) - 1) / r
}
