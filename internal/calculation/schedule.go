package calculation

import (
	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/rpgo/sip-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// GrowthSchedule projects the balance at the end of every year of the
// horizon. The yearly investment is added at the start of each year and the
// running balance then grows by one year of return.
func GrowthSchedule(yearlyInvestment, annualRatePercent decimal.Decimal, years int) []domain.YearlyBalance {
	if years <= 0 {
		return nil
	}

	growthFactor := decimal.NewFromInt(1).Add(annualRatePercent.Div(hundred))
	schedule := make([]domain.YearlyBalance, 0, years)

	// balance keeps full precision; rows are rounded to cents and their
	// growth is derived from the rounded balances so each row adds up.
	balance := decimal.Zero
	previous := decimal.Zero
	contribution := money.NewMoneyFromDecimal(yearlyInvestment)
	principal := money.Zero()
	for year := 1; year <= years; year++ {
		principal = principal.Add(contribution)
		balance = balance.Add(yearlyInvestment).Mul(growthFactor)
		end := balance.Round(2)

		schedule = append(schedule, domain.YearlyBalance{
			Year:                year,
			Contribution:        yearlyInvestment,
			CumulativePrincipal: principal.Decimal,
			Growth:              end.Sub(previous).Sub(yearlyInvestment),
			EndBalance:          end,
		})
		previous = end
	}
	return schedule
}

// decimalFutureValue is FutureValue evaluated in decimal arithmetic.
func decimalFutureValue(yearlyInvestment, annualRatePercent decimal.Decimal, years int) decimal.Decimal {
	growthFactor := decimal.NewFromInt(1).Add(annualRatePercent.Div(hundred))
	balance := decimal.Zero
	for year := 1; year <= years; year++ {
		balance = balance.Add(yearlyInvestment).Mul(growthFactor)
	}
	return balance
}
