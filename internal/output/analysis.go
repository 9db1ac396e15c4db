package output

import (
	"sort"

	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation describes the plan with the highest future value and its
// lead over the runner-up.
type Recommendation struct {
	PlanName     string
	FutureValue  decimal.Decimal
	RunnerUp     string
	Lead         decimal.Decimal
	LeadPercent  *decimal.Decimal
	ComparedWith int
}

// AnalyzePlans ranks the results by future value. It returns a zero
// Recommendation when fewer than two plans were compared.
func AnalyzePlans(results *domain.PlanComparison) Recommendation {
	if results == nil || len(results.Results) < 2 {
		return Recommendation{}
	}
	ranked := append([]domain.CalculationResult(nil), results.Results...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].FutureValue.GreaterThan(ranked[j].FutureValue) })

	best, next := ranked[0], ranked[1]
	rec := Recommendation{
		PlanName:     best.Name,
		FutureValue:  best.FutureValue,
		RunnerUp:     next.Name,
		Lead:         best.FutureValue.Sub(next.FutureValue),
		ComparedWith: len(ranked) - 1,
	}
	if next.FutureValue.IsPositive() {
		pct := rec.Lead.Div(next.FutureValue).Mul(decimal.NewFromInt(100))
		rec.LeadPercent = &pct
	}
	return rec
}
