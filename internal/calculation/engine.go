package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/rpgo/sip-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrNoPlans is returned when a comparison is requested for an empty plan file.
var ErrNoPlans = domain.ErrNoPlans

var hundred = decimal.NewFromInt(100)

// CalculationEngine turns calculation inputs into results with derived totals
type CalculationEngine struct {
	// IncludeSchedule attaches the year-by-year growth schedule to each result.
	IncludeSchedule bool
	Logger          Logger
}

// NewCalculationEngine creates an engine that includes schedules and logs nothing.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		IncludeSchedule: true,
		Logger:          NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate computes the future value of the input and the derived principal,
// gain and gain percentage. The gain percentage is left nil when the total
// principal is not positive.
func (ce *CalculationEngine) Calculate(in domain.CalculationInput) *domain.CalculationResult {
	yearly := in.YearlyInvestment()
	fv := FutureValue(yearly.InexactFloat64(), in.AnnualRatePercent.InexactFloat64(), in.Years)

	years := in.Years
	if years < 0 {
		years = 0
	}
	principal := yearly.Mul(decimal.NewFromInt(int64(years)))
	var futureValue decimal.Decimal
	if math.IsInf(fv, 0) || math.IsNaN(fv) {
		ce.logger().Warnf("future value overflows float64 (rate=%s%% years=%d), using decimal arithmetic", in.AnnualRatePercent.String(), in.Years)
		futureValue = decimalFutureValue(yearly, in.AnnualRatePercent, in.Years)
	} else {
		futureValue = money.NewMoney(fv).Decimal
	}
	gain := money.NewMoneyFromDecimal(futureValue).Sub(money.NewMoneyFromDecimal(principal)).Decimal

	result := &domain.CalculationResult{
		Input:            in,
		YearlyInvestment: yearly,
		FutureValue:      futureValue,
		TotalPrincipal:   principal,
		TotalGain:        gain,
	}

	if principal.IsPositive() {
		pct := gain.Div(principal).Mul(hundred)
		result.TotalGainPercent = &pct
	} else {
		ce.logger().Debugf("total principal is %s, gain percentage not applicable", principal.StringFixed(2))
	}

	if ce.IncludeSchedule {
		result.Schedule = GrowthSchedule(yearly, in.AnnualRatePercent, in.Years)
	}

	ce.logger().Debugf("calculated SIP: monthly=%s rate=%s%% years=%d fv=%s principal=%s",
		in.MonthlyContribution.StringFixed(2), in.AnnualRatePercent.String(), in.Years,
		futureValue.StringFixed(2), principal.StringFixed(2))

	return result
}

// ComparePlans calculates every plan in the file. Results are ordered by plan
// name and the plan with the highest future value is named best.
func (ce *CalculationEngine) ComparePlans(pf *domain.PlanFile) (*domain.PlanComparison, error) {
	if pf == nil || len(pf.Plans) == 0 {
		return nil, ErrNoPlans
	}

	for i, p := range pf.Plans {
		if p.Name == "" {
			return nil, fmt.Errorf("plan %d has no name", i+1)
		}
	}

	plans := append([]domain.Plan(nil), pf.Plans...)
	sort.SliceStable(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })

	comparison := &domain.PlanComparison{
		Currency: pf.CurrencySymbol(),
		Results:  make([]domain.CalculationResult, 0, len(plans)),
	}

	var best *domain.CalculationResult
	for _, p := range plans {
		r := ce.Calculate(p.Input())
		r.Name = p.Name
		comparison.Results = append(comparison.Results, *r)
		if best == nil || r.FutureValue.GreaterThan(best.FutureValue) {
			best = r
		}
	}
	comparison.Best = best.Name

	ce.logger().Infof("compared %d plans, best: %s", len(comparison.Results), comparison.Best)
	return comparison, nil
}

// Single wraps one result in a comparison so every formatter can render it.
func Single(currency string, r *domain.CalculationResult) *domain.PlanComparison {
	if currency == "" {
		currency = domain.DefaultCurrencySymbol
	}
	return &domain.PlanComparison{
		Currency: currency,
		Results:  []domain.CalculationResult{*r},
		Best:     r.Name,
	}
}
