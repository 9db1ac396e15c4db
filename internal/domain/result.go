package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyBalance is one row of the year-by-year growth schedule
type YearlyBalance struct {
	Year                int             `yaml:"year" json:"year"`
	Contribution        decimal.Decimal `yaml:"contribution" json:"contribution"`
	CumulativePrincipal decimal.Decimal `yaml:"cumulative_principal" json:"cumulative_principal"`
	Growth              decimal.Decimal `yaml:"growth" json:"growth"`
	EndBalance          decimal.Decimal `yaml:"end_balance" json:"end_balance"`
}

// CalculationResult holds the future value of a SIP along with the derived totals.
type CalculationResult struct {
	Name             string           `yaml:"name,omitempty" json:"name,omitempty"`
	Input            CalculationInput `yaml:"input" json:"input"`
	YearlyInvestment decimal.Decimal  `yaml:"yearly_investment" json:"yearly_investment"`
	FutureValue      decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalPrincipal   decimal.Decimal  `yaml:"total_principal" json:"total_principal"`
	TotalGain        decimal.Decimal  `yaml:"total_gain" json:"total_gain"`

	// TotalGainPercent is nil when there is no principal to measure the gain against.
	TotalGainPercent *decimal.Decimal `yaml:"total_gain_percent" json:"total_gain_percent"`

	Schedule []YearlyBalance `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// GainPercentApplicable reports whether a gain percentage was computed
func (r *CalculationResult) GainPercentApplicable() bool {
	return r.TotalGainPercent != nil
}

// PlanComparison groups the results of every plan in a plan file
type PlanComparison struct {
	Currency string              `yaml:"currency" json:"currency"`
	Results  []CalculationResult `yaml:"results" json:"results"`
	Best     string              `yaml:"best" json:"best"`
}
