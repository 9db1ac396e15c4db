package domain

import (
	"errors"

	"github.com/rpgo/sip-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is used when a plan file does not name one.
const DefaultCurrencySymbol = "₹"

// ErrNoPlans is returned when a plan file or comparison has no plans.
var ErrNoPlans = errors.New("no plans provided")

// CalculationInput is a single SIP calculation request.
type CalculationInput struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// YearlyInvestment annualizes the monthly contribution
func (in CalculationInput) YearlyInvestment() decimal.Decimal {
	return money.NewMoneyFromDecimal(in.MonthlyContribution).Annual().Decimal
}

// Plan is a named calculation input as it appears in a plan file
type Plan struct {
	Name                string          `yaml:"name" json:"name"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// Input returns the calculation input described by the plan
func (p Plan) Input() CalculationInput {
	return CalculationInput{
		MonthlyContribution: p.MonthlyContribution,
		AnnualRatePercent:   p.AnnualRatePercent,
		Years:               p.Years,
	}
}

// PlanFile is the top level document of a YAML plan file.
type PlanFile struct {
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"`
	Plans    []Plan `yaml:"plans" json:"plans"`
}

// CurrencySymbol returns the configured symbol or the default one.
func (pf *PlanFile) CurrencySymbol() string {
	if pf == nil || pf.Currency == "" {
		return DefaultCurrencySymbol
	}
	return pf.Currency
}
