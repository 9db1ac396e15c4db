package output

import (
	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/rpgo/sip-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// NotApplicable is rendered in place of a value that could not be computed.
const NotApplicable = "N/A"

// FormulaText is the formula shown alongside every report.
const FormulaText = "FV = P × (1 + r)^n"

// FormulaLegend explains the symbols of FormulaText.
var FormulaLegend = []string{
	"P: Yearly investment (monthly investment × 12)",
	"r: Annual return rate (as a decimal, i.e. annual return rate / 100)",
	"n: Total number of years",
}

// FormatCurrency formats an amount with the currency symbol, thousands separators and 2 decimals.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format(symbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatOptionalPercentage formats p, or NotApplicable when p is nil.
func FormatOptionalPercentage(p *decimal.Decimal) string {
	if p == nil {
		return NotApplicable
	}
	return FormatPercentage(*p)
}

// FormatGainPercentage formats the gain percentage of r, or NotApplicable
// when r has no principal.
func FormatGainPercentage(r *domain.CalculationResult) string {
	if !r.GainPercentApplicable() {
		return NotApplicable
	}
	return FormatPercentage(*r.TotalGainPercent)
}

func gainPercentFixed(r *domain.CalculationResult) string {
	if !r.GainPercentApplicable() {
		return NotApplicable
	}
	return r.TotalGainPercent.StringFixed(2)
}
