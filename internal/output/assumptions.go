package output

import (
	"fmt"

	"github.com/rpgo/sip-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Contributions are invested at the start of each year (monthly amount × 12)",
	"Returns compound once a year at a constant rate",
	"No inflation adjustment, taxes or fees",
}

// GenerateAssumptions adds the currency in use to the default assumptions.
func GenerateAssumptions(results *domain.PlanComparison) []string {
	out := append([]string(nil), DefaultAssumptions...)
	currency := domain.DefaultCurrencySymbol
	if results != nil && results.Currency != "" {
		currency = results.Currency
	}
	return append(out, fmt.Sprintf("All amounts in %s", currency))
}
