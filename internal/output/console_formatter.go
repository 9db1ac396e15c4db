package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/sip-calculator/internal/domain"
)

// ConsoleFormatter provides a concise one-line-per-plan console summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SIP CALCULATOR SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, r := range results.Results {
		name := r.Name
		if name == "" {
			name = "SIP"
		}
		fmt.Fprintf(&buf, "%s: FV=%s Invested=%s Returns=%s (%s)\n",
			name,
			FormatCurrency(results.Currency, r.FutureValue),
			FormatCurrency(results.Currency, r.TotalPrincipal),
			FormatCurrency(results.Currency, r.TotalGain),
			FormatGainPercentage(&r),
		)
	}
	rec := AnalyzePlans(results)
	if rec.PlanName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s (+%s / %s over %s)\n", rec.PlanName, FormatCurrency(results.Currency, rec.Lead), FormatOptionalPercentage(rec.LeadPercent), rec.RunnerUp)
	}
	return buf.Bytes(), nil
}
