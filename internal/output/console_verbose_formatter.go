package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/sip-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full console report: results, the
// year-by-year schedule and the formula.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "SIP CALCULATOR")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "Know how much your systematic investments are worth over a given period of time.")
	fmt.Fprintln(&buf)

	for i, r := range results.Results {
		if len(results.Results) > 1 {
			fmt.Fprintf(&buf, "PLAN %d: %s\n", i+1, r.Name)
			fmt.Fprintln(&buf, strings.Repeat("-", 50))
		}
		writeResult(&buf, results.Currency, &r)
		if len(r.Schedule) > 0 {
			fmt.Fprintln(&buf)
			writeSchedule(&buf, results.Currency, r.Schedule)
		}
		fmt.Fprintln(&buf)
	}

	if rec := AnalyzePlans(results); rec.PlanName != "" {
		fmt.Fprintf(&buf, "Highest future value: %s (%s ahead of %s)\n", rec.PlanName, FormatCurrency(results.Currency, rec.Lead), rec.RunnerUp)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "FORMULA USED:")
	fmt.Fprintf(&buf, "  %s\n", FormulaText)
	for _, l := range FormulaLegend {
		fmt.Fprintf(&buf, "  - %s\n", l)
	}
	return buf.Bytes(), nil
}

func writeResult(w io.Writer, currency string, r *domain.CalculationResult) {
	fmt.Fprintf(w, "Monthly Investment Amount:       %s\n", FormatCurrency(currency, r.Input.MonthlyContribution))
	fmt.Fprintf(w, "Expected Annual Return Rate:     %s\n", FormatPercentage(r.Input.AnnualRatePercent))
	fmt.Fprintf(w, "Investment Tenure:               %d years\n", r.Input.Years)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Future Value of SIP Investment:  %s\n", FormatCurrency(currency, r.FutureValue))
	fmt.Fprintf(w, "Total Investment:                %s\n", FormatCurrency(currency, r.TotalPrincipal))
	fmt.Fprintf(w, "Total Returns (%s): %s\n", FormatGainPercentage(r), FormatCurrency(currency, r.TotalGain))
}

func writeSchedule(w io.Writer, currency string, schedule []domain.YearlyBalance) {
	fmt.Fprintf(w, "%-6s %18s %18s %18s\n", "Year", "Invested", "Growth", "Balance")
	for _, row := range schedule {
		fmt.Fprintf(w, "%-6d %18s %18s %18s\n",
			row.Year,
			FormatCurrency(currency, row.CumulativePrincipal),
			FormatCurrency(currency, row.Growth),
			FormatCurrency(currency, row.EndBalance),
		)
	}
}
