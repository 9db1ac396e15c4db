package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/sip-calculator/internal/domain"
)

var (
	prettyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	prettyBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	prettyBestStyle  = prettyBoxStyle.BorderForeground(lipgloss.Color("42"))
	prettyLabelStyle = lipgloss.NewStyle().Width(32)
	prettyValueStyle = lipgloss.NewStyle().Bold(true)
	prettyGainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	prettyMutedStyle = lipgloss.NewStyle().Faint(true)
)

// PrettyFormatter renders each plan in a bordered terminal card.
type PrettyFormatter struct{}

func (p PrettyFormatter) Name() string { return "pretty" }

func (p PrettyFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	blocks := []string{prettyTitleStyle.Render("SIP Calculator")}

	for i := range results.Results {
		r := &results.Results[i]
		rows := []string{}
		if r.Name != "" {
			rows = append(rows, prettyTitleStyle.Render(r.Name))
		}
		rows = append(rows,
			prettyRow("Monthly Investment", FormatCurrency(results.Currency, r.Input.MonthlyContribution), prettyValueStyle),
			prettyRow("Expected Annual Return", FormatPercentage(r.Input.AnnualRatePercent), prettyValueStyle),
			prettyRow("Investment Tenure", pluralYears(r.Input.Years), prettyValueStyle),
			"",
			prettyRow("Future Value", FormatCurrency(results.Currency, r.FutureValue), prettyGainStyle),
			prettyRow("Total Investment", FormatCurrency(results.Currency, r.TotalPrincipal), prettyValueStyle),
			prettyRow("Total Returns ("+FormatGainPercentage(r)+")", FormatCurrency(results.Currency, r.TotalGain), prettyGainStyle),
		)

		box := prettyBoxStyle
		if len(results.Results) > 1 && r.Name == results.Best {
			box = prettyBestStyle
		}
		blocks = append(blocks, box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	legend := make([]string, 0, len(FormulaLegend)+1)
	legend = append(legend, "Formula: "+FormulaText)
	for _, l := range FormulaLegend {
		legend = append(legend, "  "+l)
	}
	blocks = append(blocks, prettyMutedStyle.Render(strings.Join(legend, "\n")))

	return []byte(lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"), nil
}

func prettyRow(label, value string, style lipgloss.Style) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, prettyLabelStyle.Render(label), style.Render(value))
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return intToString(n) + " years"
}
