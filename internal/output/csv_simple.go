package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/sip-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "MonthlyContribution", "AnnualRatePercent", "Years", "YearlyInvestment", "FutureValue", "TotalPrincipal", "TotalGain", "TotalGainPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		row := []string{
			r.Name,
			r.Input.MonthlyContribution.StringFixed(2),
			r.Input.AnnualRatePercent.StringFixed(2),
			intToString(r.Input.Years),
			r.YearlyInvestment.StringFixed(2),
			r.FutureValue.StringFixed(2),
			r.TotalPrincipal.StringFixed(2),
			r.TotalGain.StringFixed(2),
			gainPercentFixed(&r),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVScheduleExporter writes the year-by-year growth schedule of every plan.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "Year", "Contribution", "CumulativePrincipal", "Growth", "EndBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		for _, yr := range r.Schedule {
			row := []string{
				r.Name,
				intToString(yr.Year),
				yr.Contribution.StringFixed(2),
				yr.CumulativePrincipal.StringFixed(2),
				yr.Growth.StringFixed(2),
				yr.EndBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func intToString(i int) string { return strconv.Itoa(i) }
