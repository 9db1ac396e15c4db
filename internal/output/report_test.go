package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/rpgo/sip-calculator/internal/output"
)

func sampleComparison() *domain.PlanComparison {
	return &domain.PlanComparison{
		Currency: "$",
		Results: []domain.CalculationResult{
			{
				Name:             "Baseline",
				Input:            domain.CalculationInput{MonthlyContribution: stddec.NewFromInt(100), AnnualRatePercent: stddec.NewFromInt(0), Years: 1},
				YearlyInvestment: stddec.NewFromInt(1200),
				FutureValue:      stddec.NewFromInt(1200),
				TotalPrincipal:   stddec.NewFromInt(1200),
				TotalGain:        stddec.NewFromInt(0),
			},
		},
		Best: "Baseline",
	}
}

func TestGenerateReport_ToWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, err := output.GenerateReport(sampleComparison(), "csv", &buf, ""); err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if !strings.Contains(buf.String(), "Baseline,100.00") {
		t.Fatalf("unexpected csv output: %s", buf.String())
	}

	buf.Reset()
	if _, err := output.GenerateReport(sampleComparison(), "json-pretty", &buf, "-"); err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("unexpected json output: %s", buf.String())
	}
}

func TestGenerateReport_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	written, err := output.GenerateReport(sampleComparison(), "html", nil, path)
	if err != nil {
		t.Fatalf("GenerateReport html error: %v", err)
	}
	if written != path {
		t.Fatalf("GenerateReport wrote %q, want %q", written, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "$1,200.00") {
		t.Fatalf("expected formatted amount in html report")
	}
}

func TestGenerateReport_ToDirectory(t *testing.T) {
	dir := t.TempDir()
	written, err := output.GenerateReport(sampleComparison(), "csv-schedule", nil, dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if filepath.Dir(written) != dir {
		t.Fatalf("report %q not written inside %q", written, dir)
	}
	base := filepath.Base(written)
	if !strings.HasPrefix(base, "sip_report_") || filepath.Ext(base) != ".csv" {
		t.Fatalf("unexpected report name %q", base)
	}
	if _, err := os.Stat(written); err != nil {
		t.Fatalf("stat report: %v", err)
	}
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(sampleComparison(), "pdf", &bytes.Buffer{}, "")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console-lite") {
		t.Fatalf("expected available formats in error, got %v", err)
	}
}
