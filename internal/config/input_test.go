package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeTempFile(t, "currency: \"$\"\n"+
		"plans:\n"+
		"  - name: \"Default SIP\"\n"+
		"    monthly_contribution: 5000\n"+
		"    annual_rate_percent: 12\n"+
		"    years: 10\n"+
		"  - name: \"Debt\"\n"+
		"    monthly_contribution: \"2500.50\"\n"+
		"    annual_rate_percent: 7.5\n"+
		"    years: 5\n")

	parser := NewInputParser()
	planFile, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "$", planFile.Currency)
	require.Len(t, planFile.Plans, 2)
	assert.Equal(t, "Default SIP", planFile.Plans[0].Name)
	assert.True(t, planFile.Plans[0].MonthlyContribution.Equal(decimal.NewFromInt(5000)))
	assert.True(t, planFile.Plans[1].MonthlyContribution.Equal(decimal.RequireFromString("2500.50")))
	assert.True(t, planFile.Plans[1].AnnualRatePercent.Equal(decimal.NewFromFloat(7.5)))
	assert.Equal(t, 5, planFile.Plans[1].Years)
}

func TestLoadFromFile_DefaultCurrency(t *testing.T) {
	path := writeTempFile(t, "plans:\n  - name: a\n    monthly_contribution: 100\n    annual_rate_percent: 5\n    years: 3\n")

	planFile, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrencySymbol, planFile.Currency)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	planFile, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, planFile)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "plans:\n\t- name: \"broken\"\n\t\tyears: ten\n")

	planFile, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, planFile)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	path := writeTempFile(t, "plans:\n  - name: a\n    monthly_contribution: 100\n    annual_rate_percent: 150\n    years: 3\n")

	planFile, err := NewInputParser().LoadFromFile(path)
	assert.Nil(t, planFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan file validation failed")
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.CalculationInput
		wantErr error
	}{
		{"defaults", DefaultInput(), nil},
		{"zero contribution", domain.CalculationInput{MonthlyContribution: decimal.Zero, AnnualRatePercent: decimal.NewFromInt(12), Years: 10}, nil},
		{"zero rate", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.Zero, Years: 1}, nil},
		{"max rate and tenure", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromInt(100), Years: 50}, nil},
		{"negative contribution", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(-1), AnnualRatePercent: decimal.NewFromInt(12), Years: 10}, ErrInvalidContribution},
		{"negative rate", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromFloat(-0.5), Years: 10}, ErrInvalidRate},
		{"rate above 100", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromFloat(100.01), Years: 10}, ErrInvalidRate},
		{"zero years", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromInt(12), Years: 0}, ErrInvalidYears},
		{"too many years", domain.CalculationInput{MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromInt(12), Years: 51}, ErrInvalidYears},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateInput(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePlanFile(t *testing.T) {
	parser := NewInputParser()
	valid := domain.Plan{Name: "a", MonthlyContribution: decimal.NewFromInt(100), AnnualRatePercent: decimal.NewFromInt(8), Years: 5}

	err := parser.ValidatePlanFile(&domain.PlanFile{})
	assert.ErrorIs(t, err, domain.ErrNoPlans)
	assert.EqualError(t, err, "no plans provided")

	unnamed := valid
	unnamed.Name = ""
	err = parser.ValidatePlanFile(&domain.PlanFile{Plans: []domain.Plan{unnamed}})
	assert.EqualError(t, err, "plan 1: name is required")

	err = parser.ValidatePlanFile(&domain.PlanFile{Plans: []domain.Plan{valid, valid}})
	assert.EqualError(t, err, `plan "a" is defined more than once`)

	bad := valid
	bad.Name = "b"
	bad.Years = 0
	err = parser.ValidatePlanFile(&domain.PlanFile{Plans: []domain.Plan{valid, bad}})
	assert.ErrorIs(t, err, ErrInvalidYears)

	assert.NoError(t, parser.ValidatePlanFile(&domain.PlanFile{Plans: []domain.Plan{valid}}))
}

func TestExamplePlanFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExamplePlanFile()
	require.NoError(t, parser.ValidatePlanFile(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, SavePlanFile(example, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Plans, len(example.Plans))
	for i := range example.Plans {
		assert.Equal(t, example.Plans[i].Name, loaded.Plans[i].Name)
		assert.True(t, example.Plans[i].MonthlyContribution.Equal(loaded.Plans[i].MonthlyContribution))
		assert.True(t, example.Plans[i].AnnualRatePercent.Equal(loaded.Plans[i].AnnualRatePercent))
		assert.Equal(t, example.Plans[i].Years, loaded.Plans[i].Years)
	}
}
