package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input bounds enforced before a calculation is run.
const (
	MinYears = 1
	MaxYears = 50
)

var (
	MinRatePercent = decimal.Zero
	MaxRatePercent = decimal.NewFromInt(100)
)

var (
	ErrInvalidContribution = errors.New("monthly contribution cannot be negative")
	ErrInvalidRate         = errors.New("annual return rate must be between 0 and 100 percent")
	ErrInvalidYears        = fmt.Errorf("investment tenure must be between %d and %d years", MinYears, MaxYears)
)

// InputParser handles parsing and validation of calculation inputs
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan file from YAML and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var planFile domain.PlanFile
	if err := yaml.Unmarshal(data, &planFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if planFile.Currency == "" {
		planFile.Currency = domain.DefaultCurrencySymbol
	}

	if err := ip.ValidatePlanFile(&planFile); err != nil {
		return nil, fmt.Errorf("plan file validation failed: %w", err)
	}

	return &planFile, nil
}

// ValidatePlanFile checks that the file has uniquely named, valid plans
func (ip *InputParser) ValidatePlanFile(planFile *domain.PlanFile) error {
	if len(planFile.Plans) == 0 {
		return domain.ErrNoPlans
	}

	seen := make(map[string]bool, len(planFile.Plans))
	for i, plan := range planFile.Plans {
		if plan.Name == "" {
			return fmt.Errorf("plan %d: name is required", i+1)
		}
		if seen[plan.Name] {
			return fmt.Errorf("plan %q is defined more than once", plan.Name)
		}
		seen[plan.Name] = true

		if err := ip.ValidateInput(plan.Input()); err != nil {
			return fmt.Errorf("plan %q validation failed: %w", plan.Name, err)
		}
	}

	return nil
}

// ValidateInput enforces the input ranges accepted by the calculator
func (ip *InputParser) ValidateInput(in domain.CalculationInput) error {
	if in.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidContribution, in.MonthlyContribution.String())
	}
	if in.AnnualRatePercent.LessThan(MinRatePercent) || in.AnnualRatePercent.GreaterThan(MaxRatePercent) {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, in.AnnualRatePercent.String())
	}
	if in.Years < MinYears || in.Years > MaxYears {
		return fmt.Errorf("%w: got %d", ErrInvalidYears, in.Years)
	}
	return nil
}

// DefaultInput returns the calculator's default request: 5000 a month at 12% for 10 years.
func DefaultInput() domain.CalculationInput {
	return domain.CalculationInput{
		MonthlyContribution: decimal.NewFromInt(5000),
		AnnualRatePercent:   decimal.NewFromInt(12),
		Years:               10,
	}
}

// CreateExamplePlanFile creates an example plan file
func (ip *InputParser) CreateExamplePlanFile() *domain.PlanFile {
	def := DefaultInput()
	return &domain.PlanFile{
		Currency: domain.DefaultCurrencySymbol,
		Plans: []domain.Plan{
			{
				Name:                "Default SIP",
				MonthlyContribution: def.MonthlyContribution,
				AnnualRatePercent:   def.AnnualRatePercent,
				Years:               def.Years,
			},
			{
				Name:                "Conservative Debt Fund",
				MonthlyContribution: decimal.NewFromInt(5000),
				AnnualRatePercent:   decimal.NewFromFloat(7.5),
				Years:               10,
			},
			{
				Name:                "Long Horizon Equity",
				MonthlyContribution: decimal.NewFromInt(3000),
				AnnualRatePercent:   decimal.NewFromInt(12),
				Years:               25,
			},
		},
	}
}

// SavePlanFile writes a plan file as YAML
func SavePlanFile(planFile *domain.PlanFile, filename string) error {
	b, err := yaml.Marshal(planFile)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
