package cmd

import (
	"fmt"

	"github.com/rpgo/sip-calculator/internal/calculation"
	"github.com/rpgo/sip-calculator/internal/config"
	"github.com/rpgo/sip-calculator/internal/domain"
	"github.com/rpgo/sip-calculator/internal/output"
	"github.com/rpgo/sip-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalculateCommand(a *app) *cobra.Command {
	def := config.DefaultInput()

	cmd := &cobra.Command{
		Use:     "calculate",
		Aliases: []string{"calc"},
		Short:   "Calculate the future value of a monthly SIP",
		Long: `Calculates the future value of a fixed monthly investment compounded annually.

Examples:
  sipcalc calculate
  sipcalc calculate --monthly 5000 --rate 12 --years 10
  sipcalc calculate --monthly 2500 --rate 9.5 --years 20 --format json
  SIPCALC_YEARS=15 sipcalc calculate --format pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalculate(cmd)
		},
	}

	cmd.Flags().String("monthly", def.MonthlyContribution.String(), "monthly investment amount")
	cmd.Flags().String("rate", def.AnnualRatePercent.String(), "expected annual return rate in percent (0-100)")
	cmd.Flags().Int("years", def.Years, fmt.Sprintf("investment tenure in years (%d-%d)", config.MinYears, config.MaxYears))
	cmd.Flags().String("name", "", "optional plan name shown in reports")
	cmd.Flags().Bool("no-schedule", false, "omit the year-by-year schedule")
	return cmd
}

func (a *app) runCalculate(cmd *cobra.Command) error {
	in, err := a.calculationInput()
	if err != nil {
		return err
	}

	parser := config.NewInputParser()
	if err := parser.ValidateInput(in); err != nil {
		a.logger.Warn("rejected calculation input", zap.String("op", "calculate"), zap.Error(err))
		return err
	}

	engine := a.newEngine()
	result := engine.Calculate(in)
	result.Name = a.settings.GetString("name")

	a.logger.Info("calculated SIP future value",
		zap.String("op", "calculate"),
		zap.String("future_value", result.FutureValue.StringFixed(2)),
		zap.String("total_principal", result.TotalPrincipal.StringFixed(2)),
	)

	return a.writeReport(cmd, calculation.Single(a.settings.GetString("currency"), result))
}

func (a *app) calculationInput() (domain.CalculationInput, error) {
	monthly, err := money.NewMoneyFromString(a.settings.GetString("monthly"))
	if err != nil {
		return domain.CalculationInput{}, fmt.Errorf("invalid monthly amount %q: %w", a.settings.GetString("monthly"), err)
	}
	rate, err := decimal.NewFromString(a.settings.GetString("rate"))
	if err != nil {
		return domain.CalculationInput{}, fmt.Errorf("invalid annual rate %q: %w", a.settings.GetString("rate"), err)
	}
	return domain.CalculationInput{
		MonthlyContribution: monthly.Decimal,
		AnnualRatePercent:   rate,
		Years:               a.settings.GetInt("years"),
	}, nil
}

func (a *app) newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(a.logger.Sugar())
	engine.IncludeSchedule = !a.settings.GetBool("no-schedule")
	return engine
}

func (a *app) writeReport(cmd *cobra.Command, results *domain.PlanComparison) error {
	format := a.settings.GetString("format")
	path := a.settings.GetString("output")
	written, err := output.GenerateReport(results, format, cmd.OutOrStdout(), path)
	if err != nil {
		return err
	}
	if written != "" {
		a.logger.Info("report written", zap.String("op", "report"), zap.String("path", written), zap.String("format", format))
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", written)
	}
	return nil
}
