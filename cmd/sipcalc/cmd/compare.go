package cmd

import (
	"github.com/rpgo/sip-calculator/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [plan file]",
		Short: "Calculate and compare every plan in a YAML plan file",
		Long: `Loads a YAML plan file, calculates each plan and reports them side by side.

Examples:
  sipcalc example plans.yaml
  sipcalc compare plans.yaml
  sipcalc compare plans.yaml --format html --output plans.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0])
		},
	}
	cmd.Flags().Bool("no-schedule", false, "omit the year-by-year schedules")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, path string) error {
	planFile, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		a.logger.Error("failed to load plan file", zap.String("op", "compare"), zap.String("path", path), zap.Error(err))
		return err
	}
	if currency := a.settings.GetString("currency"); currency != "" {
		planFile.Currency = currency
	}

	comparison, err := a.newEngine().ComparePlans(planFile)
	if err != nil {
		return err
	}
	return a.writeReport(cmd, comparison)
}
