package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/sip-calculator/internal/config"
	"github.com/spf13/cobra"
)

const defaultExamplePath = "sip_plans.yaml"

func newExampleCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultExamplePath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SavePlanFile(config.NewInputParser().CreateExamplePlanFile(), path); err != nil {
				return fmt.Errorf("failed to write example plan file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan file written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
