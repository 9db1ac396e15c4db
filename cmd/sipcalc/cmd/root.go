package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	settings *viper.Viper
	logger   *zap.Logger
	cfgFile  string
}

// Execute runs the sipcalc command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{settings: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sipcalc",
		Short: "Systematic investment plan (SIP) calculator",
		Long: `sipcalc projects the future value of a fixed monthly investment
compounded annually, alongside the total invested and the total returns.

Settings may come from flags, a settings file (--config) or SIPCALC_*
environment variables, e.g. SIPCALC_FORMAT=json.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "settings file (yaml, toml or json)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.StringP("format", "f", "console", "report format (console, console-lite, pretty, csv, schedule-csv, json, yaml, html)")
	pf.StringP("output", "o", "", "write the report to this file, or into this directory with a timestamped name, instead of stdout")
	pf.String("currency", "", "currency symbol used in reports")

	rootCmd.AddCommand(
		newCalculateCommand(a),
		newCompareCommand(a),
		newExampleCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

// init binds flags, environment and the optional settings file, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.settings.SetEnvPrefix("SIPCALC")
	a.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.settings.AutomaticEnv()

	if err := a.settings.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if a.cfgFile != "" {
		a.settings.SetConfigFile(a.cfgFile)
		if err := a.settings.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading settings file %s: %w", a.cfgFile, err)
		}
	}

	logger, err := initializeLogger(a.settings.GetString("log-level"), a.settings.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("settings loaded",
		zap.String("op", "init"),
		zap.String("config", a.settings.ConfigFileUsed()),
		zap.String("format", a.settings.GetString("format")),
	)
	return nil
}
