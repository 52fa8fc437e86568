// Package root contains the root command for the application
package root

import (
	"fjacquet/budget-csv/internal/config"
	"fjacquet/budget-csv/internal/normalize"
	"fjacquet/budget-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, loaded before any
	// command runs.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-csv",
		Short: "A CLI tool to summarize budget CSV exports and project savings.",
		Long: `budget-csv reads a budget CSV (date, kind, amount, category and optional
group and note columns), classifies expenses into fixed costs, wants, savings
and other, and produces monthly summaries, chart data and long-term savings
projections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log = config.ConfigureLogging()
				Log.WithError(err).Fatal("Invalid configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to packages that keep
			// their own instance.
			normalize.SetLogger(Log)
			store.SetLogger(Log)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// MonthlySaving is the project command's contribution override
	MonthlySaving string

	// HorizonYears is the project command's horizon override
	HorizonYears int

	// ShowIncome toggles the income bars in the cashflow chart
	ShowIncome bool
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
}
