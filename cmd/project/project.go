// Package project handles the savings projection command
package project

import (
	"encoding/json"
	"fmt"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/aggregate"
	"fjacquet/budget-csv/internal/projection"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the project command
var Cmd = &cobra.Command{
	Use:   "project",
	Short: "Project long-term savings growth",
	Long: `Compute the future value of a fixed monthly contribution under the
standard scenarios (stocks, bank account and a zero-rate baseline) and write
the series as JSON.`,
	Run: projectFunc,
}

func projectFunc(cmd *cobra.Command, args []string) {
	monthly, err := resolveContribution()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	horizon := root.HorizonYears
	if horizon <= 0 {
		horizon = root.Cfg.Projection.HorizonYears
	}
	scenarios := projection.ScenariosFromRates(
		root.Cfg.Projection.StocksRate, root.Cfg.Projection.BankRate)

	series, err := projection.Series(monthly, scenarios, horizon)
	if err != nil {
		root.Log.Fatalf("Error computing projection: %v", err)
	}

	payload, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error serializing projection: %v", err)
	}

	out, closeOut, err := common.OpenOutput(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error opening output: %v", err)
	}
	defer closeOut()

	if _, err := out.Write(append(payload, '\n')); err != nil {
		root.Log.Fatalf("Error writing projection: %v", err)
	}
}

// resolveContribution picks the monthly contribution: the --monthly flag
// when given, otherwise the average monthly net of the --input file, floored
// at zero.
func resolveContribution() (decimal.Decimal, error) {
	if root.MonthlySaving != "" {
		monthly, err := decimal.NewFromString(root.MonthlySaving)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid monthly amount %q: %w", root.MonthlySaving, err)
		}
		return monthly, nil
	}

	if root.SharedFlags.Input == "" {
		return decimal.Zero, fmt.Errorf("no contribution given, use --monthly or --input")
	}

	pipeline, err := common.BuildPipeline(root.Cfg, root.Log)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error loading classification rules: %w", err)
	}
	transactions, err := pipeline.Parser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %s: %w", root.SharedFlags.Input, err)
	}

	averageNet := aggregate.Compute(transactions).AverageNet
	if averageNet.IsNegative() {
		averageNet = decimal.Zero
	}
	return averageNet, nil
}

func init() {
	Cmd.Flags().StringVar(&root.MonthlySaving, "monthly", "", "Monthly contribution amount")
	Cmd.Flags().IntVar(&root.HorizonYears, "years", 0, "Projection horizon in years (default from config)")
}
