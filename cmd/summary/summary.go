// Package summary handles the CSV summarize command
package summary

import (
	"os"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/aggregate"
	"fjacquet/budget-csv/internal/budgetparser"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/projection"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a budget CSV file",
	Long: `Parse a budget CSV file, aggregate income and expenses per month,
category and group, and write the report as JSON.`,
	Run: summaryFunc,
}

// defaultInputFile is used when no --input flag is given. If it does not
// exist yet a template is written there so first-time users get a starting
// file instead of an error.
const defaultInputFile = "budget.csv"

func summaryFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		input = defaultInputFile
		if _, err := os.Stat(input); os.IsNotExist(err) {
			if err := writeTemplateFile(input); err != nil {
				root.Log.Fatalf("Error creating template %s: %v", input, err)
			}
			root.Log.WithField("file_path", input).Info("Created template file, fill it in and rerun")
			return
		}
	}

	pipeline, err := common.BuildPipeline(root.Cfg, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading classification rules: %v", err)
	}

	transactions, err := pipeline.Parser.ParseFile(input)
	if err != nil {
		root.Log.Fatalf("Error parsing %s: %v", input, err)
	}

	summary := aggregate.Compute(transactions)

	var series []models.ProjectionSeries
	if summary.AverageNet.IsPositive() {
		series, err = projection.Series(summary.AverageNet,
			projectionScenarios(), root.Cfg.Projection.HorizonYears)
		if err != nil {
			root.Log.Fatalf("Error computing projection: %v", err)
		}
	}

	rep := pipeline.Generator.Build(summary, series, summary.AverageNet, root.ShowIncome)

	payload, err := pipeline.Generator.RenderJSON(rep)
	if err != nil {
		root.Log.Fatalf("Error serializing report: %v", err)
	}

	out, closeOut, err := common.OpenOutput(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error opening output: %v", err)
	}
	defer closeOut()

	if _, err := out.Write(append(payload, '\n')); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.WithField("transactions", len(transactions)).Info("Summary completed successfully!")
}

func projectionScenarios() []projection.Scenario {
	return projection.ScenariosFromRates(root.Cfg.Projection.StocksRate, root.Cfg.Projection.BankRate)
}

func writeTemplateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return budgetparser.WriteTemplate(f)
}

func init() {
	Cmd.Flags().BoolVar(&root.ShowIncome, "show-income", true, "Include income bars in the cashflow chart")
}
