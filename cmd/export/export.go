// Package export handles the CSV normalization command
package export

import (
	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/budgetparser"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export a budget CSV in normalized form",
	Long: `Parse a budget CSV file (any supported delimiter and encoding) and
write it back as clean comma-separated UTF-8 with ISO dates, dot decimals and
resolved groups.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	pipeline, err := common.BuildPipeline(root.Cfg, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading classification rules: %v", err)
	}

	transactions, err := pipeline.Parser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing %s: %v", root.SharedFlags.Input, err)
	}

	out, closeOut, err := common.OpenOutput(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error opening output: %v", err)
	}
	defer closeOut()

	if err := budgetparser.ExportTransactions(transactions, out); err != nil {
		root.Log.Fatalf("Error writing normalized CSV: %v", err)
	}
	root.Log.WithField("transactions", len(transactions)).Info("Export completed successfully!")
}
