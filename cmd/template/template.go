// Package template handles the template CSV command
package template

import (
	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/budgetparser"

	"github.com/spf13/cobra"
)

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write a ready-to-fill budget CSV template",
	Long: `Write a CSV with the expected header (date, kind, amount, category,
group, note) and a few sample rows, to stdout or the --output file.`,
	Run: templateFunc,
}

func templateFunc(cmd *cobra.Command, args []string) {
	out, closeOut, err := common.OpenOutput(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error opening output: %v", err)
	}
	defer closeOut()

	if err := budgetparser.WriteTemplate(out); err != nil {
		root.Log.Fatalf("Error writing template: %v", err)
	}
}
