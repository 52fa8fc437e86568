package budgetparser

import (
	"fmt"
	"io"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/normalize"

	"github.com/gocarina/gocsv"
)

// budgetRow is the CSV wire format for one transaction. Used for the
// template file and for exporting normalized transactions.
type budgetRow struct {
	Date     string `csv:"date"`
	Kind     string `csv:"kind"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
	Group    string `csv:"group"`
	Note     string `csv:"note"`
}

// TemplateRows are the example transactions offered to new users so they
// have a working file to start from.
func templateRows() []budgetRow {
	return []budgetRow{
		{Date: "2026-01-01", Kind: "income", Amount: "1200", Category: "Lohn", Group: "", Note: "Nebenjob"},
		{Date: "2026-01-02", Kind: "expense", Amount: "600", Category: "Miete", Group: "fix", Note: ""},
		{Date: "2026-01-05", Kind: "expense", Amount: "45.50", Category: "Restaurant", Group: "want", Note: ""},
		{Date: "2026-01-07", Kind: "expense", Amount: "200", Category: "Sparen", Group: "save", Note: ""},
	}
}

// WriteTemplate writes the example CSV to w.
func WriteTemplate(w io.Writer) error {
	if err := gocsv.Marshal(templateRows(), w); err != nil {
		return fmt.Errorf("error writing template CSV: %w", err)
	}
	return nil
}

// ExportTransactions writes normalized transactions back out as CSV, in the
// same column layout the parser accepts (ISO dates, decimal points).
func ExportTransactions(transactions []models.Transaction, w io.Writer) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	rows := make([]budgetRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, budgetRow{
			Date:     tx.Date.Format(normalize.DateLayoutISO),
			Kind:     string(tx.Kind),
			Amount:   tx.Amount.String(),
			Category: tx.Category,
			Group:    string(tx.Group),
			Note:     tx.Note,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	return nil
}
