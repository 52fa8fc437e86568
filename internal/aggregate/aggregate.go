// Package aggregate derives summary tables from a validated transaction
// set. Compute is a pure function: same input, same output, no shared state.
package aggregate

import (
	"sort"

	"fjacquet/budget-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Compute builds the full summary for a transaction set. Income counts only
// toward totals and per-month income; expenses additionally feed the
// category and group breakdowns. Only months with activity appear.
func Compute(transactions []models.Transaction) models.Summary {
	summary := models.Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Net:          decimal.Zero,
		AverageNet:   decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
		ByGroup:      make(map[models.Group]decimal.Decimal),
		Monthly:      make(map[models.MonthKey]models.MonthlySummary),
	}

	for _, tx := range transactions {
		month := monthEntry(&summary, tx.Month())

		if tx.IsIncome() {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			month.Income = month.Income.Add(tx.Amount)
			summary.Monthly[tx.Month()] = month
			continue
		}

		summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		summary.ByCategory[tx.Category] = sum(summary.ByCategory[tx.Category], tx.Amount)
		summary.ByGroup[tx.Group] = sum(summary.ByGroup[tx.Group], tx.Amount)

		month.Expense = month.Expense.Add(tx.Amount)
		month.ByCategory[tx.Category] = sum(month.ByCategory[tx.Category], tx.Amount)
		month.ByGroup[tx.Group] = sum(month.ByGroup[tx.Group], tx.Amount)
		summary.Monthly[tx.Month()] = month
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	summary.Months = make([]models.MonthKey, 0, len(summary.Monthly))
	for month := range summary.Monthly {
		summary.Months = append(summary.Months, month)
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i] < summary.Months[j]
	})

	monthCount := int64(len(summary.Months))
	if monthCount < 1 {
		monthCount = 1
	}
	summary.AverageNet = summary.Net.Div(decimal.NewFromInt(monthCount))

	return summary
}

// monthEntry fetches or initializes the bucket for a month.
func monthEntry(summary *models.Summary, month models.MonthKey) models.MonthlySummary {
	if entry, ok := summary.Monthly[month]; ok {
		return entry
	}
	return models.MonthlySummary{
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
		ByGroup:    make(map[models.Group]decimal.Decimal),
	}
}

// sum adds onto a map value that may not exist yet. decimal.Decimal's zero
// value is usable, but being explicit keeps the intent clear.
func sum(current, amount decimal.Decimal) decimal.Decimal {
	return current.Add(amount)
}
