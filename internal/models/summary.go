package models

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is the per-month slice of a Summary. Category and group
// sums cover expenses only; income has no category breakdown.
type MonthlySummary struct {
	Income     decimal.Decimal            `json:"income"`
	Expense    decimal.Decimal            `json:"expense"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByGroup    map[Group]decimal.Decimal  `json:"byGroup"`
}

// Net returns income minus expense for the month.
func (m MonthlySummary) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// Summary is a pure projection of a transaction set. It has no lifecycle of
// its own: whenever the transaction set changes it is recomputed from
// scratch, never patched.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`

	// Expense sums. Income transactions are excluded by design: they carry
	// no group, so a category/group breakdown would be meaningless.
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByGroup    map[Group]decimal.Decimal  `json:"byGroup"`

	// Months with any income or expense, ascending. Months without
	// activity are absent rather than zero-filled.
	Months  []MonthKey                 `json:"months"`
	Monthly map[MonthKey]MonthlySummary `json:"monthly"`

	// AverageNet is Net divided by the number of active months (at least
	// one). The projection uses it as the default monthly contribution.
	AverageNet decimal.Decimal `json:"averageNet"`
}
