// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind says whether money came in or went out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Group is the budgeting bucket an expense belongs to.
type Group string

const (
	GroupFix   Group = "fix"   // fixed costs (rent, insurance, ...)
	GroupWant  Group = "want"  // discretionary spending
	GroupSave  Group = "save"  // savings and investments
	GroupOther Group = "other" // everything unclassified
)

// Groups lists all budget groups in display order.
var Groups = []Group{GroupFix, GroupWant, GroupSave, GroupOther}

// Transaction is a single validated budget entry. Instances are built by the
// parser and never modified afterwards.
type Transaction struct {
	Date     time.Time       `json:"date"`
	Kind     Kind            `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Group    Group           `json:"group"`
	Note     string          `json:"note,omitempty"`
}

// IsIncome returns true for money received.
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true for money spent.
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// Month returns the month bucket this transaction falls into.
func (t *Transaction) Month() MonthKey {
	return MonthKeyOf(t.Date)
}

// MonthKey identifies a calendar year-month, formatted YYYY-MM. It is used
// only as an aggregation bucket key.
type MonthKey string

const monthKeyLayout = "2006-01"

// MonthKeyOf derives the month bucket for a calendar date.
func MonthKeyOf(date time.Time) MonthKey {
	return MonthKey(date.Format(monthKeyLayout))
}
