// Package report turns aggregate summaries into renderer-agnostic chart
// specs. Every builder is a pure function from data to spec; the actual
// drawing happens client-side.
package report

import (
	"sort"
	"strconv"
	"strings"

	"fjacquet/budget-csv/internal/models"

	"github.com/shopspring/decimal"
)

// ChartType selects the visual form of a chart.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
	ChartLine ChartType = "line"
)

// Series is one named data series. X carries the category/month/year labels,
// Y the values at those positions.
type Series struct {
	Name string            `json:"name"`
	X    []string          `json:"x"`
	Y    []decimal.Decimal `json:"y"`
	// Line marks a series drawn as a line inside a bar chart (the net
	// overlay in the cashflow chart).
	Line bool `json:"line,omitempty"`
}

// Chart is a complete chart specification.
type Chart struct {
	Title   string    `json:"title"`
	Type    ChartType `json:"type"`
	XTitle  string    `json:"xTitle,omitempty"`
	YTitle  string    `json:"yTitle,omitempty"`
	Stacked bool      `json:"stacked,omitempty"`
	// Donut carves a hole into a pie chart.
	Donut  bool     `json:"donut,omitempty"`
	Series []Series `json:"series"`
}

// MonthlyByCategory builds the stacked per-month expense chart, one series
// per category.
func MonthlyByCategory(summary models.Summary) Chart {
	chart := Chart{
		Title:   "Ausgaben pro Monat (nach Kategorie)",
		Type:    ChartBar,
		XTitle:  "Monat",
		YTitle:  "CHF",
		Stacked: true,
	}

	months := monthLabels(summary)
	for _, category := range sortedCategories(summary.ByCategory) {
		series := Series{Name: category, X: months}
		for _, month := range summary.Months {
			series.Y = append(series.Y, summary.Monthly[month].ByCategory[category])
		}
		chart.Series = append(chart.Series, series)
	}
	return chart
}

// MonthlyByGroup builds the stacked per-month expense chart, one series per
// budget group, labelled for display.
func MonthlyByGroup(summary models.Summary, rules models.Rules) Chart {
	chart := Chart{
		Title:   "Ausgaben pro Monat (nach Gruppe)",
		Type:    ChartBar,
		XTitle:  "Monat",
		YTitle:  "CHF",
		Stacked: true,
	}

	months := monthLabels(summary)
	for _, group := range models.Groups {
		if _, ok := summary.ByGroup[group]; !ok {
			continue
		}
		series := Series{Name: rules.Label(group), X: months}
		for _, month := range summary.Months {
			series.Y = append(series.Y, summary.Monthly[month].ByGroup[group])
		}
		chart.Series = append(chart.Series, series)
	}
	return chart
}

// TotalsByCategory builds the total-expense bar chart, categories sorted by
// amount descending.
func TotalsByCategory(summary models.Summary) Chart {
	series := Series{Name: "Ausgaben"}
	for _, category := range sortedCategories(summary.ByCategory) {
		series.X = append(series.X, category)
		series.Y = append(series.Y, summary.ByCategory[category])
	}

	return Chart{
		Title:  "Ausgaben total (nach Kategorie)",
		Type:   ChartBar,
		XTitle: "Kategorie",
		YTitle: "CHF",
		Series: []Series{series},
	}
}

// GroupShare builds the donut chart of expense share per group, largest
// slice first.
func GroupShare(summary models.Summary, rules models.Rules) Chart {
	type slice struct {
		group  models.Group
		amount decimal.Decimal
	}
	slices := make([]slice, 0, len(summary.ByGroup))
	for group, amount := range summary.ByGroup {
		slices = append(slices, slice{group, amount})
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].amount.Equal(slices[j].amount) {
			return slices[i].amount.GreaterThan(slices[j].amount)
		}
		return slices[i].group < slices[j].group
	})

	series := Series{Name: "Gruppen"}
	for _, s := range slices {
		series.X = append(series.X, rules.Label(s.group))
		series.Y = append(series.Y, s.amount)
	}

	return Chart{
		Title:  "Ausgaben total (nach Gruppe)",
		Type:   ChartPie,
		Donut:  true,
		Series: []Series{series},
	}
}

// Cashflow builds the per-month income/expense bars with a net overlay
// line. The income bars can be hidden.
func Cashflow(summary models.Summary, showIncome bool) Chart {
	months := monthLabels(summary)

	income := Series{Name: "Einnahmen", X: months}
	expense := Series{Name: "Ausgaben", X: months}
	net := Series{Name: "Saldo (Netto)", X: months, Line: true}
	for _, month := range summary.Months {
		entry := summary.Monthly[month]
		income.Y = append(income.Y, entry.Income)
		expense.Y = append(expense.Y, entry.Expense)
		net.Y = append(net.Y, entry.Net())
	}

	chart := Chart{
		Title:  "Cashflow pro Monat",
		Type:   ChartBar,
		XTitle: "Monat",
		YTitle: "CHF",
	}
	if showIncome {
		chart.Series = append(chart.Series, income)
	}
	chart.Series = append(chart.Series, expense, net)
	return chart
}

// Savings builds the projection line chart, one series per scenario.
func Savings(series []models.ProjectionSeries) Chart {
	chart := Chart{
		Title:  "Vermögensentwicklung des Spar-Betrags (in heutiger Kaufkraft)",
		Type:   ChartLine,
		XTitle: "Jahre",
		YTitle: "CHF (real)",
	}

	for _, s := range series {
		line := Series{Name: s.Name}
		for _, point := range s.Points {
			line.X = append(line.X, yearLabel(point.Year))
			line.Y = append(line.Y, point.Value)
		}
		chart.Series = append(chart.Series, line)
	}
	return chart
}

func monthLabels(summary models.Summary) []string {
	labels := make([]string, 0, len(summary.Months))
	for _, month := range summary.Months {
		labels = append(labels, string(month))
	}
	return labels
}

func yearLabel(year int) string {
	return strconv.Itoa(year)
}

// sortedCategories orders categories by total amount descending, name
// ascending as the tie-break so output is deterministic.
func sortedCategories(byCategory map[string]decimal.Decimal) []string {
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := byCategory[categories[i]], byCategory[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return strings.Compare(categories[i], categories[j]) < 0
	})
	return categories
}
