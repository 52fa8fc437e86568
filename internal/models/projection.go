package models

import "github.com/shopspring/decimal"

// ProjectionPoint is the cumulative real value after a number of years of
// monthly contributions.
type ProjectionPoint struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// ProjectionSeries is one savings scenario: a named annual real growth rate
// and the resulting value per year horizon. Computed per request, never
// stored.
type ProjectionSeries struct {
	Name   string            `json:"name"`
	Rate   float64           `json:"rate"`
	Points []ProjectionPoint `json:"points"`
}
