// Package projection computes compounding future-value series for a fixed
// monthly contribution. All rates are real (inflation-adjusted) annual
// rates, so results are expressed in today's purchasing power.
package projection

import (
	"fmt"
	"math"

	"fjacquet/budget-csv/internal/models"

	"github.com/shopspring/decimal"
)

// nearZeroRate is the tolerance below which the monthly rate is treated as
// zero to avoid dividing by a vanishing denominator.
const nearZeroRate = 1e-12

// DefaultHorizonYears is the standard projection horizon (inclusive).
const DefaultHorizonYears = 40

// Scenario is one named growth assumption.
type Scenario struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// DefaultScenarios are the assumptions behind the standard projection chart:
// a no-inflation-no-investing baseline, the stock market at roughly 8%
// return minus 1% inflation, and a bank account losing about 1% of
// purchasing power per year.
func DefaultScenarios() []Scenario {
	return ScenariosFromRates(0.07, -0.01)
}

// ScenariosFromRates builds the standard scenario set with configured real
// annual rates for the stocks and bank assumptions. The zero-rate baseline
// is always included.
func ScenariosFromRates(stocksRate, bankRate float64) []Scenario {
	return []Scenario{
		{Name: "Ohne Inflation & ohne Investieren (0% real/Jahr)", Rate: 0.0},
		{Name: fmt.Sprintf("Aktien (≈ %+.0f%% real/Jahr)", stocksRate*100), Rate: stocksRate},
		{Name: fmt.Sprintf("Bank (≈ %+.0f%% real/Jahr)", bankRate*100), Rate: bankRate},
	}
}

// FutureValue computes the value of `years` of monthly contributions of
// pmt, compounded monthly at the equivalent of the annual rate. A horizon
// or contribution of zero (or less) yields zero. Rates must be finite and
// at least -100%; anything else is rejected before it can poison the math.
func FutureValue(pmt decimal.Decimal, years int, annualRate float64) (decimal.Decimal, error) {
	if math.IsNaN(annualRate) || math.IsInf(annualRate, 0) {
		return decimal.Zero, fmt.Errorf("rate must be finite, got %v", annualRate)
	}
	if annualRate < -1 {
		return decimal.Zero, fmt.Errorf("rate must be at least -100%%, got %v", annualRate)
	}
	if years <= 0 || !pmt.IsPositive() {
		return decimal.Zero, nil
	}

	n := years * 12
	monthlyRate := math.Pow(1.0+annualRate, 1.0/12.0) - 1.0

	if math.Abs(monthlyRate) < nearZeroRate {
		// No growth: the exact sum of the contributions.
		return pmt.Mul(decimal.NewFromInt(int64(n))), nil
	}

	// Ordinary annuity future value: pmt * ((1+r)^n - 1) / r.
	factor := (math.Pow(1.0+monthlyRate, float64(n)) - 1.0) / monthlyRate
	return pmt.Mul(decimal.NewFromFloat(factor)), nil
}

// Series computes one projection series per scenario over years
// 0..horizonYears inclusive.
func Series(pmt decimal.Decimal, scenarios []Scenario, horizonYears int) ([]models.ProjectionSeries, error) {
	if horizonYears < 0 {
		horizonYears = DefaultHorizonYears
	}
	if pmt.IsNegative() {
		pmt = decimal.Zero
	}

	result := make([]models.ProjectionSeries, 0, len(scenarios))
	for _, scenario := range scenarios {
		series := models.ProjectionSeries{
			Name:   scenario.Name,
			Rate:   scenario.Rate,
			Points: make([]models.ProjectionPoint, 0, horizonYears+1),
		}
		for year := 0; year <= horizonYears; year++ {
			value, err := FutureValue(pmt, year, scenario.Rate)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
			series.Points = append(series.Points, models.ProjectionPoint{
				Year:  year,
				Value: value,
			})
		}
		result = append(result, series)
	}

	return result, nil
}
