package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Report bundles everything a rendering layer needs: the raw summary, the
// ready-made chart specs and the projection series. No date math is left to
// the consumer.
type Report struct {
	Summary    models.Summary            `json:"summary"`
	Charts     []Chart                   `json:"charts"`
	Projection []models.ProjectionSeries `json:"projection,omitempty"`
	// MonthlySaving is the contribution the projection was computed with,
	// either user-supplied or derived from the average monthly net.
	MonthlySaving decimal.Decimal `json:"monthlySaving"`
}

// Generator produces reports from summaries.
type Generator struct {
	rules  models.Rules
	logger logging.Logger
}

// NewGenerator creates a Generator using the given rules for group labels.
func NewGenerator(rules models.Rules, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{rules: rules, logger: logger}
}

// Build assembles the full report: all standard charts plus the projection
// chart when a projection is provided.
func (g *Generator) Build(summary models.Summary, projectionSeries []models.ProjectionSeries, monthlySaving decimal.Decimal, showIncome bool) Report {
	charts := []Chart{
		MonthlyByCategory(summary),
		MonthlyByGroup(summary, g.rules),
		TotalsByCategory(summary),
		GroupShare(summary, g.rules),
		Cashflow(summary, showIncome),
	}
	if len(projectionSeries) > 0 {
		charts = append(charts, Savings(projectionSeries))
	}

	g.logger.Debug("report assembled",
		logging.Field{Key: logging.FieldCount, Value: len(charts)})

	return Report{
		Summary:       summary,
		Charts:        charts,
		Projection:    projectionSeries,
		MonthlySaving: monthlySaving,
	}
}

// RenderJSON serializes a report for transport or file output.
func (g *Generator) RenderJSON(report Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

// FormatSwiss renders an amount with apostrophe thousands grouping and two
// decimals, e.g. "12'500.75", the way Swiss statements print money.
func FormatSwiss(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	integer, fraction := parts[0], parts[1]

	var groups []string
	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}
	groups = append([]string{integer}, groups...)

	result := strings.Join(groups, "'") + "." + fraction
	if negative {
		return "-" + result
	}
	return result
}
