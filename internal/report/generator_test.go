package report

import (
	"encoding/json"
	"testing"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/projection"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIncludesAllCharts(t *testing.T) {
	g := NewGenerator(models.DefaultRules(), nil)
	series, err := projection.Series(decimal.RequireFromString("200"),
		projection.DefaultScenarios(), 10)
	require.NoError(t, err)

	rep := g.Build(sampleSummary(), series, decimal.RequireFromString("200"), true)

	require.Len(t, rep.Charts, 6)
	assert.Equal(t, "Cashflow pro Monat", rep.Charts[4].Title)
	assert.Len(t, rep.Projection, 3)
}

func TestBuildWithoutProjection(t *testing.T) {
	g := NewGenerator(models.DefaultRules(), nil)

	rep := g.Build(sampleSummary(), nil, decimal.Zero, false)

	assert.Len(t, rep.Charts, 5)
	assert.Empty(t, rep.Projection)
}

func TestRenderJSONRoundTrips(t *testing.T) {
	g := NewGenerator(models.DefaultRules(), nil)
	rep := g.Build(sampleSummary(), nil, decimal.Zero, true)

	data, err := g.RenderJSON(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "charts")
}

func TestFormatSwiss(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0.00"},
		{"45.5", "45.50"},
		{"1234.56", "1'234.56"},
		{"12500.75", "12'500.75"},
		{"1000000", "1'000'000.00"},
		{"-554.5", "-554.50"},
		{"-12345.67", "-12'345.67"},
	}

	for _, tt := range tests {
		got := FormatSwiss(decimal.RequireFromString(tt.input))
		assert.Equal(t, tt.want, got, "input %s", tt.input)
	}
}
