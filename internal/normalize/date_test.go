package normalize

import (
	"testing"
	"time"

	"fjacquet/budget-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDecimal is shared by the package tests.
func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// All four plain formats of the same calendar date must produce the same
// value.
func TestDateFormatsAgree(t *testing.T) {
	want := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2026-01-11",
		"11.01.2026",
		"11/01/2026",
		"11-01-2026",
	} {
		got, err := Date(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "Date(%q) = %v, want %v", input, got, want)
	}
}

func TestDateTimestampFallback(t *testing.T) {
	want := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2026-01-11T14:30:00Z",
		"2026-01-11T14:30:00+01:00",
		"2026-01-11T14:30:00",
		"2026-01-11 14:30:00",
	} {
		got, err := Date(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "Date(%q) = %v, want date only", input, got)
	}
}

func TestDateTrimsWhitespace(t *testing.T) {
	got, err := Date("  2026-01-11  ")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
}

func TestDateEmpty(t *testing.T) {
	_, err := Date("   ")

	var emptyErr *parsererror.EmptyValueError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "date", emptyErr.Field)
}

func TestDateUnrecognized(t *testing.T) {
	for _, input := range []string{
		"January 11, 2026",
		"11.1.26",
		"2026/01/11",
		"not a date",
	} {
		_, err := Date(input)

		var dateErr *parsererror.UnrecognizedDateError
		assert.ErrorAs(t, err, &dateErr, "input %q", input)
	}
}

func TestDateNoTimeComponentSurvives(t *testing.T) {
	got, err := Date("2026-06-15T23:59:59Z")
	require.NoError(t, err)

	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, time.UTC, got.Location())
}
