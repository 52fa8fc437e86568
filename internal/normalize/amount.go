// Package normalize converts the raw text fields of a budget CSV row into
// typed values. Each normalizer either returns a value or a typed error from
// the parsererror package; nothing is silently defaulted.
package normalize

import (
	"strings"

	"fjacquet/budget-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Amount parses a money amount written with either decimal convention.
// "12500.75", "12500,75", "12'500.75" and "12 500,75" all yield 12500.75.
// Apostrophe and plain space are accepted as thousands grouping; a comma is
// read as the decimal separator. Currency symbols are not stripped — an
// amount carrying one is malformed. Negative amounts are rejected: a budget
// row states its direction through the kind column, not through a sign.
func Amount(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.Zero, &parsererror.EmptyValueError{Field: "amount"}
	}

	text = strings.ReplaceAll(text, "'", "")
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", ".")

	amount, err := decimal.NewFromString(text)
	if err != nil {
		log.WithField("value", raw).Debug("amount did not parse as decimal")
		return decimal.Zero, &parsererror.MalformedNumberError{Field: "amount", Value: raw, Err: err}
	}
	if amount.IsNegative() {
		return decimal.Zero, &parsererror.MalformedNumberError{Field: "amount", Value: raw}
	}

	return amount, nil
}
