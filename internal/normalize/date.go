package normalize

import (
	"strings"
	"time"

	"fjacquet/budget-csv/internal/parsererror"
)

// Date layout constants shared with the rest of the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutSwiss    = "02.01.2006"
	DateLayoutSlash    = "02/01/2006"
	DateLayoutHyphen   = "02-01-2006"
)

// dateLayouts is the fixed try-order for plain dates. The order is part of
// the contract: the first layout that parses wins, so reordering could make
// borderline inputs resolve differently.
var dateLayouts = []string{
	DateLayoutISO,
	DateLayoutSwiss,
	DateLayoutSlash,
	DateLayoutHyphen,
}

// timestampLayouts are tried last, for inputs that carry a time component.
// Only the calendar date survives.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date parses a calendar date in one of the supported formats: ISO
// YYYY-MM-DD, Swiss DD.MM.YYYY, DD/MM/YYYY or DD-MM-YYYY, with an ISO-8601
// timestamp accepted as a fallback. The result is always midnight UTC so
// dates written in different formats compare equal.
func Date(raw string) (time.Time, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, &parsererror.EmptyValueError{Field: "date"}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return toDate(t), nil
		}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return toDate(t), nil
		}
	}

	return time.Time{}, &parsererror.UnrecognizedDateError{Value: text}
}

// toDate strips any time-of-day and timezone component.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
