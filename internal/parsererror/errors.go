// Package parsererror defines the error taxonomy for CSV ingestion.
// Every failure a caller can act on is a distinct type so callers can
// branch with errors.As instead of string matching.
package parsererror

import (
	"fmt"
	"strings"
)

// EmptyValueError reports a required field that was blank after trimming.
type EmptyValueError struct {
	Field string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("%s is empty", e.Field)
}

// MalformedNumberError reports an amount that is not a valid decimal
// after separator normalization.
type MalformedNumberError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("invalid number for %s: '%s'", e.Field, e.Value)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

// UnrecognizedDateError reports a date string that matched none of the
// supported layouts.
type UnrecognizedDateError struct {
	Value string
}

func (e *UnrecognizedDateError) Error() string {
	return fmt.Sprintf("unrecognized date format: '%s'", e.Value)
}

// InvalidKindError reports a kind value outside the income/expense synonym set.
type InvalidKindError struct {
	Value string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("kind must be income or expense, got '%s'", e.Value)
}

// MissingHeaderError reports an input with no header row at all.
type MissingHeaderError struct {
	Source string
}

func (e *MissingHeaderError) Error() string {
	if e.Source == "" {
		return "CSV has no header row"
	}
	return fmt.Sprintf("CSV has no header row: %s", e.Source)
}

// MissingColumnsError reports every required column absent from the header,
// not just the first one found.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Columns, ", "))
}

// RowError wraps a normalizer failure with the 1-based line it occurred on.
// The header counts as line 1, so the first data row is line 2.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("error in line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
