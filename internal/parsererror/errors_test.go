package parsererror

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmptyValueError(t *testing.T) {
	err := &EmptyValueError{Field: "amount"}
	if err.Error() != "amount is empty" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestMalformedNumberError(t *testing.T) {
	cause := errors.New("can't convert 12x50 to decimal")
	err := &MalformedNumberError{Field: "amount", Value: "12x50", Err: cause}

	if err.Error() != "invalid number for amount: '12x50'" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the underlying parse error")
	}
}

func TestUnrecognizedDateError(t *testing.T) {
	err := &UnrecognizedDateError{Value: "Jan 1st"}
	if err.Error() != "unrecognized date format: 'Jan 1st'" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestInvalidKindError(t *testing.T) {
	err := &InvalidKindError{Value: "transfer"}
	if err.Error() != "kind must be income or expense, got 'transfer'" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestMissingHeaderError(t *testing.T) {
	err := &MissingHeaderError{}
	if err.Error() != "CSV has no header row" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	err = &MissingHeaderError{Source: "upload.csv"}
	if err.Error() != "CSV has no header row: upload.csv" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestMissingColumnsError(t *testing.T) {
	err := &MissingColumnsError{Columns: []string{"amount", "date"}}
	if err.Error() != "missing columns: amount, date" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestRowErrorWrapsCause(t *testing.T) {
	cause := &InvalidKindError{Value: "foo"}
	err := &RowError{Line: 3, Err: cause}

	if err.Error() != "error in line 3: kind must be income or expense, got 'foo'" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	var kindErr *InvalidKindError
	if !errors.As(err, &kindErr) {
		t.Error("expected errors.As to find the wrapped InvalidKindError")
	}
}

func TestRowErrorThroughFmtWrap(t *testing.T) {
	// Callers wrap RowError once more with %w when adding file context.
	rowErr := &RowError{Line: 7, Err: &EmptyValueError{Field: "category"}}
	wrapped := fmt.Errorf("parsing transactions.csv: %w", rowErr)

	var re *RowError
	if !errors.As(wrapped, &re) {
		t.Fatal("expected errors.As to find RowError through fmt wrapping")
	}
	if re.Line != 7 {
		t.Errorf("expected line 7, got %d", re.Line)
	}
}
