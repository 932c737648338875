package errors

import (
	"errors"
	"fmt"
)

// ParseError reports a single malformed export row. It is recovered locally:
// the row is skipped and counted, ingestion continues.
type ParseError struct {
	Row    int
	Field  string
	Reason string
}

func NewParseError(row int, field, reason string) *ParseError {
	return &ParseError{Row: row, Field: field, Reason: reason}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
}

// TransactionError is returned when a storage fault aborts a mutating
// operation. Everything done by the operation has been rolled back.
type TransactionError struct {
	Operation string
	Saved     int
	Skipped   int
	Err       error
}

func NewTransactionError(operation string, saved, skipped int, err error) *TransactionError {
	return &TransactionError{Operation: operation, Saved: saved, Skipped: skipped, Err: err}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s rolled back (saved=%d skipped=%d): %v", e.Operation, e.Saved, e.Skipped, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ValidationError rejects caller input. Field names the offending parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func NewValidationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, ID: id}
}

func NewMetricsNotFoundError(date string) *ResourceNotFoundError {
	return NewResourceNotFoundError("daily metrics", date)
}

func NewJobNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("job", id)
}

func NewSnapshotNotFoundError(date string) *ResourceNotFoundError {
	return NewResourceNotFoundError("snapshot", date)
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

func IsTransactionError(err error) bool {
	var e *TransactionError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}
