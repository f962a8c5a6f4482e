package store

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when an id does not match any row.
// Handlers translate it into a 404.
var ErrNotFound = errors.New("record not found")

// ValidationError reports rejected input. The store is never touched when
// one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// OperationError wraps a database failure. The transaction it happened in
// has been rolled back.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
