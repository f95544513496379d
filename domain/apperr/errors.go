package apperr

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound marks a lookup for a task id that does not exist.
var ErrTaskNotFound = errors.New("task not found")

// FieldError reports a single invalid input field. User-correctable.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func InvalidField(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// QueryError reports malformed pagination or filter parameters.
type QueryError struct {
	Param  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query parameter %q: %s", e.Param, e.Reason)
}

func InvalidQuery(param, reason string) error {
	return &QueryError{Param: param, Reason: reason}
}

// StorageError wraps a fault from the underlying store. Not user-correctable
// and never silently swallowed; the boundary maps it to a 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
