package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingParameters = 4001
	CodeInvalidPersonID   = 4002
	CodePersonNotFound    = 4040
	CodePersonLocked      = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrMissingParameters is returned when a request lacks obligatory fields
	ErrMissingParameters = errors.New("request didn't contain obligatory parameters")

	// ErrInvalidPersonID is returned when the person ID is not a positive integer
	ErrInvalidPersonID = errors.New("person ID must be positive")

	// ErrPersonNotFound is returned when the requested person doesn't exist
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonLocked is returned when a person record is still inside its
	// post-creation protection window and cannot be updated or deleted
	ErrPersonLocked = errors.New("person is locked, try later")

	// ErrInvalidPersonData is returned when person fields fail entity validation
	ErrInvalidPersonData = errors.New("invalid person data")

	// ErrStoreUnavailable is returned when the relational store or the lock
	// store cannot be reached; it always propagates as a hard failure
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingParameters):
		return CodeMissingParameters
	case errors.Is(err, ErrInvalidPersonID):
		return CodeInvalidPersonID
	case errors.Is(err, ErrPersonNotFound):
		return CodePersonNotFound
	case errors.Is(err, ErrPersonLocked):
		return CodePersonLocked
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// LockError carries the id of a record that was rejected because its
// protection window has not expired yet
type LockError struct {
	PersonID uint64
}

// Error implements the error interface
func (e *LockError) Error() string {
	return fmt.Sprintf("person %d is locked, try later", e.PersonID)
}

// Is checks if the target error is an ErrPersonLocked
func (e *LockError) Is(target error) bool {
	return target == ErrPersonLocked
}

// LogFields returns a map of fields for structured logging
func (e *LockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "person_locked",
		"person_id":  e.PersonID,
		"error_code": CodePersonLocked,
	}
}

// NewLockError creates a new locked-record error for the given id
func NewLockError(personID uint64) error {
	return &LockError{PersonID: personID}
}

// StoreError wraps an infrastructure failure from the relational or lock store
type StoreError struct {
	Store string // "postgres" or "redis"
	Op    string
	Err   error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s unavailable during %s: %v", e.Store, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_unavailable",
		"store":      e.Store,
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError creates a new store failure error
func NewStoreError(store, op string, err error) error {
	return &StoreError{Store: store, Op: op, Err: err}
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPersonNotFound)
}

// IsLockedError checks if the error is related to a locked record
func IsLockedError(err error) bool {
	return errors.Is(err, ErrPersonLocked)
}

// IsInvalidInputError checks if the error was caused by bad client input
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidPersonData) || errors.Is(err, ErrInvalidPersonID)
}

// IsStoreUnavailableError checks if the error is an infrastructure failure
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
