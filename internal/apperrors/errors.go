package apperrors

import "fmt"

// ValidationError indicates a missing or invalid input field. The client's fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a validation error for a specific field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates a referenced entity is absent from the store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFoundError creates a not-found error for an entity
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// AuthenticationError indicates a credential mismatch. The message is
// deliberately constant so callers cannot tell an unknown email from a
// wrong password.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}

// NewAuthenticationError creates an authentication error
func NewAuthenticationError() *AuthenticationError {
	return &AuthenticationError{}
}

// StoreError wraps a failure from the underlying store. Never retried
// internally; the caller decides on retry/backoff.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a store failure with the operation that caused it
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
