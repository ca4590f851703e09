/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrBadPaginationToken is returned when a next page token cannot be used
	ErrBadPaginationToken = errors.New("next page token invalid")

	// ErrNotFound is returned when a named table or schema is not registered
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering a name twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuotaExceeded is returned when stored bytes exceed the allowed amount
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// BadPaginationTokenError is returned for any malformed, tampered or rejected
// token. Its message is the same whatever check failed; the cause is only
// reachable through Unwrap for server-side logging.
type BadPaginationTokenError struct {
	cause error
}

func (e *BadPaginationTokenError) Error() string {
	return ErrBadPaginationToken.Error()
}

func (e *BadPaginationTokenError) Is(target error) bool {
	return target == ErrBadPaginationToken
}

// Unwrap returns the underlying decode or validation failure.
func (e *BadPaginationTokenError) Unwrap() error {
	return e.cause
}

// NotFoundError represents a lookup of an unregistered name
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a duplicate registration
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// QuotaExceededError reports usage above the allowed number of bytes
type QuotaExceededError struct {
	Used    int64
	Allowed int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("storage quota exceeded: %d bytes used of %d allowed", e.Used, e.Allowed)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// Helper functions for creating errors

// NewBadPaginationTokenError wraps the reason a token was rejected
func NewBadPaginationTokenError(cause error) error {
	return &BadPaginationTokenError{cause: cause}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewQuotaExceededError creates a new QuotaExceededError
func NewQuotaExceededError(used, allowed int64) error {
	return &QuotaExceededError{Used: used, Allowed: allowed}
}

// IsBadPaginationToken checks if an error is a rejected pagination token
func IsBadPaginationToken(err error) bool {
	return errors.Is(err, ErrBadPaginationToken)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsQuotaExceeded checks if an error is a quota error
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}
