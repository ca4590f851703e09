/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBadPaginationTokenError(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 3")
	err := NewBadPaginationTokenError(cause)

	// Message must not reveal the cause
	if err.Error() != "next page token invalid" {
		t.Errorf("Expected sanitized message, got %q", err.Error())
	}

	if !errors.Is(err, ErrBadPaginationToken) {
		t.Error("BadPaginationTokenError should match ErrBadPaginationToken")
	}

	if !IsBadPaginationToken(err) {
		t.Error("IsBadPaginationToken should return true for BadPaginationTokenError")
	}

	if !errors.Is(err, cause) {
		t.Error("BadPaginationTokenError should unwrap to its cause")
	}
}

func TestBadPaginationTokenMessageIndependentOfCause(t *testing.T) {
	a := NewBadPaginationTokenError(errors.New("missing key attribute"))
	b := NewBadPaginationTokenError(errors.New("rejected by validator"))
	if a.Error() != b.Error() {
		t.Errorf("Messages should be identical, got %q and %q", a.Error(), b.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("table", "apps")

	expected := `table with key "apps" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("schema", "items")

	expected := `schema with key "items" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "email",
			message:  "invalid format",
			expected: `validation failed for field "email": invalid format`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestQuotaExceededError(t *testing.T) {
	err := NewQuotaExceededError(2048, 1024)

	expected := "storage quota exceeded: 2048 bytes used of 1024 allowed"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	var qe *QuotaExceededError
	if !errors.As(err, &qe) || qe.Used != 2048 || qe.Allowed != 1024 {
		t.Errorf("Expected QuotaExceededError with used/allowed, got %#v", err)
	}

	if !IsQuotaExceeded(err) {
		t.Error("IsQuotaExceeded should return true for QuotaExceededError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewBadPaginationTokenError(errors.New("bad json"))
	wrapped := fmt.Errorf("list items: %w", original)

	if !IsBadPaginationToken(wrapped) {
		t.Error("IsBadPaginationToken should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrBadPaginationToken,
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrQuotaExceeded,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
