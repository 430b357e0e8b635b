// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an application error
type Type string

const (
	TypeValidation Type = "validation"
	TypeNotFound   Type = "not_found"
	TypeInternal   Type = "internal"
)

// AppError is an error that knows which HTTP status it maps to.
// Message is safe to show to API clients; Internal never is.
type AppError struct {
	Type       Type
	Message    string
	StatusCode int
	Internal   error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Internal.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidationError reports malformed input or a violated business rule
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       TypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewNotFoundError reports a referenced poll that does not exist
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       TypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternalError wraps a store or runtime failure
func NewInternalError(message string, internal error) *AppError {
	return &AppError{
		Type:       TypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Internal:   internal,
	}
}

// As extracts an *AppError from anywhere in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsValidation(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == TypeValidation
}

func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == TypeNotFound
}
