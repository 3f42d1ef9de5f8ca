package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes surfaced to API clients.
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidState      = "INVALID_STATE"
	CodeStorageError      = "STORAGE_ERROR"
	CodeForbidden         = "FORBIDDEN"
	CodeConflict          = "CONFLICT"
	CodeInternalError     = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewMissingFields reports required fields that were absent from a request.
func NewMissingFields(fields ...string) error {
	return NewValidationError(
		fmt.Sprintf("missing required field(s): %s", strings.Join(fields, ", ")),
		map[string]any{"missing": fields},
	)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthenticated(message string) error {
	return NewDomainError(CodeUnauthenticated, message, http.StatusUnauthorized, nil)
}

func NewInvalidCredential(err error) error {
	return &DomainError{
		Code:       CodeInvalidCredential,
		Message:    "invalid credential",
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

func NewTokenExpired(err error) error {
	return &DomainError{
		Code:       CodeTokenExpired,
		Message:    "token expired",
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

func NewInvalidState(message string, details map[string]any) error {
	return NewDomainError(CodeInvalidState, message, http.StatusConflict, details)
}

// NewStorageError hides the persistence cause from clients; it stays reachable via Unwrap for logs.
func NewStorageError(err error) error {
	return &DomainError{
		Code:       CodeStorageError,
		Message:    "storage unavailable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given DomainError code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
