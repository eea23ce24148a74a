package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
	// MessageFromBackend marks Message as text relayed verbatim from the
	// backend rather than a locally chosen placeholder.
	MessageFromBackend bool
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
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

// NewAuthFailed wraps a rejected login: message is the backend-supplied one
// when present, otherwise the generic fallback chosen by the caller.
func NewAuthFailed(message string, err error) error {
	return &DomainError{
		Code:       "AUTH_FAILED",
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

// NewDecodeFailed signals a malformed credential payload.
func NewDecodeFailed(err error) error {
	return &DomainError{
		Code:       "DECODE_FAILED",
		Message:    "credential payload is not decodable",
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

// NewUpstreamError maps a failed backend call. Client-class upstream statuses
// are relayed as-is; anything else surfaces as a bad gateway.
func NewUpstreamError(status int, message string) error {
	fromBackend := message != ""
	if !fromBackend {
		message = "backend request failed"
	}
	httpStatus := http.StatusBadGateway
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict:
		httpStatus = status
	}
	return &DomainError{
		Code:               "UPSTREAM_ERROR",
		Message:            message,
		HTTPStatus:         httpStatus,
		Details:            map[string]any{"upstream_status": status},
		MessageFromBackend: fromBackend,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
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
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
