// Package apperr defines the error kinds shared by every service and their HTTP mapping.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	// Unauthenticated means no current user for an operation that needs one.
	Unauthenticated Kind = "UNAUTHENTICATED"
	// NotFoundOrForbidden collapses "absent" and "not owned" into one kind.
	NotFoundOrForbidden Kind = "NOT_FOUND_OR_FORBIDDEN"
	ValidationFailure   Kind = "VALIDATION_FAILURE"
	UpstreamFailure     Kind = "UPSTREAM_FAILURE"
	// PartialWriteFailure means a multi-step write failed after an earlier step
	// committed and the compensation could not restore the previous state.
	PartialWriteFailure Kind = "PARTIAL_WRITE_FAILURE"
)

type AppError struct {
	Kind    Kind
	Message string
	Origin  error
}

func (e *AppError) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Origin
}

func New(kind Kind, message string, origin error) *AppError {
	return &AppError{Kind: kind, Message: message, Origin: origin}
}

func NewUnauthenticated() *AppError {
	return New(Unauthenticated, "no authenticated user found", nil)
}

func NewNotFoundOrForbidden(message string) *AppError {
	return New(NotFoundOrForbidden, message, nil)
}

func NewValidation(message string) *AppError {
	return New(ValidationFailure, message, nil)
}

func NewUpstream(message string, origin error) *AppError {
	return New(UpstreamFailure, message, origin)
}

func NewPartialWrite(message string, origin error) *AppError {
	return New(PartialWriteFailure, message, origin)
}

// KindOf returns the kind of the first AppError in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotFoundOrForbidden:
		return http.StatusNotFound
	case ValidationFailure:
		return http.StatusBadRequest
	case UpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text for err; upstream detail stays in the logs.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
