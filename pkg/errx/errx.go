package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is the user-facing fallback when an unexpected error occurs.
	SystemErrorMessage = "Error getting sales details by product"
	// UpstreamErrorMessage describes a failed call to the ERP notes endpoint.
	UpstreamErrorMessage = "failed to query ERP API"
)

// Kind classifies an Error for status mapping.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindUpstream      Kind = "upstream"
	KindUnexpected    Kind = "unexpected"
)

// Error wraps an underlying error with an HTTP status and a safe message.
type Error struct {
	Err     error
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the provided information.
func New(err error, kind Kind, status int, message string) *Error {
	return &Error{
		Err:     err,
		Kind:    kind,
		Status:  status,
		Message: message,
	}
}

func Validation(format string, args ...any) *Error {
	return New(nil, KindValidation, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Configuration(format string, args ...any) *Error {
	return New(nil, KindConfiguration, http.StatusInternalServerError, fmt.Sprintf(format, args...))
}

// UpstreamError is a non-success answer of the ERP notes endpoint.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

// WrapUpstream maps a non-success notes response to a 502 Error.
func WrapUpstream(statusCode int, body string) *Error {
	return New(&UpstreamError{StatusCode: statusCode, Body: body}, KindUpstream, http.StatusBadGateway, UpstreamErrorMessage)
}

// Unexpected wraps any other failure. The cause is kept for logging only.
func Unexpected(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, KindUnexpected, http.StatusInternalServerError, SystemErrorMessage)
}

// From converts err into an *Error, treating unknown errors as unexpected.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected(err)
}

// IsKind reports whether err is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
