package api

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a client error.
type ErrorKind string

const (
	ErrorKindTransport      ErrorKind = "transport"
	ErrorKindDecode         ErrorKind = "decode"
	ErrorKindUnauthorized   ErrorKind = "unauthorized"
	ErrorKindForbidden      ErrorKind = "forbidden"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindInvalidRequest ErrorKind = "invalid_request"
	ErrorKindServer         ErrorKind = "server_error"
	ErrorKindConfiguration  ErrorKind = "configuration"
	ErrorKindCancelled      ErrorKind = "cancelled"
)

// Error is the single error type returned by the client. Callers branch
// on Kind; Message is informational only and is never parsed.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status code when the error was classified from a response
	Message string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Kind, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// NewTransportError wraps a network-level failure where no HTTP status
// was received.
func NewTransportError(err error) *Error {
	return &Error{Kind: ErrorKindTransport, Message: err.Error(), cause: err}
}

// NewDecodeError wraps a payload that could not be serialized or parsed
// into the expected type.
func NewDecodeError(err error) *Error {
	return &Error{Kind: ErrorKindDecode, Message: err.Error(), cause: err}
}

// NewConfigurationError creates an error for a misconstructed client.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: ErrorKindConfiguration, Message: message}
}

// NewCancelledError creates an error for an acknowledged response
// cancellation.
func NewCancelledError() *Error {
	return &Error{Kind: ErrorKindCancelled, Message: "Response was cancelled"}
}

// Default messages used when an error response carries no body.
const (
	defaultUnauthorizedMessage   = "Authentication failed - invalid or expired token"
	defaultForbiddenMessage      = "Access forbidden - domain not whitelisted or agent suspended"
	defaultNotFoundMessage       = "Resource not found"
	defaultServerErrorMessage    = "Internal server error"
	defaultInvalidRequestMessage = "Bad request"
)

// FromStatus classifies a non-2xx HTTP status and optional body text into
// exactly one error kind. The mapping is total and deterministic:
// 401 -> unauthorized, 403 -> forbidden, 404 -> not_found,
// 500-599 -> server_error, everything else -> invalid_request.
// An empty message falls back to a fixed default per kind.
func FromStatus(status int, message string) *Error {
	switch {
	case status == 401:
		return &Error{Kind: ErrorKindUnauthorized, Status: status, Message: orDefault(message, defaultUnauthorizedMessage)}
	case status == 403:
		return &Error{Kind: ErrorKindForbidden, Status: status, Message: orDefault(message, defaultForbiddenMessage)}
	case status == 404:
		return &Error{Kind: ErrorKindNotFound, Status: status, Message: orDefault(message, defaultNotFoundMessage)}
	case status >= 500 && status <= 599:
		return &Error{Kind: ErrorKindServer, Status: status, Message: orDefault(message, defaultServerErrorMessage)}
	default:
		return &Error{Kind: ErrorKindInvalidRequest, Status: status, Message: orDefault(message, defaultInvalidRequestMessage)}
	}
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
