// Package apperr defines the typed errors the services return. The HTTP
// layer maps each Kind onto a status code, so handlers never pick codes
// themselves.
package apperr

import "net/http"

// Kind categorizes an error for transport mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindBadRequest
	KindInternal
)

// Error is a service-level error carrying a Kind and optional response
// details (for validation errors, the violation list).
type Error struct {
	Kind    Kind
	Message string
	Details interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to an HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// WithDetails attaches payload details that are safe to return to callers.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// New creates an error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Validation reports rejected input.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Conflict reports a clash with existing state, such as a duplicate record.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// BadRequest reports a malformed request.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Internal reports an unexpected failure.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the kind from an error, KindUnknown for untyped errors.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
