package supabase

import (
	"errors"
	"net/http"
)

// Kind classifies a failure from the Supabase backend or from request
// validation. Provider-specific payloads are mapped to a Kind at this
// package's boundary; handlers only ever look at the Kind.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindUnauthenticated
	KindInvalidRequest
	KindNotFound
)

// Error carries a failure kind and the provider's detail message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus returns the response status code for the error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// NotFound builds a not-found error with the given detail message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// StatusOf resolves any error to an HTTP status code. Errors that did not
// originate from this package are treated as unexpected upstream failures.
func StatusOf(err error) int {
	var se *Error
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return http.StatusBadGateway
}
