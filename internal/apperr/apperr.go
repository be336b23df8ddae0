// Package apperr defines the closed error taxonomy shared by the service
// layer and the HTTP error handler. Every failure a handler can surface is
// one of these kinds; anything unclassified is treated as Internal.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Conflict
	Unauthenticated
	Forbidden
)

// Error carries a kind, a client-safe message and an optional wrapped cause.
// The cause is for server-side logs only and must never reach a response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and client-safe message to an underlying error.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind from err, defaulting to Internal for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the client-safe message for err. Internal errors get a
// generic message so internal detail never leaks to callers.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "internal server error"
}
