// Package apperror defines the error variants surfaced by the API and the
// single translation from those variants (and Postgres error codes) to HTTP
// status codes.
package apperror

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind classifies an error for the HTTP boundary
type Kind int

const (
	KindInternal Kind = iota
	KindMalformedRequest
	KindNotFound
)

// Messages returned to clients
const (
	MsgBadRequest   = "Bad request"
	MsgNotFound     = "Resource not found"
	MsgInvalidSort  = "Invalid sort query"
	MsgInvalidOrder = "Invalid order query"
	MsgNoRoute      = "Not found"
)

// Postgres error codes translated at the boundary
const (
	codeNumericOutOfRange         = "22003"
	codeInvalidTextRepresentation = "22P02"
	codeNotNullViolation          = "23502"
	codeForeignKeyViolation       = "23503"
	codeUniqueViolation           = "23505"
)

// Error is a classified application error
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest returns a malformed-request error with the given message
func BadRequest(msg string) *Error {
	return &Error{Kind: KindMalformedRequest, Msg: msg}
}

// NotFound returns a referenced-entity-not-found error
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Msg: MsgNotFound}
}

// Internal wraps an unexpected error
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// IsNotFound reports whether err is classified as not found
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// Translate maps an error to the HTTP status and client-facing message.
// Internal errors produce an empty message.
func Translate(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindMalformedRequest:
			return http.StatusBadRequest, appErr.Msg
		case KindNotFound:
			return http.StatusNotFound, appErr.Msg
		}
		if appErr.Err == nil {
			return http.StatusInternalServerError, ""
		}
		err = appErr.Err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeInvalidTextRepresentation, codeNumericOutOfRange, codeNotNullViolation, codeUniqueViolation:
			return http.StatusBadRequest, MsgBadRequest
		case codeForeignKeyViolation:
			return http.StatusNotFound, MsgNotFound
		}
	}

	return http.StatusInternalServerError, ""
}
