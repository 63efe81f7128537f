// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	// KindValidation is a user-correctable input error (400)
	KindValidation Kind = iota
	// KindNotFound is a navigation cursor at a book boundary (404)
	KindNotFound
	// KindSearchUnavailable is a failure of the search engine itself:
	// unreachable, auth failure, malformed response (500)
	KindSearchUnavailable
)

// Error carries a classification, a user-facing message and the
// underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation creates a user-correctable input error
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound creates a boundary error with a descriptive message
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// SearchUnavailable wraps an underlying search-engine failure
func SearchUnavailable(err error) *Error {
	return &Error{Kind: KindSearchUnavailable, Message: "فشل البحث في المصادر.", Err: err}
}

// As extracts an *Error from an error chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}
