package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected request so the HTTP layer can pick a
// status code without looking at messages.
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindInvalidRequest  ErrorKind = "invalid_request"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	// KindInternal is reported for errors that carry no kind.
	KindInternal ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ErrUnauthenticated(format string, args ...interface{}) error {
	return newError(KindUnauthenticated, format, args...)
}

func ErrForbidden(format string, args ...interface{}) error {
	return newError(KindForbidden, format, args...)
}

func ErrInvalidRequest(format string, args ...interface{}) error {
	return newError(KindInvalidRequest, format, args...)
}

func ErrNotFound(format string, args ...interface{}) error {
	return newError(KindNotFound, format, args...)
}

func ErrConflict(format string, args ...interface{}) error {
	return newError(KindConflict, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
