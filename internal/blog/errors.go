package blog

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a domain error with a client facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

func conflictError(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

func notFoundError(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func unauthorizedError(format string, args ...interface{}) error {
	return newError(ErrUnauthorized, format, args...)
}

// Message returns the client facing message of a domain error, or "" for other errors.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return ""
}

var (
	ErrArticleNotFound = &Error{Kind: ErrNotFound, Message: "article not found"}
	ErrTagNotFound     = &Error{Kind: ErrNotFound, Message: "tag not found"}
	ErrCommentNotFound = &Error{Kind: ErrNotFound, Message: "comment not found"}
	ErrProjectNotFound = &Error{Kind: ErrNotFound, Message: "project not found"}
	ErrProfileNotFound = &Error{Kind: ErrNotFound, Message: "profile not found"}

	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Message: "invalid username or password"}
)
