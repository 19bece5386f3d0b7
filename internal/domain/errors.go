package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindInternal
)

// Error is the failure type raised by use cases. Handlers switch on Kind to
// pick an HTTP status, so every business failure must be one of these.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFoundError(resource string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %d not found", resource, id)}
}

func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// KindOf classifies any error; store and runtime failures fall through to
// KindInternal.
func KindOf(err error) ErrorKind {
	var domainErr *Error

	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	return KindInternal
}
