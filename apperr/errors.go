// Package apperr defines the typed error kinds surfaced by the resolver
// layer. Every resolver failure is one of these four kinds; messages never
// include key structure or store-specific details.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnauthorized Kind = "Unauthorized"
	KindValidation   Kind = "Validation"
	KindNotFound     Kind = "NotFound"
	KindInternal     Kind = "InternalFailure"
)

// Error carries an error kind alongside a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Validation(field, reason string) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("%s: %s", field, reason)}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string) error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf returns the kind of err, or "" when err is not an apperr.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is an apperr.Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
