package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a business error so the transport layer can map it
// to a response code without inspecting messages.
type ErrorKind int

const (
	// ErrKindValidation is malformed or logically inconsistent input.
	ErrKindValidation ErrorKind = iota
	// ErrKindAuthorization is a missing role or ownership relation.
	ErrKindAuthorization
	// ErrKindNotFound is a dangling order/house/user reference.
	ErrKindNotFound
	// ErrKindConflict is an operation that violates a state-machine
	// precondition; retrying the same request will not help.
	ErrKindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidation(format string, args ...any) error {
	return &Error{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewAuthorization(format string, args ...any) error {
	return &Error{Kind: ErrKindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...any) error {
	return &Error{Kind: ErrKindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...any) error {
	return &Error{Kind: ErrKindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or ok=false for unexpected errors.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
