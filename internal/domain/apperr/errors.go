package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind string

const (
	KindMissingField      Kind = "missing_field"
	KindInvalidField      Kind = "invalid_field"
	KindInvalidEnum       Kind = "invalid_enum"
	KindForbidden         Kind = "forbidden"
	KindInvalidTransition Kind = "invalid_transition"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInternal          Kind = "internal"
)

// Error is the typed failure returned by every usecase.
// Cause is kept for diagnostics and is reachable through errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Sentinels for errors.Is; matching is by Kind only.
var (
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrInvalidField      = &Error{Kind: KindInvalidField}
	ErrInvalidEnum       = &Error{Kind: KindInvalidEnum}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrInternal          = &Error{Kind: KindInternal}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: err}
}

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Message: field + " is required"}
}

// InvalidField is a malformed free-form value (phone, email).
func InvalidField(field, value string) *Error {
	return &Error{Kind: KindInvalidField, Message: fmt.Sprintf("%s %q is malformed", field, value)}
}

func InvalidEnum(field, value string) *Error {
	return &Error{Kind: KindInvalidEnum, Message: fmt.Sprintf("%s %q is not an allowed value", field, value)}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// KindOf reports the kind of err; untyped errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FromStore classifies an error surfaced by the store. Typed errors pass through.
func FromStore(err error, what string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Message: what + " not found", Cause: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Message: what + " already exists", Cause: err}
	default:
		return &Error{Kind: KindInternal, Message: what + " store failure", Cause: err}
	}
}
