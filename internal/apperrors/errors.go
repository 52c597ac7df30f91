package apperrors

import (
	"errors"
	"strings"
)

// Kind classifies a per-request failure. Every kind maps to exactly one
// HTTP status at the delivery layer; none of them are fatal to the process.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindAuthentication
	KindAuthorization
	KindNotFound
)

// Error carries a kind plus one or more human-readable messages. Validation
// pipelines accumulate messages instead of stopping at the first failure.
type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func Conflict(messages ...string) *Error {
	return &Error{Kind: KindConflict, Messages: messages}
}

func Authentication(messages ...string) *Error {
	return &Error{Kind: KindAuthentication, Messages: messages}
}

// InvalidCredentials is deliberately generic: it must not reveal which of
// username or password was wrong.
func InvalidCredentials() *Error {
	return Authentication("invalid username or password")
}

func NotAuthorized() *Error {
	return &Error{Kind: KindAuthorization, Messages: []string{"not authorized"}}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{what + " not found"}}
}

// KindOf reports the kind of err, or ok=false if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

// Is lets callers match on kind without caring about messages.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
