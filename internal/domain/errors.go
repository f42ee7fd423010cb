package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures at the component boundary.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindNetwork        ErrorKind = "network"
	KindServer         ErrorKind = "server"
	KindNotFound       ErrorKind = "not_found"
	KindMalformedState ErrorKind = "malformed_state"
)

var (
	// ErrSubmissionPending is returned when an operation is triggered again
	// while its previous request has not resolved.
	ErrSubmissionPending = errors.New("a request is already pending")

	// ErrDiscarded is returned when a response arrives after the view that
	// issued the request was abandoned.
	ErrDiscarded = errors.New("response discarded: request was abandoned")
)

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the classified failure surfaced to callers.
type Error struct {
	Kind    ErrorKind    `json:"kind"`
	Message string       `json:"message"`
	Status  int          `json:"status,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Message)
		}
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(parts, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether repeating the same action may succeed without the
// user changing anything.
func (e *Error) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindServer
}

func NewValidationError(msg string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NewNetworkError(msg string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

func NewServerError(status int, msg string) *Error {
	return &Error{Kind: KindServer, Status: status, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: 404, Message: msg}
}

func NewMalformedStateError(msg string, err error) *Error {
	return &Error{Kind: KindMalformedState, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable reports whether err is a classified, retryable failure.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}
