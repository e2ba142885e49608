package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories. Domain errors wrap exactly one of these so the transport
// layer can pick a status without knowing the domain.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// Error is a categorised error whose Message is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New returns a client-safe error in the given category.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// StatusCode maps an error's category to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Uncategorised errors
// never leak their text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrInternal.Error()
}

// Wrapf prefixes err with a formatted context. The category and client
// message of err are preserved. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithCause joins a client-facing error with the internal failure behind it.
// StatusCode and Message follow clientErr; the cause stays reachable for logs
// and errors.Is.
func WithCause(clientErr *Error, cause error) error {
	if cause == nil {
		return clientErr
	}
	return fmt.Errorf("%w: %w", clientErr, cause)
}
