// Package apierror provides the error taxonomy shared by the use-case layer
// and the HTTP handlers. Every failure a use case can produce is one of the
// kinds below; handlers translate the kind into an HTTP status without ever
// leaking internal details (stack traces, SQL, driver errors).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure.
type Kind string

const (
	// KindValidation: an entity field invariant was violated.
	KindValidation Kind = "validation"
	// KindDuplicate: a uniqueness constraint was violated (owner, address,
	// stationNumber, ci, email, ticket number).
	KindDuplicate Kind = "duplicate"
	// KindNotFound: a referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindOutOfRange: a numeric domain rule was violated (percentage bounds).
	KindOutOfRange Kind = "out_of_range"
	// KindInvalidSchedule: openTime/closeTime ordering violated.
	KindInvalidSchedule Kind = "invalid_schedule"
	// KindUnavailable: the target station is not accepting tickets.
	KindUnavailable Kind = "unavailable"
	// KindInsufficientFuel: requested liters exceed the station's current level.
	KindInsufficientFuel Kind = "insufficient_fuel"
	// KindUnauthorized: bad credentials or missing/invalid token.
	KindUnauthorized Kind = "unauthorized"
	// KindStorage: the persistence layer failed; never retried by the core.
	KindStorage Kind = "storage"
)

// Error is the canonical typed failure returned by services.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the inner cause (validation detail, driver error).
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Validation(msg string) *Error       { return newError(KindValidation, msg) }
func Duplicate(msg string) *Error        { return newError(KindDuplicate, msg) }
func NotFound(msg string) *Error         { return newError(KindNotFound, msg) }
func OutOfRange(msg string) *Error       { return newError(KindOutOfRange, msg) }
func InvalidSchedule(msg string) *Error  { return newError(KindInvalidSchedule, msg) }
func Unavailable(msg string) *Error      { return newError(KindUnavailable, msg) }
func InsufficientFuel(msg string) *Error { return newError(KindInsufficientFuel, msg) }
func Unauthorized(msg string) *Error     { return newError(KindUnauthorized, msg) }

// ValidationWrap builds a Validation error whose message appends the inner
// cause text, keeping the cause reachable via errors.Unwrap.
func ValidationWrap(msg string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: msg + ": " + cause.Error(), cause: cause}
}

// Storage wraps an I/O failure with context. The cause stays reachable via
// Unwrap for logging; the message is all clients may see.
func Storage(cause error, msg string) *Error {
	return &Error{Kind: KindStorage, Message: msg, cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// StatusOf maps an error to the HTTP status handlers should emit.
// Unknown errors are treated as internal failures.
func StatusOf(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindDuplicate:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindOutOfRange, KindInvalidSchedule, KindUnavailable, KindInsufficientFuel:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
