// Package fault defines the error taxonomy every HTTP boundary translates
// into. Handlers never leak internal detail: the client sees a fixed status
// code and a short message, nothing else.
//
// Use the sentinel kinds with errors.Is, or the shorthand helpers:
//
//	if fault.IsNotFound(err) { ... }
//
// Create classified errors with New/Wrap:
//
//	return fault.New(fault.ErrInvalidArgument, "invalid car ID")
//	return fault.Wrap(fault.ErrInternal, err, "failed to fetch cars")
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Everything a boundary operation can report is one of these.
var (
	// ErrInvalidArgument covers malformed input, e.g. a non-numeric car ID.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized covers bad credentials and missing/revoked tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when no record matches the identifier.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers unique-constraint violations (duplicate email).
	ErrConflict = errors.New("conflict")

	// ErrInternal covers storage failures and anything unexpected.
	ErrInternal = errors.New("internal failure")
)

func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
func IsInternal(err error) bool        { return errors.Is(err, ErrInternal) }

// Fault carries a sentinel kind, a client-safe message, and the original
// cause for logs. errors.Is matches against the kind; Unwrap exposes the
// cause for further inspection.
type Fault struct {
	Kind    error
	Message string
	Cause   error
}

func (f *Fault) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", f.Kind, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Is(target error) bool { return errors.Is(f.Kind, target) }
func (f *Fault) Unwrap() error        { return f.Cause }

// New creates a Fault with a client-safe message and no cause.
func New(kind error, message string) error {
	return &Fault{Kind: kind, Message: message}
}

// Wrap creates a Fault preserving the underlying cause.
func Wrap(kind error, cause error, message string) error {
	return &Fault{Kind: kind, Message: message, Cause: cause}
}

// Status maps an error to its fixed HTTP status code.
// Unclassified errors are treated as internal failures.
func Status(err error) int {
	switch {
	case IsInvalidArgument(err):
		return http.StatusBadRequest
	case IsUnauthorized(err):
		return http.StatusUnauthorized
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. For unclassified errors
// it returns a generic string so internals never reach the caller.
func Message(err error) string {
	var f *Fault
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	if Status(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
