package interfaces

import (
	"errors"
	"fmt"
)

// ErrorMarker prefixes every user-visible failure message
const ErrorMarker = "Error"

// ErrInvalidCoinID marks a coin identifier that cannot be used in an upstream request path
var ErrInvalidCoinID = errors.New("invalid coin ID")

// FailureKind classifies why an upstream fetch failed
type FailureKind string

const (
	// FailureTransport means the request never produced an HTTP response
	FailureTransport FailureKind = "transport"
	// FailureStatus means the upstream answered with a non-2xx status
	FailureStatus FailureKind = "upstream_status"
	// FailureMalformed means the response body did not have the expected shape
	FailureMalformed FailureKind = "malformed_response"
	// FailureEmpty means the request succeeded but nothing usable came back
	FailureEmpty FailureKind = "empty_result"
)

func (k FailureKind) String() string {
	return string(k)
}

// FetchError is the failure variant of every fetch operation
type FetchError struct {
	// Op describes the operation, e.g. "fetching market data"
	Op         string
	Kind       FailureKind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", ErrorMarker, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", ErrorMarker, e.Op, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a user retry may help
func (e *FetchError) Retryable() bool {
	return e.Kind == FailureTransport
}

// NewFetchError creates a FetchError without an underlying cause
func NewFetchError(op string, kind FailureKind, format string, args ...interface{}) *FetchError {
	return &FetchError{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithOp returns err as a *FetchError bound to op.
// Errors that are not FetchErrors are treated as transport failures.
func WithOp(err error, op string) *FetchError {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		copied := *fe
		copied.Op = op
		return &copied
	}

	return &FetchError{
		Op:      op,
		Kind:    FailureTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// KindOf extracts the failure kind of err, defaulting to FailureTransport
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FailureTransport
}
