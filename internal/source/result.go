package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means no backend was configured for this deployment.
	ErrNotConfigured = errors.New("backend not configured")
	// ErrRequestFailed wraps transport, auth, timeout and decoding failures.
	ErrRequestFailed = errors.New("backend request failed")
	// ErrUnknownCollection rejects a read of a collection no adapter knows.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrInvalidQuery rejects a query the adapters cannot translate.
	ErrInvalidQuery = errors.New("invalid query")
)

// Status tells the resolver how a read ended.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one backend read. Err is set only when Status is
// StatusUnavailable and always matches ErrNotConfigured or ErrRequestFailed.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

func OK[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Value: v}
}

func NotFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

// Unavailable classifies err. Anything that is not already ErrNotConfigured
// or ErrRequestFailed is wrapped as ErrRequestFailed.
func Unavailable[T any](err error) Result[T] {
	switch {
	case err == nil:
		err = ErrRequestFailed
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrRequestFailed):
	default:
		err = fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return Result[T]{Status: StatusUnavailable, Err: err}
}

func (r Result[T]) Ok() bool {
	return r.Status == StatusOK
}

// NotConfigured reports whether the read failed because no backend exists.
func (r Result[T]) NotConfigured() bool {
	return r.Status == StatusUnavailable && errors.Is(r.Err, ErrNotConfigured)
}

// Map converts the value of a successful result, keeping other states as is.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.Status != StatusOK {
		return Result[U]{Status: r.Status, Err: r.Err}
	}
	return OK(fn(r.Value))
}
