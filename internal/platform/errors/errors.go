// Package errors provides error types and utilities for subburst.
// It extends the standard errors package with the sentinels the enumeration
// pipeline classifies failures by.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates a DNS query or HTTP probe exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailed indicates a nameserver or web server could not be reached
	ErrConnectionFailed = errors.New("connection failed")

	// ErrNoAnswer indicates a DNS query completed without usable records
	ErrNoAnswer = errors.New("no answer")

	// ErrDictionaryUnavailable indicates the dictionary source could not be read
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")

	// ErrWildcardDetected indicates the target resolves every label
	ErrWildcardDetected = errors.New("wildcard dns detected")

	// ErrNoWorkers indicates every worker failed to build its clients
	ErrNoWorkers = errors.New("no worker started")

	// ErrInterrupted indicates the run was stopped by a signal before completion
	ErrInterrupted = errors.New("interrupted")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := sink.Write(res); err != nil {
//	    return errors.Wrap(err, "failed to persist result")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsConnectionFailed reports whether the error is a connection failed error
func IsConnectionFailed(err error) bool {
	return Is(err, ErrConnectionFailed)
}

// IsNoAnswer reports whether the error means the name simply does not exist
func IsNoAnswer(err error) bool {
	return Is(err, ErrNoAnswer)
}

// IsFatal reports whether the error must terminate the process.
// Everything else is absorbed by the stage that produced it.
func IsFatal(err error) bool {
	return Is(err, ErrDictionaryUnavailable) || Is(err, ErrWildcardDetected)
}
