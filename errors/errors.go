// Package errors provides error handling for huntr.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Structured details attached to errors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownPhase) {
//	    // handle configuration error
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllDetails = crdb.GetAllDetails
)

// Assertions: invariant violations that must surface loudly.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors for the orchestration core.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownPhase indicates a phase name outside the fixed phase set.
	// This is a configuration error: fail fast, never retried.
	ErrUnknownPhase = New("unknown phase")

	// ErrUnknownEvent indicates no handler is registered under that name.
	ErrUnknownEvent = New("unknown event")

	// ErrFolderExists indicates a job folder with that name already exists.
	// Creation is idempotent: the second attempt fails without mutating anything.
	ErrFolderExists = New("job folder already exists")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")
)

// IsConfigError reports whether err is one of the fail-fast configuration
// errors that must never enter the retry path.
func IsConfigError(err error) bool {
	return err != nil && IsAny(err, ErrUnknownPhase, ErrUnknownEvent)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}
