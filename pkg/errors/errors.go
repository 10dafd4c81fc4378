// Package errors provides the error types used across the configuration
// synthesizer. Only failures against source collaborators (missing files,
// unreachable store) are allowed to terminate an invocation; data-shape and
// address-parsing problems are represented as values, never as errors.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
var As = errors.As

// Sentinel errors for the synthesizer.
var (
	// ErrNotFound indicates that a requested table or record was not found.
	ErrNotFound = errors.New("not found")

	// ErrSourceUnavailable indicates that a configured source document
	// could not be produced (missing file, unparseable content).
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrStoreUnavailable indicates that the live configuration store
	// could not be reached or answered with a protocol failure.
	ErrStoreUnavailable = errors.New("config store unavailable")

	// ErrUnknownSource indicates a source name outside the declared
	// precedence order.
	ErrUnknownSource = errors.New("unknown source")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// IOError represents a failure reading or writing a file.
type IOError struct {
	Operation string // "read", "write", "open"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *IOError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ParseError represents unparseable source-document content.
type ParseError struct {
	Format string // "yaml", "json"
	Path   string // file path, or "" for inline input
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// StoreError represents a failure against the live configuration store.
type StoreError struct {
	Operation string // "connect", "load", "save"
	Key       string // store key involved, if any
	Err       error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config store %s %s: %v", e.Operation, e.Key, e.Err)
	}
	return fmt.Sprintf("config store %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// SourceError attaches a source name to an underlying failure.
type SourceError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Helper wrapping functions for common patterns. Each returns nil when
// given a nil error.

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Path: path, Err: err}
}

// WrapStore wraps an error as a StoreError.
func WrapStore(operation, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Operation: operation, Key: key, Err: err}
}

// WrapSource wraps an error as a SourceError.
func WrapSource(source string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Err: err}
}
