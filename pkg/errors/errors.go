// Package errors provides structured error types for the wordnet module.
//
// Every failure raised by the graph, the common-ancestor engine and the
// lexicon carries a machine-readable [Code] so that callers (the CLI, the HTTP
// API, tests) can branch on the kind of failure without string matching.
//
// # Error Codes
//
//   - NULL_INPUT: a required argument is absent (empty string, nil slice)
//   - OUT_OF_RANGE: a vertex index falls outside [0, V)
//   - EMPTY_INPUT: a required vertex or noun set is empty
//   - NOT_A_NOUN: a noun argument is not present in the lexicon
//   - INVALID_*: malformed input records, flags or configuration
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfRange, "vertex %d not in [0, %d)", v, n)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // Handle bad vertex
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Argument errors
	ErrCodeNullInput  Code = "NULL_INPUT"
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"
	ErrCodeEmptyInput Code = "EMPTY_INPUT"
	ErrCodeNotANoun   Code = "NOT_A_NOUN"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// The outermost *Error wins, so a wrapped OUT_OF_RANGE inside an
// INVALID_FORMAT reports INVALID_FORMAT.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
