// Package errors provides structured error types for exhibitboard.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the board editor and the preview server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// Board stores never return errors for rejected placements; a rejected intent
// is reported through the returned change or outcome instead. The codes below
// are used at the edges: decoding documents, validating exhibit data, loading
// configuration, rendering and cache I/O. [ErrCodePlacementRejected] and
// [ErrCodeUnknownItem] exist so that an outcome can carry a reason.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKind, "unknown exhibit kind: %s", kind)
//	if errors.Is(err, errors.ErrCodeInvalidKind) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidKind     Code = "INVALID_KIND"
	ErrCodeInvalidLayout   Code = "INVALID_LAYOUT"
	ErrCodeInvalidRegion   Code = "INVALID_REGION"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Placement errors
	ErrCodePlacementRejected Code = "PLACEMENT_REJECTED"
	ErrCodeUnknownItem       Code = "UNKNOWN_ITEM"
	ErrCodeOverlap           Code = "OVERLAP"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
