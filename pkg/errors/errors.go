// Package errors provides structured error types for the jvocab module.
//
// This package defines error codes and types that enable:
//   - Distinguishing a missing file from an unreadable or malformed one
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages for the CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: File, category, or entry not found
//   - *_ERROR: Reading, parsing, or writing a vocabulary file failed
//
// Per-entry problems found while decoding a file are not errors. They are
// reported as warnings by the codec and the offending element is skipped.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "category name cannot be empty")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeWrite, origErr, "save %s", path)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidCategory Code = "INVALID_CATEGORY"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Document I/O errors
	ErrCodeRead  Code = "READ_ERROR"
	ErrCodeParse Code = "PARSE_ERROR"
	ErrCodeWrite Code = "WRITE_ERROR"

	// Document state errors
	ErrCodeUnsaved Code = "UNSAVED_CHANGES"

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
// For *Error types, returns the message without the code prefix, followed by
// the reason carried by its cause. Path errors contribute only their reason
// since the message already names the file.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + reason(e.Cause)
}

func reason(err error) string {
	var (
		coded *Error
		pe    *fs.PathError
		le    *os.LinkError
	)
	switch {
	case errors.As(err, &coded):
		return UserMessage(coded)
	case errors.As(err, &pe):
		return pe.Err.Error()
	case errors.As(err, &le):
		return le.Err.Error()
	}
	return err.Error()
}

// IsNotFound reports whether err means the vocabulary file is missing or
// cannot be opened for reading.
func IsNotFound(err error) bool {
	return Is(err, ErrCodeFileNotFound)
}

// IsParse reports whether err means the file content is not a JSON object.
func IsParse(err error) bool {
	return Is(err, ErrCodeParse)
}

// IsWrite reports whether err means the destination could not be written.
func IsWrite(err error) bool {
	return Is(err, ErrCodeWrite)
}
