package domain

import (
	"errors"
	"fmt"
)

// Reply prefixes. The first word of an error reply tells clients which class
// of error they got.
const (
	PrefixErr       = "ERR"
	PrefixWrongType = "WRONGTYPE"
)

// DomainError is a recoverable command or data error. It is reported to the
// client as a simple error reply and never closes the connection.
type DomainError struct {
	Code    string // Stable identifier (e.g., "MU-DATA-4090"), used in logs and metrics
	Prefix  string // Reply prefix (PrefixErr or PrefixWrongType)
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error returns the text sent to clients: "<prefix> <message>[: <details>]".
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s %s: %s", e.Prefix, e.Message, e.Details)
	}
	return e.Prefix + " " + e.Message
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError.
func NewDomainError(code, prefix, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Prefix:  prefix,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Data Errors (DATA)
// ============================================================================

var (
	// ErrWrongType indicates the key holds a value of another type.
	ErrWrongType = NewDomainError("MU-DATA-4090", PrefixWrongType, "Operation against a key holding the wrong kind of value")
)

// ============================================================================
// Command Errors (CMD)
// ============================================================================

var (
	// ErrEmptyCommand indicates a frame without a command name.
	ErrEmptyCommand = NewDomainError("MU-CMD-4000", PrefixErr, "empty command")

	// ErrWrongArity indicates a command got too few or too many arguments.
	ErrWrongArity = NewDomainError("MU-CMD-4001", PrefixErr, "wrong number of arguments")

	// ErrInvalidArgument indicates an argument of the wrong kind.
	ErrInvalidArgument = NewDomainError("MU-CMD-4002", PrefixErr, "invalid argument")

	// ErrNotInteger indicates an argument that must be an integer is not one.
	ErrNotInteger = NewDomainError("MU-CMD-4003", PrefixErr, "value is not an integer or out of range")

	// ErrUnknownCommand indicates the command name is not recognized.
	ErrUnknownCommand = NewDomainError("MU-CMD-4040", PrefixErr, "unknown command")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrRateLimited indicates the client exceeded its command rate.
	ErrRateLimited = NewDomainError("MU-SYS-4290", PrefixErr, "rate limit exceeded")
)
