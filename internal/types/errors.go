package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for mastermind errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Input error codes (API boundary; the core assumes validated input)
const (
	INPUT_INVALID       ErrorCode = "INPUT_INVALID"
	INPUT_PARSE_FAILED  ErrorCode = "INPUT_PARSE_FAILED"
	INPUT_MISSING_FIELD ErrorCode = "INPUT_MISSING_FIELD"
)

// Planning error codes
const (
	PLAN_FAILED         ErrorCode = "PLAN_FAILED"
	PLAN_INVALID_WEEK   ErrorCode = "PLAN_INVALID_WEEK"
	PLAN_RULES_VIOLATED ErrorCode = "PLAN_RULES_VIOLATED"
)

// Content-generation error codes
const (
	GEN_PROVIDER_INIT_FAILED ErrorCode = "GEN_PROVIDER_INIT_FAILED"
	GEN_PROVIDER_NOT_FOUND   ErrorCode = "GEN_PROVIDER_NOT_FOUND"
	GEN_UNAUTHORIZED         ErrorCode = "GEN_UNAUTHORIZED"
	GEN_RATE_LIMITED         ErrorCode = "GEN_RATE_LIMITED"
	GEN_NETWORK_FAILED       ErrorCode = "GEN_NETWORK_FAILED"
	GEN_COMPLETION_FAILED    ErrorCode = "GEN_COMPLETION_FAILED"
	GEN_INVALID_RESULT       ErrorCode = "GEN_INVALID_RESULT"
	GEN_CANCELED             ErrorCode = "GEN_CANCELED"
)

// Error represents a structured error with error code, message, and optional cause.
// It supports error wrapping and retryability hints. The planner itself never
// retries (a generation failure aborts the run); the hint is for callers.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by error code so callers can compare against sentinel codes.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// NewError creates a new non-retryable Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new non-retryable Error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an Error wrapping a cause.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithRetryable marks the error as retryable and returns it.
func (e *Error) WithRetryable() *Error {
	e.Retryable = true
	return e
}

// CodeOf extracts the error code from err, or empty if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsRetryable reports whether err is transient and may succeed on retry.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Retryable {
		return true
	}
	switch e.Code {
	case GEN_RATE_LIMITED, GEN_NETWORK_FAILED:
		return true
	default:
		return false
	}
}
