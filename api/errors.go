// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-rb library.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the library. ErrBufferFull and
// ErrBufferEmpty are transient control signals, not failures: callers
// handle them by retrying, backing off, or dropping data.
var (
	ErrInvalidCapacity = errors.New("ring access: capacity must be at least 1")
	ErrBufferFull      = errors.New("ring access: buffer full")
	ErrBufferEmpty     = errors.New("ring access: buffer empty")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeBufferFull
	ErrCodeBufferEmpty
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the wrapped sentinel so errors.Is matching works
// through the structured layer.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError attaches a code to one of the sentinel errors. Callers keep
// matching with errors.Is while diagnostics read the code and context.
func WrapError(code ErrorCode, cause error) *Error {
	return &Error{
		Code:    code,
		Message: cause.Error(),
		Context: make(map[string]any),
		cause:   cause,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
