// Package errors provides structured error handling for the benchmark wrapper
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeInternal represents internal framework errors
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeParse represents raw-input parsing errors
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeDuplicateArgument represents a dest collision between config arguments
	ErrorTypeDuplicateArgument ErrorType = "duplicate_argument"
	// ErrorTypeDuplicateRegistration represents a tool name collision in the registry
	ErrorTypeDuplicateRegistration ErrorType = "duplicate_registration"
	// ErrorTypeUnknownPlugin represents a lookup of an unregistered tool name
	ErrorTypeUnknownPlugin ErrorType = "unknown_plugin"
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// NewDuplicateArgument creates the error raised when two config arguments
// declare the same dest within one plugin's argument set.
func NewDuplicateArgument(plugin, dest string) *Error {
	return New(ErrorTypeDuplicateArgument,
		fmt.Sprintf("argument dest %q already registered for plugin %q", dest, plugin))
}

// NewDuplicateRegistration creates the error raised when two plugins declare
// the same tool name.
func NewDuplicateRegistration(name string) *Error {
	return New(ErrorTypeDuplicateRegistration,
		fmt.Sprintf("benchmark %q already registered", name))
}

// NewUnknownPlugin creates the error raised when a tool name is not present
// in the registry.
func NewUnknownPlugin(name string) *Error {
	return New(ErrorTypeUnknownPlugin, fmt.Sprintf("benchmark %q is not registered", name))
}

// NewParse creates the error raised when a value transform rejects raw input.
func NewParse(message string) *Error {
	return New(ErrorTypeParse, message)
}

// IsType checks if the error is of the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// IsDuplicateArgument reports whether err is a dest collision error
func IsDuplicateArgument(err error) bool {
	return IsType(err, ErrorTypeDuplicateArgument)
}

// IsDuplicateRegistration reports whether err is a tool name collision error
func IsDuplicateRegistration(err error) bool {
	return IsType(err, ErrorTypeDuplicateRegistration)
}

// IsUnknownPlugin reports whether err is an unregistered tool name error
func IsUnknownPlugin(err error) bool {
	return IsType(err, ErrorTypeUnknownPlugin)
}

// IsParse reports whether err is a raw-input parsing error
func IsParse(err error) bool {
	return IsType(err, ErrorTypeParse)
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
