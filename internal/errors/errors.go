package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrContainer = "CONTAINER"
	ErrPercent   = "PERCENT"
	ErrConfig    = "CONFIG"
	ErrRender    = "RENDER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewMissingContainer is returned when a widget is built without a usable <div>.
func NewMissingContainer() *Error {
	return &Error{
		Code:       ErrContainer,
		Message:    "No container element supplied for the loading line",
		Suggestion: "Pass a <div> element node (or a selection whose first element is a <div>)",
	}
}

// NewInvalidPercent is returned when op receives a value that is not a number.
func NewInvalidPercent(op string, value any) *Error {
	return &Error{
		Code:       ErrPercent,
		Message:    fmt.Sprintf("%s expects a number parameter (a value from 0 to 100), got %v", op, value),
		Suggestion: "Pass a finite number; values are truncated and clamped to -100..100",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Why it failed
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// How to fix
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var llErr *Error
	if errors.As(err, &llErr) {
		return llErr.Code == code
	}
	return false
}
