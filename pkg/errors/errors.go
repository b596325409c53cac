// Package errors defines the coded errors used across the card generator.
//
// Startup failures (bad config, unreadable input table) and per-item
// rendering failures share one type so callers can branch on the code:
//
//	if errors.Is(err, errors.ErrCodeMissingResource) {
//	    // template image or font file is absent
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error kind.
type Code string

const (
	ErrCodeInvalidConfig         Code = "INVALID_CONFIG"
	ErrCodeInvalidInput          Code = "INVALID_INPUT"
	ErrCodeMissingTemplateConfig Code = "MISSING_TEMPLATE_CONFIG"
	ErrCodeMissingResource       Code = "MISSING_RESOURCE"
	ErrCodeRenderFailed          Code = "RENDER_FAILED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
