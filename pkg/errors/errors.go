// Package errors provides coded errors for stackchart.
//
// The chart core degrades numerically instead of failing (empty domains,
// zero-width axes and over-allocated layouts all render as empty geometry),
// so errors only surface at the edges: parsing anchors and edges, reading
// chart descriptions and data files, and writing output.
//
// Codes are grouped by prefix: INVALID_* for rejected input, *_NOT_FOUND
// for missing resources, and INTERNAL_ERROR / UNSUPPORTED for the rest.
//
//	err := errors.New(errors.ErrCodeInvalidAnchor, "unknown anchor: `%s`", s)
//	err = errors.Context(err, "edge %d", 2) // still INVALID_ANCHOR
//	if errors.Is(err, errors.ErrCodeInvalidAnchor) {
//	    // ...
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidAnchor Code = "INVALID_ANCHOR"
	ErrCodeInvalidEdge   Code = "INVALID_EDGE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidData   Code = "INVALID_DATA"
	ErrCodeInvalidColour Code = "INVALID_COLOUR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeColumnNotFound Code = "COLUMN_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a code, a message for people and an optional cause.
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

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Context wraps err with a location or step, keeping its code. Errors
// without a code become INTERNAL_ERROR. A nil err stays nil.
func Context(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	code := GetCode(err)
	if code == "" {
		code = ErrCodeInternal
	}
	return Wrap(code, err, format, args...)
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err without codes: the messages of every *Error in
// the chain joined by ": ", followed by the first plain cause.
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		if e.Message != "" {
			parts = append(parts, e.Message)
		}
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}
