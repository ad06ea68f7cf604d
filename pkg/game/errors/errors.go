// Package errors provides the coded errors returned while building a game:
// asset loading, map parsing, configuration and lookups.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// AssetLoadFailure reports an asset that could not be loaded
func AssetLoadFailure(path string, cause error) *Error {
	e := &Error{Code: CodeAssetLoad, Message: "cannot load asset " + path, Cause: cause}
	return e.WithMeta("path", path)
}

// MapParseFailure reports a malformed or inconsistent map description
func MapParseFailure(message string) *Error {
	return New(CodeMapParse, message)
}

// MapParseFailuref reports a map problem with a formatted message
func MapParseFailuref(format string, args ...any) *Error {
	return Newf(CodeMapParse, format, args...)
}

// LookupMiss reports an id that resolves to nothing
func LookupMiss(kind string, id any) *Error {
	return Newf(CodeLookupMiss, "%s %v not found", kind, id).WithMeta(kind, id)
}

// InvalidConfig reports a configuration value out of range
func InvalidConfig(field, reason string) *Error {
	return Newf(CodeInvalidConfig, "%s %s", field, reason).WithMeta("field", field)
}
