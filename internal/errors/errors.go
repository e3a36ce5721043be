// Package errors defines the typed errors surfaced by the gix boundary
// layer. The engine itself (parsing, analysis, categorization,
// optimization) is total and never returns errors; everything here comes
// from pattern validation, configuration loading, or file I/O.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorType classifies an error for reporting and exit-code decisions.
type ErrorType string

const (
	ErrorTypeFileNotFound   ErrorType = "file_not_found"
	ErrorTypePermission     ErrorType = "permission"
	ErrorTypeIO             ErrorType = "io"
	ErrorTypeInvalidPattern ErrorType = "invalid_pattern"
	ErrorTypeParse          ErrorType = "parse"
	ErrorTypeConfig         ErrorType = "config"
)

// FileError represents a failed file operation. The Type distinguishes
// missing files from permission problems from generic I/O failures.
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
}

// NewFileError wraps an I/O failure, classifying not-found and
// permission errors from the underlying cause.
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		errorType = ErrorTypeFileNotFound
	case errors.Is(err, fs.ErrPermission):
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
	}
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// PatternError reports a pattern rejected by validation.
type PatternError struct {
	Type    ErrorType
	Pattern string
	Reason  string
}

// NewPatternError creates a pattern validation error.
func NewPatternError(pattern, reason string) *PatternError {
	return &PatternError{
		Type:    ErrorTypeInvalidPattern,
		Pattern: pattern,
		Reason:  reason,
	}
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

// ParseError is reserved for future structural parse failures. The line
// parser is currently total over text input, so nothing constructs this
// in practice, but the boundary layer handles it uniformly.
type ParseError struct {
	Type       ErrorType
	Line       int
	Underlying error
}

// NewParseError creates a parse error at a 1-based line number.
func NewParseError(line int, err error) *ParseError {
	return &ParseError{
		Type:       ErrorTypeParse,
		Line:       line,
		Underlying: err,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration problem.
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
}

// NewConfigError creates a config error for a field and offending value.
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError collects several errors from a batch operation.
type MultiError struct {
	Errors []error
}

// NewMultiError creates a multi-error, dropping nil entries. Returns nil
// when nothing remains.
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface.
func (e *MultiError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all collected errors.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
