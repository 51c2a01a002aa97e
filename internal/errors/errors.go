package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error types for the package resolver
type ErrorType string

const (
	// Query errors
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeNotFound ErrorType = "not_found"

	// Resource errors
	ErrorTypeResource     ErrorType = "resource"
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypePermission   ErrorType = "permission"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// ErrCancelled is returned by presenters when the user dismisses a
// disambiguation list. It is a terminal outcome, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// InputError reports an unusable search word
type InputError struct {
	Type      ErrorType
	Input     string
	Message   string
	Timestamp time.Time
}

// NewInputError creates a new input error
func NewInputError(input, message string) *InputError {
	return &InputError{
		Type:      ErrorTypeInput,
		Input:     input,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *InputError) Error() string {
	return e.Message
}

// NotFoundError reports a query that produced no candidates
type NotFoundError struct {
	Type        ErrorType
	Word        string
	Suggestions []string
	Timestamp   time.Time
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(word string, suggestions []string) *NotFoundError {
	return &NotFoundError{
		Type:        ErrorTypeNotFound,
		Word:        word,
		Suggestions: suggestions,
		Timestamp:   time.Now(),
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("class %q not found (did you mean %s?)", e.Word, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("class %q not found", e.Word)
}

// ResourceError reports a required resource that is missing or unreadable,
// which indicates a broken installation rather than an empty result.
type ResourceError struct {
	Type       ErrorType
	Resource   string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewResourceError creates a new resource error
func NewResourceError(resource, path string, err error) *ResourceError {
	return &ResourceError{
		Type:       ErrorTypeResource,
		Resource:   resource,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s unavailable at %s: %v", e.Resource, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ResourceError) Unwrap() error {
	return e.Underlying
}

// FileError represents a file-related error
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeFileNotFound
	if isPermissionError(err) {
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.HasSuffix(errStr, "permission denied") || strings.HasSuffix(errStr, "access denied")
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// ErrOrNil returns nil when no errors were collected
func (e *MultiError) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// IsInputError reports whether err is (or wraps) an InputError
func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

// IsResourceMissing reports whether err is (or wraps) a ResourceError
func IsResourceMissing(err error) bool {
	var target *ResourceError
	return errors.As(err, &target)
}
