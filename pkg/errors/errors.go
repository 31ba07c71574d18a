package errors

import (
	"errors"
	"fmt"
)

// ErrPresetNotFound is returned when a text preset key has no registered fragment.
var ErrPresetNotFound = errors.New("text preset not registered")

// ParseError represents a theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme or props validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PresetError reports a failed text preset lookup for a composed key such as "h2".
type PresetError struct {
	Key string
	Err error
}

// NewPresetError constructs a PresetError. A nil err defaults to ErrPresetNotFound.
func NewPresetError(key string, err error) error {
	if err == nil {
		err = ErrPresetNotFound
	}
	return &PresetError{Key: key, Err: err}
}

func (e *PresetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("preset error [%s]: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("preset error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *PresetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
