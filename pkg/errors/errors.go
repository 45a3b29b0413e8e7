package errors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
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

// NewDecodeError constructs a ParseError for a decoder failure, taking the
// line number from the decoder message when it carries one.
func NewDecodeError(path string, err error) error {
	return NewParseError(path, extractLine(err), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
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

// ValidationError captures configuration and input validation issues.
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

// UnknownCheckError reports a check name that is not part of the rule set.
type UnknownCheckError struct {
	Name  string
	Known []string
}

// NewUnknownCheckError constructs an UnknownCheckError wrapped in a ValidationError
// for the given config field.
func NewUnknownCheckError(field, name string, known []string) error {
	inner := &UnknownCheckError{Name: name, Known: append([]string(nil), known...)}
	return &ValidationError{Field: field, Message: inner.Error(), Err: inner}
}

func (e *UnknownCheckError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown check %q", e.Name)
	}
	return fmt.Sprintf("unknown check %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// InvalidValueError reports a value outside a closed set of allowed values.
type InvalidValueError struct {
	Kind    string
	Value   string
	Allowed []string
}

// NewInvalidValueError constructs an InvalidValueError wrapped in a ValidationError
// for the given config field.
func NewInvalidValueError(field, kind, value string, allowed []string) error {
	inner := &InvalidValueError{Kind: kind, Value: value, Allowed: append([]string(nil), allowed...)}
	return &ValidationError{Field: field, Message: inner.Error(), Err: inner}
}

func (e *InvalidValueError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s value %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("invalid %s value %q (allowed: %s)", e.Kind, e.Value, strings.Join(e.Allowed, ", "))
}
