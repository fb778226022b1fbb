package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryStory    Category = "story"
	CategoryRegistry Category = "registry"
	CategorySession  Category = "session"
	CategoryCLI      Category = "cli"
)

// Location is a position in a source file.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ElementsError is a structured error with a code, location and suggestion.
type ElementsError struct {
	// Code is a unique error identifier (e.g., "E120").
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation specific to this occurrence.
	Detail string

	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ElementsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ElementsError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location to the error.
func (e *ElementsError) WithLocation(file string, line, column int) *ElementsError {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ElementsError) WithSuggestion(s string) *ElementsError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ElementsError) WithDetail(d string) *ElementsError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *ElementsError) Wrap(err error) *ElementsError {
	e.Wrapped = err
	if e.Detail == "" && err != nil {
		e.Detail = err.Error()
	}
	return e
}

// New creates an ElementsError from a registered error code.
func New(code string) *ElementsError {
	template, ok := registry[code]
	if !ok {
		return &ElementsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ElementsError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *ElementsError {
	return &ElementsError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error under code. An ElementsError is returned
// unchanged.
func FromError(err error, code string) *ElementsError {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*ElementsError); ok {
		return ee
	}
	return New(code).Wrap(err)
}
