// Package errors provides explicit, human-readable error types for datedim.
// All errors must include a Reason and Suggestion for actionable feedback.
package errors

import (
	"fmt"
	"strings"
)

// DatedimError is the base error type for all datedim errors.
// Every error must provide a human-readable reason and suggestion.
type DatedimError struct {
	Code       ErrorCode
	Message    string
	Reason     string
	Suggestion string
	Cause      error
}

// ErrorCode represents the category of error for exit code mapping.
type ErrorCode int

const (
	CodeValidation ErrorCode = 1
	CodeSink       ErrorCode = 3
	CodeInternal   ErrorCode = 4
)

func (e *DatedimError) Error() string {
	msg := e.Message
	if e.Reason != "" {
		msg = fmt.Sprintf("%s\nReason: %s", msg, e.Reason)
	}
	if e.Suggestion != "" {
		msg = fmt.Sprintf("%s\nSuggestion: %s", msg, e.Suggestion)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s\nCaused by: %v", msg, e.Cause)
	}
	return msg
}

func (e *DatedimError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error category.
func (e *DatedimError) ExitCode() int {
	return int(e.Code)
}

// ErrInvalidDateRange is returned when the requested date range is unusable.
type ErrInvalidDateRange struct {
	DatedimError
	Start string
	End   string
}

// NewInvalidDateRange creates a new ErrInvalidDateRange.
func NewInvalidDateRange(start, end, reason string) *ErrInvalidDateRange {
	return &ErrInvalidDateRange{
		DatedimError: DatedimError{
			Code:       CodeValidation,
			Message:    "invalid date range",
			Reason:     reason,
			Suggestion: "provide both --start and --end as YYYY-MM-DD with start on or before end",
		},
		Start: start,
		End:   end,
	}
}

// ErrUnknownCalendar is returned when a holiday calendar code is not recognized.
type ErrUnknownCalendar struct {
	DatedimError
	Kind string
	Code string
}

// NewUnknownCalendar creates a new ErrUnknownCalendar.
// kind is either "country" or "financial".
func NewUnknownCalendar(kind, code string, known []string) *ErrUnknownCalendar {
	return &ErrUnknownCalendar{
		DatedimError: DatedimError{
			Code:       CodeValidation,
			Message:    fmt.Sprintf("unknown %s holiday calendar: %s", kind, code),
			Reason:     fmt.Sprintf("supported %s codes: %s", kind, strings.Join(known, ", ")),
			Suggestion: "list supported codes with 'datedim calendars'",
		},
		Kind: kind,
		Code: code,
	}
}

// ErrInvalidCalendarFile is returned when a custom calendar file cannot be used.
type ErrInvalidCalendarFile struct {
	DatedimError
	Path string
}

// NewInvalidCalendarFile creates a new ErrInvalidCalendarFile.
func NewInvalidCalendarFile(path string, cause error) *ErrInvalidCalendarFile {
	return &ErrInvalidCalendarFile{
		DatedimError: DatedimError{
			Code:       CodeValidation,
			Message:    fmt.Sprintf("invalid calendar file: %s", path),
			Reason:     "file must be YAML with a name and a list of holidays",
			Suggestion: "see 'datedim generate --help' for the calendar file format",
			Cause:      cause,
		},
		Path: path,
	}
}

// ErrUnsupportedFormat is returned when the output format is not recognized.
type ErrUnsupportedFormat struct {
	DatedimError
	Format string
}

// NewUnsupportedFormat creates a new ErrUnsupportedFormat.
func NewUnsupportedFormat(format string, known []string) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{
		DatedimError: DatedimError{
			Code:       CodeValidation,
			Message:    fmt.Sprintf("unsupported output format: %s", format),
			Reason:     fmt.Sprintf("supported formats: %s", strings.Join(known, ", ")),
			Suggestion: "pass one of the supported formats with --format",
		},
		Format: format,
	}
}

// ErrSinkFailed is returned when writing the generated table fails.
type ErrSinkFailed struct {
	DatedimError
	Format   string
	Location string
}

// NewSinkFailed creates a new ErrSinkFailed.
func NewSinkFailed(format, location string, cause error) *ErrSinkFailed {
	return &ErrSinkFailed{
		DatedimError: DatedimError{
			Code:       CodeSink,
			Message:    fmt.Sprintf("failed to write %s output", format),
			Reason:     fmt.Sprintf("sink target: %s", location),
			Suggestion: "check that the output location exists and is writable",
			Cause:      cause,
		},
		Format:   format,
		Location: location,
	}
}
