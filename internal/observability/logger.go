// Package observability provides structured logging for datedim runs.
//
// Every generation run emits: run id, date range, calendars used, output
// format, row count, duration, and error (if any).
package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// RunLogEntry contains all required fields for run logging.
type RunLogEntry struct {
	// RunID is the unique identifier for this generation run.
	RunID string

	// Start and End are the requested date range bounds.
	Start string
	End   string

	// Calendars are the holiday calendar codes registered for the run.
	// May be empty when no holiday flags were requested.
	Calendars []string

	// Format is the selected output format.
	Format string

	// Location is where the table was written.
	Location string

	// Rows is the number of rows generated.
	Rows int

	// Duration is how long the run took. Must be non-negative.
	Duration time.Duration

	// Outcome is the result status: "success" or "error".
	Outcome string

	// Error contains the error message if the run failed.
	Error string
}

// Validate checks that all required fields are present.
func (e *RunLogEntry) Validate() error {
	if e.RunID == "" {
		return fmt.Errorf("observability: run_id is required")
	}
	if e.Rows < 0 {
		return fmt.Errorf("observability: rows cannot be negative")
	}
	if e.Duration < 0 {
		return fmt.Errorf("observability: duration cannot be negative")
	}
	return nil
}

// RunLogger is the interface for run logging.
type RunLogger interface {
	// LogRun logs a generation run event.
	// Returns an error if logging fails or the entry is invalid.
	LogRun(ctx context.Context, entry RunLogEntry) error
}

// jsonLogOutput is the structured format for JSON logs.
type jsonLogOutput struct {
	Timestamp  string   `json:"timestamp"`
	Level      string   `json:"level"`
	RunID      string   `json:"run_id"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Calendars  []string `json:"calendars"`
	Format     string   `json:"format"`
	Location   string   `json:"location,omitempty"`
	Rows       int      `json:"rows"`
	DurationMs int64    `json:"duration_ms"`
	Outcome    string   `json:"outcome,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// JSONLogger implements RunLogger with JSON output.
type JSONLogger struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONLogger creates a new JSON logger writing to the given writer.
func NewJSONLogger(w io.Writer) *JSONLogger {
	return &JSONLogger{writer: w}
}

// LogRun logs a generation run event as JSON.
func (l *JSONLogger) LogRun(ctx context.Context, entry RunLogEntry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("observability: context error: %w", err)
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	level := "info"
	if entry.Error != "" {
		level = "error"
	}

	output := jsonLogOutput{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Level:      level,
		RunID:      entry.RunID,
		Start:      entry.Start,
		End:        entry.End,
		Calendars:  entry.Calendars,
		Format:     entry.Format,
		Location:   entry.Location,
		Rows:       entry.Rows,
		DurationMs: entry.Duration.Milliseconds(),
		Outcome:    entry.Outcome,
		Error:      entry.Error,
	}

	// Ensure calendars is never nil in JSON
	if output.Calendars == nil {
		output.Calendars = []string{}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("observability: failed to marshal log: %w", err)
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("observability: failed to write log: %w", err)
	}
	return nil
}

// NoopLogger is a logger that discards all logs.
// Useful for testing or when logging is disabled.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// LogRun does nothing and always succeeds.
func (l *NoopLogger) LogRun(ctx context.Context, entry RunLogEntry) error {
	return nil
}
