package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validEntry() RunLogEntry {
	return RunLogEntry{
		RunID:     "run-123",
		Start:     "2024-01-01",
		End:       "2024-12-31",
		Calendars: []string{"US", "ECB"},
		Format:    "parquet",
		Location:  "datedimension.parquet",
		Rows:      366,
		Duration:  125 * time.Millisecond,
		Outcome:   "success",
	}
}

// TestRunLogEntry_Validate verifies the required-field checks.
func TestRunLogEntry_Validate(t *testing.T) {
	entry := validEntry()
	if err := entry.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := validEntry()
	missing.RunID = ""
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing run id")
	}

	negative := validEntry()
	negative.Rows = -1
	if err := negative.Validate(); err == nil {
		t.Error("expected error for negative rows")
	}

	negative = validEntry()
	negative.Duration = -time.Second
	if err := negative.Validate(); err == nil {
		t.Error("expected error for negative duration")
	}
}

// TestJSONLogger_LogRun verifies the emitted JSON line.
func TestJSONLogger_LogRun(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf)

	if err := logger.LogRun(context.Background(), validEntry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("expected newline-terminated log line")
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}

	if out["run_id"] != "run-123" {
		t.Errorf("expected run_id run-123, got %v", out["run_id"])
	}
	if out["level"] != "info" {
		t.Errorf("expected level info, got %v", out["level"])
	}
	if out["rows"] != float64(366) {
		t.Errorf("expected rows 366, got %v", out["rows"])
	}
	if out["duration_ms"] != float64(125) {
		t.Errorf("expected duration_ms 125, got %v", out["duration_ms"])
	}
	if out["outcome"] != "success" {
		t.Errorf("expected outcome success, got %v", out["outcome"])
	}
	if _, ok := out["error"]; ok {
		t.Error("expected error field omitted on success")
	}
}

// TestJSONLogger_ErrorLevel verifies failed runs log at error level.
func TestJSONLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf)

	entry := validEntry()
	entry.Outcome = "error"
	entry.Error = "sink: disk full"
	if err := logger.LogRun(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if out["level"] != "error" {
		t.Errorf("expected level error, got %v", out["level"])
	}
	if out["error"] != "sink: disk full" {
		t.Errorf("expected error message, got %v", out["error"])
	}
}

// TestJSONLogger_EmptyCalendars verifies calendars marshals as [] not null.
func TestJSONLogger_EmptyCalendars(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf)

	entry := validEntry()
	entry.Calendars = nil
	if err := logger.LogRun(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), `"calendars":null`) {
		t.Error("expected calendars to marshal as an empty array")
	}
}

// TestJSONLogger_RejectsInvalidEntry verifies validation is enforced.
func TestJSONLogger_RejectsInvalidEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf)

	entry := validEntry()
	entry.RunID = ""
	if err := logger.LogRun(context.Background(), entry); err == nil {
		t.Fatal("expected error for invalid entry")
	}
	if buf.Len() != 0 {
		t.Error("expected nothing written for invalid entry")
	}
}

// TestJSONLogger_CancelledContext verifies the logger respects context.
func TestJSONLogger_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := logger.LogRun(ctx, validEntry()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

// TestNoopLogger verifies the no-op logger always succeeds.
func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	if err := logger.LogRun(context.Background(), RunLogEntry{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
