package sink

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
)

// TestSQLiteSink_Write verifies the database output by querying it back.
func TestSQLiteSink_Write(t *testing.T) {
	table := testTable(t)
	path := filepath.Join(t.TempDir(), "out.db")

	s := &SQLiteSink{Path: path}
	location, err := s.Write(context.Background(), table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location != path {
		t.Fatalf("expected location %s, got %s", path, location)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int64
	if err := db.QueryRow(fmt.Sprintf("SELECT count(*) FROM %s", TableName)).Scan(&count); err != nil {
		t.Fatalf("failed to query table: %v", err)
	}
	if count != int64(table.RowCount()) {
		t.Fatalf("expected %d rows, got %d", table.RowCount(), count)
	}

	var dateRaw, dayOfWeek string
	var weekday int64
	row := db.QueryRow(fmt.Sprintf(
		"SELECT date_raw, dayofweek, weekday FROM %s WHERE datekey = 20240601", TableName))
	if err := row.Scan(&dateRaw, &dayOfWeek, &weekday); err != nil {
		t.Fatalf("failed to query row: %v", err)
	}
	if dateRaw != "2024-06-01" {
		t.Errorf("expected date_raw 2024-06-01, got %q", dateRaw)
	}
	if dayOfWeek != "Saturday" {
		t.Errorf("expected dayofweek Saturday, got %q", dayOfWeek)
	}
	if weekday != 0 {
		t.Errorf("expected weekday stored as 0, got %d", weekday)
	}
}

// TestSQLiteSink_Overwrite verifies a second run replaces the database.
func TestSQLiteSink_Overwrite(t *testing.T) {
	table := testTable(t)
	path := filepath.Join(t.TempDir(), "out.db")

	s := &SQLiteSink{Path: path}
	if _, err := s.Write(context.Background(), table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second write must not fail on the existing table.
	if _, err := s.Write(context.Background(), table); err != nil {
		t.Fatalf("unexpected error on overwrite: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int64
	if err := db.QueryRow(fmt.Sprintf("SELECT count(*) FROM %s", TableName)).Scan(&count); err != nil {
		t.Fatalf("failed to query table: %v", err)
	}
	if count != int64(table.RowCount()) {
		t.Fatalf("expected %d rows after overwrite, got %d", table.RowCount(), count)
	}
}
