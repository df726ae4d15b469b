// Package sink serializes a generated dimension table to its output
// target. Sinks are stateless, replaceable, thin: one Write call per run.
package sink

import (
	"context"
	"strings"

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

// Supported output formats.
const (
	FormatCSV      = "csv"
	FormatParquet  = "parquet"
	FormatSQLite   = "sqlite"
	FormatPostgres = "postgres"
)

// TableName is the table created by database-backed sinks.
const TableName = "datedimension"

// Sink writes a dimension table to its target and returns the location
// written (a file path, or a table reference for database sinks).
type Sink interface {
	Write(ctx context.Context, table *dimension.Table) (string, error)
}

// Options configures sink construction.
type Options struct {
	// Path is the output file path. Empty selects the format default
	// (datedimension.csv, datedimension.parquet, datedimension.db).
	Path string

	// PostgresDSN is the connection string for the postgres sink.
	PostgresDSN string

	// PostgresTable overrides the target table for the postgres sink.
	PostgresTable string
}

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatCSV, FormatParquet, FormatSQLite, FormatPostgres}
}

// New creates a sink for the given format. Format matching is
// case-insensitive.
func New(format string, opts Options) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return &CSVSink{Path: pathOrDefault(opts.Path, "datedimension.csv")}, nil
	case FormatParquet:
		return &ParquetSink{Path: pathOrDefault(opts.Path, "datedimension.parquet")}, nil
	case FormatSQLite:
		return &SQLiteSink{Path: pathOrDefault(opts.Path, "datedimension.db")}, nil
	case FormatPostgres:
		table := opts.PostgresTable
		if table == "" {
			table = TableName
		}
		return &PostgresSink{DSN: opts.PostgresDSN, Table: table}, nil
	default:
		return nil, errors.NewUnsupportedFormat(format, Formats())
	}
}

func pathOrDefault(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
