package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // DuckDB driver

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

// ParquetSink writes the table as a Parquet file through an in-memory
// DuckDB instance: load the rows, then COPY ... TO (FORMAT PARQUET).
type ParquetSink struct {
	Path string
}

// Write serializes the table to Path, overwriting any existing file.
func (s *ParquetSink) Write(ctx context.Context, table *dimension.Table) (string, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return "", errors.NewSinkFailed(FormatParquet, s.Path, err)
	}
	defer db.Close()

	if err := loadTable(ctx, db, table, duckdbType, nil); err != nil {
		return "", errors.NewSinkFailed(FormatParquet, s.Path, err)
	}

	copySQL := fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)",
		TableName, strings.ReplaceAll(s.Path, "'", "''"))
	if _, err := db.ExecContext(ctx, copySQL); err != nil {
		return "", errors.NewSinkFailed(FormatParquet, s.Path, err)
	}

	return s.Path, nil
}

// PingParquetEngine verifies the embedded DuckDB engine can start.
// Used by diagnostics.
func PingParquetEngine(ctx context.Context) error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("sink: open duckdb: %w", err)
	}
	defer db.Close()
	return db.PingContext(ctx)
}

func duckdbType(typ dimension.ColumnType) string {
	switch typ {
	case dimension.TypeUInt8:
		return "UTINYINT"
	case dimension.TypeUInt16:
		return "USMALLINT"
	case dimension.TypeUInt32:
		return "UINTEGER"
	case dimension.TypeInt32:
		return "INTEGER"
	case dimension.TypeDate:
		return "DATE"
	case dimension.TypeBool:
		return "BOOLEAN"
	default:
		return "VARCHAR"
	}
}

// loadTable creates the dimension table in db and bulk-inserts all rows
// inside a single transaction. Shared by the DuckDB and SQLite sinks.
// convert, when non-nil, rewrites values the driver cannot bind natively.
func loadTable(ctx context.Context, db *sql.DB, table *dimension.Table,
	sqlType func(dimension.ColumnType) string,
	convert func(interface{}, dimension.ColumnType) interface{}) error {
	if table == nil {
		return fmt.Errorf("sink: table is nil")
	}

	defs := make([]string, len(table.Columns))
	params := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		defs[i] = fmt.Sprintf("%q %s", col.Name, sqlType(col.Type))
		params[i] = "?"
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", TableName, strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", TableName, strings.Join(params, ", "))
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			if convert != nil {
				v = convert(v, table.Columns[i].Type)
			}
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
