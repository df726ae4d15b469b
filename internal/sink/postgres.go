package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

// PostgresSink bulk-loads the table into a PostgreSQL table with COPY.
// The target table is dropped and recreated, matching the overwrite
// semantics of the file sinks.
type PostgresSink struct {
	DSN   string
	Table string
}

// Write loads the dimension table into Postgres and returns the table name.
func (s *PostgresSink) Write(ctx context.Context, table *dimension.Table) (string, error) {
	if s.DSN == "" {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table,
			fmt.Errorf("sink: postgres DSN is required"))
	}

	db, err := sql.Open("postgres", s.DSN)
	if err != nil {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table, err)
	}

	if _, err := db.ExecContext(ctx,
		fmt.Sprintf("DROP TABLE IF EXISTS %s", pq.QuoteIdentifier(s.Table))); err != nil {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table, err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL(s.Table, table.Columns)); err != nil {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table, err)
	}

	if err := s.copyRows(ctx, db, table); err != nil {
		return "", errors.NewSinkFailed(FormatPostgres, s.Table, err)
	}

	return s.Table, nil
}

func (s *PostgresSink) copyRows(ctx context.Context, db *sql.DB, table *dimension.Table) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(s.Table, table.ColumnNames()...))
	if err != nil {
		return fmt.Errorf("copy in: %w", err)
	}

	for _, row := range table.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy row: %w", err)
		}
	}

	// Final Exec with no arguments flushes the COPY buffer.
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("copy flush: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("copy close: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// createTableSQL builds the CREATE TABLE statement for the dimension
// columns using Postgres types.
func createTableSQL(name string, columns []dimension.Column) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = fmt.Sprintf("%s %s", pq.QuoteIdentifier(col.Name), postgresType(col.Type))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pq.QuoteIdentifier(name), strings.Join(defs, ", "))
}

func postgresType(typ dimension.ColumnType) string {
	switch typ {
	case dimension.TypeUInt8, dimension.TypeUInt16:
		return "SMALLINT"
	case dimension.TypeUInt32, dimension.TypeInt32:
		return "INTEGER"
	case dimension.TypeDate:
		return "DATE"
	case dimension.TypeBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}
