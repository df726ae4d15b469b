package sink

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

// SQLiteSink writes the table into a SQLite database file.
type SQLiteSink struct {
	Path string
}

// Write replaces Path with a fresh database holding the dimension table.
func (s *SQLiteSink) Write(ctx context.Context, table *dimension.Table) (string, error) {
	// Overwrite semantics, same as the file sinks.
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return "", errors.NewSinkFailed(FormatSQLite, s.Path, err)
	}

	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return "", errors.NewSinkFailed(FormatSQLite, s.Path, err)
	}
	defer db.Close()

	if err := loadTable(ctx, db, table, sqliteType, sqliteValue); err != nil {
		return "", errors.NewSinkFailed(FormatSQLite, s.Path, err)
	}

	return s.Path, nil
}

func sqliteType(typ dimension.ColumnType) string {
	switch typ {
	case dimension.TypeDate, dimension.TypeString:
		return "TEXT"
	default:
		return "INTEGER"
	}
}

// sqliteValue stores dates as ISO text and booleans as 0/1.
func sqliteValue(v interface{}, typ dimension.ColumnType) interface{} {
	switch typ {
	case dimension.TypeDate:
		return v.(time.Time).Format("2006-01-02")
	case dimension.TypeBool:
		if v.(bool) {
			return 1
		}
		return 0
	default:
		return v
	}
}
