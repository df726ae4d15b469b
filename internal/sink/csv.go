package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

// CSVSink writes the table as delimited text with a header row.
type CSVSink struct {
	Path string
}

// Write serializes the table to Path, overwriting any existing file.
func (s *CSVSink) Write(ctx context.Context, table *dimension.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("sink: context error: %w", err)
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return "", errors.NewSinkFailed(FormatCSV, s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.ColumnNames()); err != nil {
		return "", errors.NewSinkFailed(FormatCSV, s.Path, err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("sink: context error: %w", err)
		}
		for i, v := range row {
			record[i] = formatValue(v, table.Columns[i].Type)
		}
		if err := w.Write(record); err != nil {
			return "", errors.NewSinkFailed(FormatCSV, s.Path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.NewSinkFailed(FormatCSV, s.Path, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.NewSinkFailed(FormatCSV, s.Path, err)
	}
	return s.Path, nil
}

func formatValue(v interface{}, typ dimension.ColumnType) string {
	switch typ {
	case dimension.TypeDate:
		return v.(time.Time).Format("2006-01-02")
	case dimension.TypeBool:
		return strconv.FormatBool(v.(bool))
	case dimension.TypeString:
		return v.(string)
	default:
		return fmt.Sprintf("%d", v)
	}
}
