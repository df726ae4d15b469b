package cli

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
	"github.com/datedim-labs/datedim/internal/holiday"
	"github.com/datedim-labs/datedim/internal/observability"
	"github.com/datedim-labs/datedim/internal/sink"
)

type generateParams struct {
	start         string
	end           string
	countries     []string
	financial     []string
	calendarFiles []string
	format        string
	outPath       string
	postgresDSN   string
	postgresTable string
	holidayNames  bool
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	var p generateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the date dimension table",
		Long: `Generate a date-dimension table with one row per calendar day.

Holiday calendars are merged into a combined is_holiday column. With
--holiday-names, two extra columns are added per calendar code:
is_holiday_<CODE> (boolean) and holiday_name_<CODE> (text).

Custom calendar files are YAML:
  name: ACME
  holidays:
    - date: 2024-03-15
      name: Founders Day
    - month: 12
      day: 24
      name: Christmas Eve

Examples:
  datedim generate -s 2020-01-01 -e 2020-12-31 -c US -c BR -o csv
  datedim generate -s 2020-01-01 -e 2029-12-31 -f XNYS -f ECB -n`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override config; unset flags fall back to it.
			if p.format == "" {
				p.format = c.cfg.Output.Format
			}
			if p.outPath == "" {
				p.outPath = c.cfg.Output.Path
			}
			if p.postgresDSN == "" {
				p.postgresDSN = c.cfg.Output.Postgres.DSN
			}
			if p.postgresTable == "" {
				p.postgresTable = c.cfg.Output.Postgres.Table
			}
			if !cmd.Flags().Changed("holiday-names") {
				p.holidayNames = c.cfg.Generate.HolidayNames
			}
			return c.runGenerate(p)
		},
	}

	cmd.Flags().StringVarP(&p.start, "start", "s", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&p.end, "end", "e", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVarP(&p.countries, "country", "c", nil, "country holiday calendar code (repeatable, e.g. US, BR)")
	cmd.Flags().StringArrayVarP(&p.financial, "financial", "f", nil, "financial holiday calendar code (repeatable: ECB, IFEU, XNYS)")
	cmd.Flags().StringArrayVar(&p.calendarFiles, "calendar-file", nil, "custom holiday calendar YAML file (repeatable)")
	cmd.Flags().StringVarP(&p.format, "format", "o", "", "output format: csv, parquet, sqlite, postgres (default from config)")
	cmd.Flags().StringVar(&p.outPath, "out", "", "output file path (default: datedimension.<ext>)")
	cmd.Flags().StringVar(&p.postgresDSN, "dsn", "", "postgres connection string (postgres format only)")
	cmd.Flags().StringVar(&p.postgresTable, "table", "", "postgres target table (default: datedimension)")
	cmd.Flags().BoolVarP(&p.holidayNames, "holiday-names", "n", false, "add is_holiday_<CODE> and holiday_name_<CODE> columns per calendar")

	return cmd
}

func (c *CLI) runGenerate(p generateParams) error {
	began := time.Now()

	start, end, err := parseDateRange(p.start, p.end)
	if err != nil {
		c.errorf("Error: %v\n", err)
		return err
	}

	registry, err := buildRegistry(p.countries, p.financial, p.calendarFiles)
	if err != nil {
		c.errorf("Error: %v\n", err)
		return err
	}
	c.debugf("registered calendars: %v\n", registry.Codes())

	holidayNames := p.holidayNames
	if holidayNames && registry.Empty() {
		c.printf("Warning: ignoring --holiday-names since no holiday calendars were provided\n")
		holidayNames = false
	}

	// Validate the format before doing any generation work (fail-fast).
	out, err := sink.New(p.format, sink.Options{
		Path:          p.outPath,
		PostgresDSN:   p.postgresDSN,
		PostgresTable: p.postgresTable,
	})
	if err != nil {
		c.errorf("Error: %v\n", err)
		return err
	}

	table, err := dimension.Generate(dimension.Options{
		Start:        start,
		End:          end,
		Registry:     registry,
		HolidayNames: holidayNames,
	})
	if err != nil {
		c.errorf("Error: %v\n", err)
		return err
	}
	c.debugf("generated %d rows, %d columns\n", table.RowCount(), len(table.Columns))

	ctx := context.Background()
	location, writeErr := out.Write(ctx, table)

	entry := observability.RunLogEntry{
		RunID:     uuid.NewString(),
		Start:     start.Format("2006-01-02"),
		End:       end.Format("2006-01-02"),
		Calendars: registry.Codes(),
		Format:    p.format,
		Location:  location,
		Rows:      table.RowCount(),
		Duration:  time.Since(began),
		Outcome:   "success",
	}
	if writeErr != nil {
		entry.Outcome = "error"
		entry.Error = writeErr.Error()
	}
	if err := c.runLogger().LogRun(ctx, entry); err != nil {
		c.debugf("run log failed: %v\n", err)
	}

	if writeErr != nil {
		c.errorf("Error: %v\n", writeErr)
		return writeErr
	}

	if c.jsonOutput {
		return c.outputJSON(map[string]interface{}{
			"status":   "written",
			"location": location,
			"rows":     table.RowCount(),
			"columns":  len(table.Columns),
		})
	}

	c.printf("✓ Table saved to %s (%d rows)\n", location, table.RowCount())
	return nil
}

// runLogger returns the structured run logger for this invocation.
// Runs log to stderr so machine-readable stdout stays clean.
func (c *CLI) runLogger() observability.RunLogger {
	if c.debug || c.cfg.Logging.Level == "debug" {
		return observability.NewJSONLogger(os.Stderr)
	}
	return observability.NewNoopLogger()
}

// parseDateRange validates the start/end flags. Both are required,
// must parse as YYYY-MM-DD, and start must not be after end.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	var zero time.Time
	if startStr == "" || endStr == "" {
		return zero, zero, errors.NewInvalidDateRange(startStr, endStr,
			"both start and end dates must be provided")
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return zero, zero, errors.NewInvalidDateRange(startStr, endStr,
			"start date must be a valid YYYY-MM-DD date")
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return zero, zero, errors.NewInvalidDateRange(startStr, endStr,
			"end date must be a valid YYYY-MM-DD date")
	}

	if start.After(end) {
		return zero, zero, errors.NewInvalidDateRange(startStr, endStr,
			"start date must be on or before end date")
	}

	return start, end, nil
}

func buildRegistry(countries, financial, calendarFiles []string) (*holiday.Registry, error) {
	registry := holiday.NewRegistry()
	if err := registry.AddCountries(countries...); err != nil {
		return nil, err
	}
	if err := registry.AddMarkets(financial...); err != nil {
		return nil, err
	}
	for _, path := range calendarFiles {
		if err := registry.AddCalendarFile(path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
