package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/datedim-labs/datedim/internal/dimension"
	"github.com/datedim-labs/datedim/internal/errors"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	var (
		countries     []string
		financial     []string
		calendarFiles []string
	)

	cmd := &cobra.Command{
		Use:   "describe <date>",
		Short: "Show the derived attributes for a single date",
		Long: `Compute and display the date-dimension attributes for one date,
including holiday flags for any requested calendars.

Example:
  datedim describe 2024-12-25 -c US -f XNYS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDescribe(args[0], countries, financial, calendarFiles)
		},
	}

	cmd.Flags().StringArrayVarP(&countries, "country", "c", nil, "country holiday calendar code (repeatable)")
	cmd.Flags().StringArrayVarP(&financial, "financial", "f", nil, "financial holiday calendar code (repeatable)")
	cmd.Flags().StringArrayVar(&calendarFiles, "calendar-file", nil, "custom holiday calendar YAML file (repeatable)")

	return cmd
}

func (c *CLI) runDescribe(dateStr string, countries, financial, calendarFiles []string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		rangeErr := errors.NewInvalidDateRange(dateStr, dateStr, "date must be a valid YYYY-MM-DD date")
		c.errorf("Error: %v\n", rangeErr)
		return rangeErr
	}

	registry, err := buildRegistry(countries, financial, calendarFiles)
	if err != nil {
		c.errorf("Error: %v\n", err)
		return err
	}

	attrs := dimension.Derive(date, registry)
	flags := registry.Flags(date)

	if c.jsonOutput {
		return c.outputJSON(map[string]interface{}{
			"attributes": attrs,
			"holidays":   flags,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "datekey\t%d\n", attrs.DateKey)
	fmt.Fprintf(w, "date_raw\t%s\n", attrs.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "dayofweek\t%s\n", attrs.DayOfWeek)
	fmt.Fprintf(w, "dayofweek_short\t%s\n", attrs.DayOfWeekShort)
	fmt.Fprintf(w, "month\t%s\n", attrs.Month)
	fmt.Fprintf(w, "year\t%d\n", attrs.Year)
	fmt.Fprintf(w, "yearmonthnum\t%d\n", attrs.YearMonthNum)
	fmt.Fprintf(w, "monthyear\t%s\n", attrs.MonthYear)
	fmt.Fprintf(w, "daynuminweek\t%d\n", attrs.DayNumInWeek)
	fmt.Fprintf(w, "daynuminmonth\t%d\n", attrs.DayNumInMonth)
	fmt.Fprintf(w, "daynuminyear\t%d\n", attrs.DayNumInYear)
	fmt.Fprintf(w, "monthnuminyear\t%d\n", attrs.MonthNumInYear)
	fmt.Fprintf(w, "iso_year\t%d\n", attrs.ISOYear)
	fmt.Fprintf(w, "iso_weeknuminyear\t%d\n", attrs.ISOWeek)
	fmt.Fprintf(w, "last_day_in_week\t%t\n", attrs.LastDayInWeek)
	fmt.Fprintf(w, "last_day_in_month\t%t\n", attrs.LastDayInMonth)
	fmt.Fprintf(w, "is_holiday\t%t\n", attrs.IsHoliday)
	fmt.Fprintf(w, "weekday\t%t\n", attrs.Weekday)
	w.Flush()

	if len(flags) > 0 {
		c.println("")
		hw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(hw, "CALENDAR\tHOLIDAY\tNAME")
		for _, flag := range flags {
			name := flag.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(hw, "%s\t%t\t%s\n", flag.Code, flag.IsHoliday, name)
		}
		hw.Flush()
	}

	return nil
}
