package dimension

import (
	"fmt"
	"time"

	"github.com/datedim-labs/datedim/internal/holiday"
)

// Options configures table generation.
type Options struct {
	// Start and End bound the generated range, inclusive on both ends.
	Start time.Time
	End   time.Time

	// Registry supplies the combined holiday predicate. A nil registry
	// behaves like an empty one.
	Registry *holiday.Registry

	// HolidayNames appends is_holiday_<CODE> and holiday_name_<CODE>
	// columns for every registered calendar.
	HolidayNames bool
}

// Generate builds the date dimension table for the configured range.
func Generate(opts Options) (*Table, error) {
	start := midnightUTC(opts.Start)
	end := midnightUTC(opts.End)
	if end.Before(start) {
		return nil, fmt.Errorf("dimension: start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	registry := opts.Registry
	if registry == nil {
		registry = holiday.NewRegistry()
	}

	columns := make([]Column, len(baseColumns))
	copy(columns, baseColumns)
	withNames := opts.HolidayNames && !registry.Empty()
	if withNames {
		for _, code := range registry.Codes() {
			columns = append(columns,
				Column{Name: "is_holiday_" + code, Type: TypeBool},
				Column{Name: "holiday_name_" + code, Type: TypeString},
			)
		}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	table := &Table{
		Columns: columns,
		Rows:    make([][]interface{}, 0, days),
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		attrs := Derive(d, registry)
		row := attrs.row(len(columns))
		if withNames {
			for _, flag := range registry.Flags(d) {
				row = append(row, flag.IsHoliday, flag.Name)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Derive computes the calendar attributes for a single date.
func Derive(t time.Time, registry *holiday.Registry) Attributes {
	t = midnightUTC(t)
	year, month, day := t.Date()
	isoYear, isoWeek := t.ISOWeek()
	isoWeekday := isoWeekday(t)

	return Attributes{
		DateKey:        uint32(year*10000 + int(month)*100 + day),
		Date:           t,
		DayOfWeek:      t.Weekday().String(),
		DayOfWeekShort: t.Format("Mon"),
		Month:          month.String(),
		Year:           int32(year),
		YearMonthNum:   uint32(year*100 + int(month)),
		MonthYear:      t.Format("Jan2006"),
		DayNumInWeek:   uint8(isoWeekday),
		DayNumInMonth:  uint8(day),
		DayNumInYear:   uint16(t.YearDay()),
		MonthNumInYear: uint8(month),
		ISOYear:        uint16(isoYear),
		ISOWeek:        uint16(isoWeek),
		LastDayInWeek:  isoWeekday == 7,
		LastDayInMonth: t.AddDate(0, 0, 1).Day() == 1,
		IsHoliday:      registry != nil && registry.IsHoliday(t),
		Weekday:        isoWeekday < 6,
	}
}

func (a Attributes) row(capacity int) []interface{} {
	row := make([]interface{}, 0, capacity)
	return append(row,
		a.DateKey,
		a.Date,
		a.DayOfWeek,
		a.DayOfWeekShort,
		a.Month,
		a.Year,
		a.YearMonthNum,
		a.MonthYear,
		a.DayNumInWeek,
		a.DayNumInMonth,
		a.DayNumInYear,
		a.MonthNumInYear,
		a.ISOYear,
		a.ISOWeek,
		a.LastDayInWeek,
		a.LastDayInMonth,
		a.IsHoliday,
		a.Weekday,
	)
}

// isoWeekday maps Go's Sunday-first weekday to ISO-8601 Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// midnightUTC truncates to the calendar date. Generation steps whole days
// in UTC; local-time DST transitions must not shift the range.
func midnightUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
