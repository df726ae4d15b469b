// Package dimension derives per-day calendar attributes and assembles
// them into a column-ordered table ready for a sink.
package dimension

import "time"

// ColumnType describes the logical type of a table column. Sinks map
// these to their own storage types.
type ColumnType int

const (
	TypeUInt8 ColumnType = iota
	TypeUInt16
	TypeUInt32
	TypeInt32
	TypeDate
	TypeString
	TypeBool
)

// Column is a named, typed table column.
type Column struct {
	Name string
	Type ColumnType
}

// Table is the generated date dimension: an ordered column set and one
// row per calendar day. Row values are native Go values matching the
// column types (uint8, uint16, uint32, int32, time.Time, string, bool).
type Table struct {
	Columns []Column
	Rows    [][]interface{}
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// baseColumns is the fixed attribute set, in output order. Holiday-name
// columns are appended per registered calendar when requested.
var baseColumns = []Column{
	{Name: "datekey", Type: TypeUInt32},
	{Name: "date_raw", Type: TypeDate},
	{Name: "dayofweek", Type: TypeString},
	{Name: "dayofweek_short", Type: TypeString},
	{Name: "month", Type: TypeString},
	{Name: "year", Type: TypeInt32},
	{Name: "yearmonthnum", Type: TypeUInt32},
	{Name: "monthyear", Type: TypeString},
	{Name: "daynuminweek", Type: TypeUInt8},
	{Name: "daynuminmonth", Type: TypeUInt8},
	{Name: "daynuminyear", Type: TypeUInt16},
	{Name: "monthnuminyear", Type: TypeUInt8},
	{Name: "iso_year", Type: TypeUInt16},
	{Name: "iso_weeknuminyear", Type: TypeUInt16},
	{Name: "last_day_in_week", Type: TypeBool},
	{Name: "last_day_in_month", Type: TypeBool},
	{Name: "is_holiday", Type: TypeBool},
	{Name: "weekday", Type: TypeBool},
}

// Attributes holds the derived calendar attributes for a single date.
type Attributes struct {
	DateKey        uint32    `json:"datekey"`
	Date           time.Time `json:"date_raw"`
	DayOfWeek      string    `json:"dayofweek"`
	DayOfWeekShort string    `json:"dayofweek_short"`
	Month          string    `json:"month"`
	Year           int32     `json:"year"`
	YearMonthNum   uint32    `json:"yearmonthnum"`
	MonthYear      string    `json:"monthyear"`
	DayNumInWeek   uint8     `json:"daynuminweek"`
	DayNumInMonth  uint8     `json:"daynuminmonth"`
	DayNumInYear   uint16    `json:"daynuminyear"`
	MonthNumInYear uint8     `json:"monthnuminyear"`
	ISOYear        uint16    `json:"iso_year"`
	ISOWeek        uint16    `json:"iso_weeknuminyear"`
	LastDayInWeek  bool      `json:"last_day_in_week"`
	LastDayInMonth bool      `json:"last_day_in_month"`
	IsHoliday      bool      `json:"is_holiday"`
	Weekday        bool      `json:"weekday"`
}
