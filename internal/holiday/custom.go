package holiday

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/datedim-labs/datedim/internal/errors"
)

// calendarFile is the YAML shape for a custom calendar definition.
//
//	name: ACME
//	holidays:
//	  - date: 2024-03-15
//	    name: Founders Day
//	  - month: 12
//	    day: 24
//	    name: Christmas Eve
//
// Entries with a date apply to that day only; entries with month/day
// recur every year.
type calendarFile struct {
	Name     string                `yaml:"name"`
	Holidays []calendarFileHoliday `yaml:"holidays"`
}

type calendarFileHoliday struct {
	Date  string `yaml:"date"`
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
	Name  string `yaml:"name"`
}

// Custom calendar codes become column suffixes, so they must be
// identifier-safe.
var codePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// AddCalendarFile registers a custom calendar from a YAML definition file.
func (r *Registry) AddCalendarFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewInvalidCalendarFile(path, err)
	}

	var def calendarFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return errors.NewInvalidCalendarFile(path, err)
	}

	lookup, err := newDateLookup(def)
	if err != nil {
		return errors.NewInvalidCalendarFile(path, err)
	}

	r.add(normalizeCode(def.Name), lookup)
	return nil
}

// dateLookup is a fixed-date calendar: one-off dates keyed by julian day
// number plus yearly recurring month/day entries.
type dateLookup struct {
	fixed     map[int]string
	recurring map[int]string // month*100 + day
}

func newDateLookup(def calendarFile) (*dateLookup, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("holiday: calendar name is required")
	}
	if !codePattern.MatchString(def.Name) {
		return nil, fmt.Errorf("holiday: calendar name %q must be letters, digits, and underscores", def.Name)
	}
	if len(def.Holidays) == 0 {
		return nil, fmt.Errorf("holiday: calendar %q has no holidays", def.Name)
	}

	l := &dateLookup{
		fixed:     make(map[int]string),
		recurring: make(map[int]string),
	}
	for i, h := range def.Holidays {
		if h.Name == "" {
			return nil, fmt.Errorf("holiday: entry %d has no name", i)
		}
		switch {
		case h.Date != "":
			t, err := time.Parse("2006-01-02", h.Date)
			if err != nil {
				return nil, fmt.Errorf("holiday: entry %d: %w", i, err)
			}
			l.fixed[julianDate(t)] = h.Name
		case h.Month >= 1 && h.Month <= 12 && h.Day >= 1 && h.Day <= daysInMonth(time.Month(h.Month)):
			l.recurring[h.Month*100+h.Day] = h.Name
		default:
			return nil, fmt.Errorf("holiday: entry %d needs a date or a valid month and day", i)
		}
	}
	return l, nil
}

func (l *dateLookup) Holiday(t time.Time) (string, bool) {
	if name, ok := l.fixed[julianDate(t)]; ok {
		return name, true
	}
	_, m, d := t.Date()
	if name, ok := l.recurring[int(m)*100+d]; ok {
		return name, true
	}
	return "", false
}

// daysInMonth returns the maximum length of m, counting leap-year February.
func daysInMonth(m time.Month) int {
	return time.Date(2000, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func julianDate(t time.Time) int {
	year, m, day := t.Date()
	month := int(m)
	// well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}
