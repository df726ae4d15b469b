// Package holiday merges independently-sourced holiday calendars into a
// single per-date lookup. Calendars are registered by code: ISO country
// codes backed by rule-based calendars from rickar/cal, financial-market
// codes (ECB, XNYS, IFEU), and custom calendars loaded from YAML files.
package holiday

import (
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/datedim-labs/datedim/internal/errors"
)

// Lookup answers whether a single calendar marks a date as a holiday.
type Lookup interface {
	// Holiday returns the holiday name and true if t is a holiday in
	// this calendar, either on its actual date or its observed date.
	Holiday(t time.Time) (string, bool)
}

// Flag is the per-calendar holiday result for one date.
type Flag struct {
	Code      string `json:"code"`
	IsHoliday bool   `json:"is_holiday"`
	Name      string `json:"name,omitempty"`
}

type entry struct {
	code   string
	lookup Lookup
}

// Registry accumulates named holiday calendars and exposes a combined
// per-date predicate plus per-calendar flags. Calendars keep their
// registration order; registering the same code twice is a no-op.
type Registry struct {
	entries []entry
	seen    map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]bool)}
}

// AddCountries registers country holiday calendars by ISO 3166-1 alpha-2
// code. UK is accepted as an alias for GB.
func (r *Registry) AddCountries(codes ...string) error {
	for _, code := range codes {
		norm := normalizeCode(code)
		if alias, ok := countryAliases[norm]; ok {
			norm = alias
		}
		def, ok := countries[norm]
		if !ok {
			return errors.NewUnknownCalendar("country", code, CountryCodes())
		}
		r.add(norm, ruleLookup{calendar: newCalendar(def.name, def.holidays)})
	}
	return nil
}

// AddMarkets registers financial-market holiday calendars by market code.
// NYSE is accepted as an alias for XNYS.
func (r *Registry) AddMarkets(codes ...string) error {
	for _, code := range codes {
		norm := normalizeCode(code)
		if alias, ok := marketAliases[norm]; ok {
			norm = alias
		}
		def, ok := markets[norm]
		if !ok {
			return errors.NewUnknownCalendar("financial", code, MarketCodes())
		}
		r.add(norm, ruleLookup{calendar: newCalendar(def.name, def.holidays)})
	}
	return nil
}

// Codes returns the registered calendar codes in registration order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.entries))
	for i, e := range r.entries {
		codes[i] = e.code
	}
	return codes
}

// Empty reports whether no calendars are registered.
func (r *Registry) Empty() bool {
	return len(r.entries) == 0
}

// IsHoliday reports whether at least one registered calendar marks t.
func (r *Registry) IsHoliday(t time.Time) bool {
	for _, e := range r.entries {
		if _, ok := e.lookup.Holiday(t); ok {
			return true
		}
	}
	return false
}

// Flags returns the per-calendar results for t, in registration order.
func (r *Registry) Flags(t time.Time) []Flag {
	flags := make([]Flag, len(r.entries))
	for i, e := range r.entries {
		name, ok := e.lookup.Holiday(t)
		flags[i] = Flag{Code: e.code, IsHoliday: ok, Name: name}
	}
	return flags
}

func (r *Registry) add(code string, lookup Lookup) {
	if r.seen[code] {
		return
	}
	r.seen[code] = true
	r.entries = append(r.entries, entry{code: code, lookup: lookup})
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ruleLookup adapts a rickar/cal rule-based calendar to the Lookup interface.
type ruleLookup struct {
	calendar *cal.Calendar
}

func (l ruleLookup) Holiday(t time.Time) (string, bool) {
	actual, observed, h := l.calendar.IsHoliday(t)
	if (actual || observed) && h != nil {
		return h.Name, true
	}
	return "", false
}

func newCalendar(name string, holidays []*cal.Holiday) *cal.Calendar {
	c := &cal.Calendar{Name: name, Cacheable: true}
	c.AddHoliday(holidays...)
	return c
}

func sortedKeys(defs map[string]calendarDef) []string {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
