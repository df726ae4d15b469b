package holiday

import (
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fi"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/mx"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/nz"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/pt"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/us"
)

// calendarDef pairs a display name with the holiday rules for one calendar.
type calendarDef struct {
	name     string
	holidays []*cal.Holiday
}

// countries maps ISO 3166-1 alpha-2 codes to national holiday rule sets.
var countries = map[string]calendarDef{
	"AT": {"Austria", at.Holidays},
	// The au package publishes per-state slices only; AU uses the New
	// South Wales set, which carries all the national holidays.
	"AU": {"Australia (NSW)", au.HolidaysNSW},
	"BE": {"Belgium", be.Holidays},
	"BR": {"Brazil", br.Holidays},
	"CA": {"Canada", ca.Holidays},
	"CH": {"Switzerland", ch.Holidays},
	"CZ": {"Czechia", cz.Holidays},
	"DE": {"Germany", de.Holidays},
	"DK": {"Denmark", dk.Holidays},
	"ES": {"Spain", es.Holidays},
	"FI": {"Finland", fi.Holidays},
	"FR": {"France", fr.Holidays},
	"GB": {"United Kingdom", gb.Holidays},
	"IE": {"Ireland", ie.Holidays},
	"IT": {"Italy", it.Holidays},
	"JP": {"Japan", jp.Holidays},
	"MX": {"Mexico", mx.Holidays},
	"NL": {"Netherlands", nl.Holidays},
	"NO": {"Norway", no.Holidays},
	"NZ": {"New Zealand", nz.Holidays},
	"PL": {"Poland", pl.Holidays},
	"PT": {"Portugal", pt.Holidays},
	"SE": {"Sweden", se.Holidays},
	"US": {"United States", us.Holidays},
}

var countryAliases = map[string]string{
	"UK": "GB",
}

// CountryCodes returns the supported country codes, sorted.
func CountryCodes() []string {
	return sortedKeys(countries)
}

// CountryName returns the display name for a supported country code.
func CountryName(code string) (string, bool) {
	def, ok := countries[normalizeCode(code)]
	if !ok {
		return "", false
	}
	return def.name, true
}
