package holiday

import (
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/ecb"
	"github.com/rickar/cal/v2/us"
)

// Full-day closures of the New York Stock Exchange. Early closes are not
// holidays for dimension purposes.
var xnysHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	aa.GoodFriday,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// Closures of ICE Futures Europe.
var ifeuHolidays = []*cal.Holiday{
	aa.NewYear,
	aa.GoodFriday,
	aa.ChristmasDay,
}

// markets maps financial-market codes to their closure rule sets.
// ECB follows the TARGET2 closing days published by the European
// Central Bank.
var markets = map[string]calendarDef{
	"ECB":  {"European Central Bank (TARGET2)", ecb.Holidays},
	"IFEU": {"ICE Futures Europe", ifeuHolidays},
	"XNYS": {"New York Stock Exchange", xnysHolidays},
}

var marketAliases = map[string]string{
	"NYSE": "XNYS",
}

// MarketCodes returns the supported financial-market codes, sorted.
func MarketCodes() []string {
	return sortedKeys(markets)
}

// MarketName returns the display name for a supported market code.
func MarketName(code string) (string, bool) {
	norm := normalizeCode(code)
	if alias, ok := marketAliases[norm]; ok {
		norm = alias
	}
	def, ok := markets[norm]
	if !ok {
		return "", false
	}
	return def.name, true
}
