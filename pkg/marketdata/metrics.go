package marketdata

import "fmt"

// displayNameFields maps the display names older clients send to canonical
// metric names. Applied before any provider lookup.
var displayNameFields = map[string]string{
	"P/E":            "trailingPE",
	"EPS":            "trailingEps",
	"Market Cap":     "marketCap",
	"Dividend Yield": "dividendYield",
	"52 Week High":   "fiftyTwoWeekHigh",
	"52 Week Low":    "fiftyTwoWeekLow",
}

// finnhubFields maps canonical metric names to the keys Finnhub uses in its
// basic-financials payload. Names without an entry are looked up raw.
var finnhubFields = map[string]string{
	"marketCap":        "marketCapitalization",
	"trailingPE":       "peTTM",
	"trailingEps":      "epsTTM",
	"dividendYield":    "currentDividendYieldTTM",
	"fiftyTwoWeekHigh": "52WeekHigh",
	"fiftyTwoWeekLow":  "52WeekLow",
	"beta":             "beta",
	"averageVolume":    "10DayAverageTradingVolume",
	"returnOnEquity":   "roeTTM",
	"revenueGrowth":    "revenueGrowthTTMYoy",
	"earningsGrowth":   "epsGrowthTTMYoy",
	"grossMargins":     "grossMarginTTM",
	"operatingMargins": "operatingMarginTTM",
	"profitMargins":    "netProfitMarginTTM",
	"bookValue":        "bookValuePerShareAnnual",
	"priceToBook":      "pbAnnual",
}

func providerField(metric string) string {
	name := metric
	if canonical, ok := displayNameFields[name]; ok {
		name = canonical
	}
	if field, ok := finnhubFields[name]; ok {
		return field
	}
	return name
}

// metricValue projects a provider field onto the wire contract: numbers pass
// through, anything else non-nil is stringified, missing fields become "N/A".
func metricValue(info map[string]any, metric string) any {
	v, ok := info[providerField(metric)]
	if !ok || v == nil {
		return "N/A"
	}
	switch n := v.(type) {
	case float64, float32, int, int64:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}
