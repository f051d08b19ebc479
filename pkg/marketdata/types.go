package marketdata

import "errors"

var ErrEmptySymbol = errors.New("empty symbol")

// NewsItem mirrors the provider's wire shape; the frontend consumes it
// as-is.
type NewsItem struct {
	ID        int64    `json:"id"`
	Category  string   `json:"category"`
	Datetime  int64    `json:"datetime"`
	Headline  string   `json:"headline"`
	Image     string   `json:"image"`
	Related   string   `json:"related"`
	Source    string   `json:"source"`
	Summary   string   `json:"summary"`
	URL       string   `json:"url"`
}

type HistoricalEarning struct {
	Year     string  `json:"Year"`
	Earnings float64 `json:"Earnings"`
	Revenue  float64 `json:"Revenue"`
}

type UpcomingEarning struct {
	Date        string   `json:"Date"`
	EPSEstimate float64  `json:"EPS_Estimate"`
	// The original API never exposed a revenue estimate; keep the field
	// null for wire compatibility.
	RevenueEstimate *float64 `json:"Revenue_Estimate"`
}

type EarningsReport struct {
	Historical []HistoricalEarning `json:"historical_earnings"`
	Upcoming   []UpcomingEarning   `json:"upcoming_earnings"`
}
