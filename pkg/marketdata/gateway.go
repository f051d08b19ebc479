package marketdata

import "time"

// Gateway is the single surface handlers talk to. History comes from Yahoo,
// everything else from Finnhub; callers never see the split.
type Gateway struct {
	history *YahooClient
	finnhub *FinnHubClient
}

func NewGateway(finnhubAPIKey string) *Gateway {
	return &Gateway{
		history: NewYahooClient(),
		finnhub: NewFinnHubClient(finnhubAPIKey),
	}
}

func (g *Gateway) DailyCloses(symbol string, from, to time.Time) (map[string]float64, error) {
	return g.history.DailyCloses(symbol, from, to)
}

func (g *Gateway) SymbolMetrics(symbol string, metrics []string) (map[string]any, error) {
	return g.finnhub.SymbolMetrics(symbol, metrics)
}

func (g *Gateway) CompanyNews(symbol string) ([]NewsItem, error) {
	return g.finnhub.CompanyNews(symbol)
}

func (g *Gateway) Earnings(symbol string) (*EarningsReport, error) {
	return g.finnhub.Earnings(symbol)
}
