package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const maxNewsItems = 8

type FinnHubClient struct {
	client     *finnhub.DefaultApiService
	apiKey     string
	httpClient *http.Client
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{
		client:     client,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SymbolMetrics looks up each requested metric in the provider's flat
// financials map. Unknown names are not an error; they come back as "N/A".
func (c *FinnHubClient) SymbolMetrics(symbol string, metrics []string) (map[string]any, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	res, _, err := c.client.CompanyBasicFinancials(context.Background()).Symbol(symbol).Metric("all").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub financials for %s: %w", symbol, err)
	}

	info := res.GetMetric()

	result := make(map[string]any, len(metrics))
	for _, metric := range metrics {
		result[metric] = metricValue(info, metric)
	}

	return result, nil
}

// CompanyNews returns the provider's most recent articles for one symbol,
// provider order preserved, truncated to maxNewsItems.
func (c *FinnHubClient) CompanyNews(symbol string) ([]NewsItem, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	to := time.Now()
	from := to.AddDate(0, -1, 0)

	res, _, err := c.client.CompanyNews(context.Background()).
		Symbol(symbol).
		From(from.Format(dateLayout)).
		To(to.Format(dateLayout)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub news for %s: %w", symbol, err)
	}

	items := make([]NewsItem, 0, len(res))
	for _, n := range res {
		item := NewsItem{}

		if n.Id != nil {
			item.ID = *n.Id
		}
		if n.Category != nil {
			item.Category = *n.Category
		}
		if n.Datetime != nil {
			item.Datetime = *n.Datetime
		}
		if n.Headline != nil {
			item.Headline = *n.Headline
		}
		if n.Image != nil {
			item.Image = *n.Image
		}
		if n.Related != nil {
			item.Related = *n.Related
		}
		if n.Source != nil {
			item.Source = *n.Source
		}
		if n.Summary != nil {
			item.Summary = *n.Summary
		}
		if n.Url != nil {
			item.URL = *n.Url
		}

		items = append(items, item)
	}

	return truncateNews(items), nil
}

// truncateNews keeps the first maxNewsItems entries of the provider-ordered
// feed, without re-sorting.
func truncateNews(items []NewsItem) []NewsItem {
	if len(items) > maxNewsItems {
		return items[:maxNewsItems]
	}
	return items
}

// Earnings combines annual income-statement figures with the upcoming
// earnings calendar for one symbol.
func (c *FinnHubClient) Earnings(symbol string) (*EarningsReport, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	historical, err := c.historicalEarnings(symbol)
	if err != nil {
		return nil, err
	}

	upcoming, err := c.upcomingEarnings(symbol)
	if err != nil {
		return nil, err
	}

	return &EarningsReport{Historical: historical, Upcoming: upcoming}, nil
}

func (c *FinnHubClient) upcomingEarnings(symbol string) ([]UpcomingEarning, error) {
	now := time.Now()
	res, _, err := c.client.EarningsCalendar(context.Background()).
		Symbol(symbol).
		From(now.Format(dateLayout)).
		To(now.AddDate(1, 0, 0).Format(dateLayout)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub earnings calendar for %s: %w", symbol, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	upcoming := []UpcomingEarning{}
	for _, e := range res.GetEarningsCalendar() {
		if e.Date == nil || e.EpsEstimate == nil {
			continue
		}

		date, err := time.ParseInLocation(dateLayout, *e.Date, time.Local)
		if err != nil || !date.After(today) {
			continue
		}

		upcoming = append(upcoming, UpcomingEarning{
			Date:        *e.Date,
			EPSEstimate: float64(*e.EpsEstimate),
		})
	}

	return upcoming, nil
}

const financialsReportedURL = "https://finnhub.io/api/v1/stock/financials-reported"

// historicalEarnings goes over plain HTTP: the SDK does not expose the
// reported income-statement line items in a shape we can walk for net
// income and revenue.
func (c *FinnHubClient) historicalEarnings(symbol string) ([]HistoricalEarning, error) {
	url := fmt.Sprintf("%s?symbol=%s&freq=annual&token=%s", financialsReportedURL, symbol, c.apiKey)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("finnhub financials-reported fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw financialsReportedResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("finnhub financials-reported decode: %w", err)
	}

	return historicalFromReports(raw.Data), nil
}

// historicalFromReports pairs each period's net income with its total
// revenue. Periods without a net-income line are skipped.
func historicalFromReports(reports []financialReport) []HistoricalEarning {
	historical := []HistoricalEarning{}
	for _, r := range reports {
		netIncome, ok := incomeStatementValue(r.Report.IC, isNetIncomeConcept)
		if !ok {
			continue
		}
		revenue, _ := incomeStatementValue(r.Report.IC, isRevenueConcept)

		historical = append(historical, HistoricalEarning{
			Year:     fmt.Sprintf("%d", r.Year),
			Earnings: netIncome,
			Revenue:  revenue,
		})
	}
	return historical
}

func incomeStatementValue(items []reportLine, match func(string) bool) (float64, bool) {
	for _, item := range items {
		if !match(item.Concept) {
			continue
		}
		v, err := item.Value.Float64()
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

func isNetIncomeConcept(concept string) bool {
	return strings.HasSuffix(concept, "NetIncomeLoss")
}

func isRevenueConcept(concept string) bool {
	switch {
	case strings.HasSuffix(concept, "Revenues"),
		strings.HasSuffix(concept, "RevenueFromContractWithCustomerExcludingAssessedTax"),
		strings.HasSuffix(concept, "SalesRevenueNet"):
		return true
	}
	return false
}

type financialsReportedResponse struct {
	Data []financialReport `json:"data"`
}

type financialReport struct {
	Year   int64         `json:"year"`
	Form   string        `json:"form"`
	Report reportSection `json:"report"`
}

type reportSection struct {
	IC []reportLine `json:"ic"`
}

type reportLine struct {
	Concept string      `json:"concept"`
	Label   string      `json:"label"`
	Value   json.Number `json:"value"`
}
