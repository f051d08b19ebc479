package marketdata

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// YahooClient serves daily price history. Yahoo needs no API key, matching
// how the frontend was originally served its chart data.
type YahooClient struct{}

func NewYahooClient() *YahooClient {
	return &YahooClient{}
}

// DailyCloses returns closing prices keyed by YYYY-MM-DD date. An empty map
// is a valid result for a range with no trading data.
func (c *YahooClient) DailyCloses(symbol string, from, to time.Time) (map[string]float64, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	closes := make(map[string]float64)
	for iter.Next() {
		bar := iter.Bar()
		// Yahoo occasionally pads ranges with zero-valued rows.
		if bar.Close.Equal(decimal.Zero) {
			continue
		}
		day := time.Unix(int64(bar.Timestamp), 0).Format(dateLayout)
		price, _ := bar.Close.Float64()
		closes[day] = price
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo history for %s: %w", symbol, err)
	}

	return closes, nil
}
