package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shakedHUJI/NLPStocks/pkg/marketdata"

	"github.com/gin-gonic/gin"
)

type MarketStore interface {
	DailyCloses(symbol string, from, to time.Time) (map[string]float64, error)
	SymbolMetrics(symbol string, metrics []string) (map[string]any, error)
	CompanyNews(symbol string) ([]marketdata.NewsItem, error)
	Earnings(symbol string) (*marketdata.EarningsReport, error)
}

type StockHandler struct {
	store MarketStore
}

func NewStockHandler(store MarketStore) *StockHandler {
	return &StockHandler{store: store}
}

// GetStockData serves closing-price history per symbol. Symbols fail
// independently: a provider error becomes an inline {error} entry instead of
// failing the symbols that did resolve.
func (h *StockHandler) GetStockData(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbols provided"})
		return
	}

	from, to, err := marketdata.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		slog.Warn("invalid date range", "start_date", c.Query("start_date"), "end_date", c.Query("end_date"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.fanOut(symbols, func(symbol string) (any, error) {
		return h.store.DailyCloses(symbol, from, to)
	})

	c.JSON(http.StatusOK, res)
}

func (h *StockHandler) GetStockMetrics(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbols provided"})
		return
	}

	metrics := splitParam(c.Query("metrics"))
	if len(metrics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No metrics provided"})
		return
	}

	res := h.fanOut(symbols, func(symbol string) (any, error) {
		return h.store.SymbolMetrics(symbol, metrics)
	})

	c.JSON(http.StatusOK, res)
}

func (h *StockHandler) GetStockNews(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol provided"})
		return
	}

	items, err := h.store.CompanyNews(symbol)
	if err != nil {
		slog.Error("error fetching news", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *StockHandler) GetStockEarnings(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbols provided"})
		return
	}

	res := h.fanOut(symbols, func(symbol string) (any, error) {
		return h.store.Earnings(symbol)
	})

	c.JSON(http.StatusOK, res)
}

func (h *StockHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// fanOut issues one provider call per symbol concurrently. The response map
// is key-addressed, so completion order does not matter.
func (h *StockHandler) fanOut(symbols []string, fetch func(symbol string) (any, error)) map[string]any {
	var mu sync.Mutex
	var wg sync.WaitGroup

	res := make(map[string]any, len(symbols))

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			data, err := fetch(symbol)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				slog.Error("error fetching symbol data", "symbol", symbol, "error", err)
				res[symbol] = gin.H{"error": err.Error()}
				return
			}
			res[symbol] = data
		}(symbol)
	}

	wg.Wait()
	return res
}

// splitSymbols splits a comma-separated ticker list, normalizing entries to
// the uppercase exchange form providers expect.
func splitSymbols(raw string) []string {
	symbols := splitParam(raw)
	for i, s := range symbols {
		symbols[i] = strings.ToUpper(s)
	}
	return symbols
}

// splitParam splits a comma-separated list, dropping blank entries. Metric
// names keep their case; provider field lookups are case-sensitive.
func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var parts []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
