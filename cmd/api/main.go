package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/shakedHUJI/NLPStocks/internal/handler"
	"github.com/shakedHUJI/NLPStocks/pkg/llm"
	"github.com/shakedHUJI/NLPStocks/pkg/marketdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	interpreter := newInterpreter()
	if interpreter == nil {
		log.Fatal("no completion service API key configured")
	}

	gateway := marketdata.NewGateway(os.Getenv("FINNHUB_API_KEY"))

	stockHandler := handler.NewStockHandler(gateway)
	queryHandler := handler.NewQueryHandler(interpreter)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	r.GET("/api/stock_data", stockHandler.GetStockData)
	r.GET("/api/stock_metrics", stockHandler.GetStockMetrics)
	r.GET("/api/stock_news", stockHandler.GetStockNews)
	r.GET("/api/stock_earnings", stockHandler.GetStockEarnings)
	r.POST("/api/process_query", queryHandler.ProcessQuery)
	r.GET("/health", stockHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newInterpreter() llm.Interpreter {
	openAIKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")

	if openAIKey != "" {
		return llm.NewOpenAIInterpreter(openAIKey)
	}
	if anthropicKey != "" {
		return llm.NewAnthropicInterpreter(anthropicKey)
	}
	return nil
}

// corsConfig allows all origins only when ALLOWED_ORIGINS is "*" (development);
// production deployments set an explicit comma-separated allow-list.
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}

	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "*" {
		cfg.AllowAllOrigins = true
		slog.Info("CORS allows all origins")
		return cfg
	}

	allowedOrigins := []string{"http://localhost:3000"}
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
