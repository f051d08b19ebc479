package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shakedHUJI/NLPStocks/pkg/llm"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	interpreter llm.Interpreter
}

func NewQueryHandler(interpreter llm.Interpreter) *QueryHandler {
	return &QueryHandler{interpreter: interpreter}
}

// ProcessQuery turns a natural-language question into an action plan. The
// raw interpreter failure is logged but never echoed to the client.
func (h *QueryHandler) ProcessQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No query provided"})
		return
	}

	plan, err := h.interpreter.Interpret(req.Query)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No query provided"})
			return
		}

		slog.Error("error interpreting query", "query", req.Query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process query"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
