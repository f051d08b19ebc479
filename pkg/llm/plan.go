package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const ActionGetMetrics = "getMetrics"

// DefaultMetrics is injected into getMetrics actions when the model omits
// the metric list. Changing it is a breaking change to the plan schema.
var DefaultMetrics = []string{
	"marketCap",
	"trailingPE",
	"forwardPE",
	"dividendYield",
	"fiftyTwoWeekHigh",
	"fiftyTwoWeekLow",
}

type Action struct {
	Type      string   `json:"type"`
	Symbols   []string `json:"symbols"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Metrics   []string `json:"metrics,omitempty"`
}

type KeyDate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Symbol      string `json:"symbol"`
}

type ActionPlan struct {
	Actions     []Action  `json:"actions"`
	Description string    `json:"description"`
	KeyDates    []KeyDate `json:"keyDates"`

	// Provenance of the interpretation, stamped by the interpreter.
	ModelUsed     string `json:"modelUsed,omitempty"`
	PromptVersion string `json:"promptVersion,omitempty"`
}

// parseActionPlan turns raw completion output into a validated plan. The
// action type enum is open: unknown types pass through untouched, only the
// structural shape is enforced.
func parseActionPlan(content string) (*ActionPlan, error) {
	var plan ActionPlan
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for i := range plan.Actions {
		a := &plan.Actions[i]
		if a.Type == "" {
			return nil, fmt.Errorf("%w: action %d has no type", ErrMalformedResponse, i)
		}
		if len(a.Symbols) == 0 {
			return nil, fmt.Errorf("%w: action %d has no symbols", ErrMalformedResponse, i)
		}
		// Metrics are meaningful only on getMetrics actions: inject the
		// defaults there, drop stray lists anywhere else.
		if a.Type == ActionGetMetrics {
			if len(a.Metrics) == 0 {
				a.Metrics = append([]string(nil), DefaultMetrics...)
			}
		} else {
			a.Metrics = nil
		}
	}

	// Key dates missing a field are unusable by the frontend; drop them
	// rather than failing the whole plan.
	kept := plan.KeyDates[:0]
	for _, kd := range plan.KeyDates {
		if kd.Date != "" && kd.Description != "" && kd.Symbol != "" {
			kept = append(kept, kd)
		}
	}
	plan.KeyDates = kept

	return &plan, nil
}

// cleanJSONResponse strips markdown fences and surrounding prose from a
// completion reply. Models do not reliably honor "no markdown" instructions.
// Applying it twice yields the same result as applying it once.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
