package llm

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseActionPlan_Valid(t *testing.T) {
	content := `{
		"actions": [
			{"type": "getHistory", "symbols": ["AAPL", "MSFT"], "startDate": "2024-01-01", "endDate": "current"}
		],
		"description": "Comparing Apple and Microsoft over the last month.",
		"keyDates": [
			{"date": "2024-01-25", "description": "Apple Q1 earnings", "symbol": "AAPL"}
		]
	}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(plan.Actions))
	assert.Equal(t, "getHistory", plan.Actions[0].Type)
	assert.Equal(t, []string{"AAPL", "MSFT"}, plan.Actions[0].Symbols)
	assert.Equal(t, "current", plan.Actions[0].EndDate)
	assert.Equal(t, 1, len(plan.KeyDates))
	assert.Equal(t, "AAPL", plan.KeyDates[0].Symbol)
}

func TestParseActionPlan_MarkdownFenced(t *testing.T) {
	content := "```json\n{\"actions\": [{\"type\": \"getNews\", \"symbols\": [\"TSLA\"]}], \"description\": \"Tesla news\"}\n```"

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, "getNews", plan.Actions[0].Type)
}

func TestParseActionPlan_ProseWrapped(t *testing.T) {
	content := `Here is the plan you asked for:
{"actions": [{"type": "getHistory", "symbols": ["NVDA"]}], "description": "NVIDIA history"}
Let me know if you need anything else.`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"NVDA"}, plan.Actions[0].Symbols)
}

func TestParseActionPlan_InjectsDefaultMetrics(t *testing.T) {
	content := `{"actions": [{"type": "getMetrics", "symbols": ["AAPL"]}], "description": "Apple metrics"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, DefaultMetrics, plan.Actions[0].Metrics)
}

func TestParseActionPlan_KeepsExplicitMetrics(t *testing.T) {
	content := `{"actions": [{"type": "getMetrics", "symbols": ["AAPL"], "metrics": ["beta"]}], "description": "Apple beta"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"beta"}, plan.Actions[0].Metrics)
}

func TestParseActionPlan_NoMetricsOutsideGetMetrics(t *testing.T) {
	content := `{"actions": [{"type": "getHistory", "symbols": ["AAPL"]}], "description": "Apple history"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(plan.Actions[0].Metrics))
}

func TestParseActionPlan_ClearsMetricsOutsideGetMetrics(t *testing.T) {
	content := `{"actions": [{"type": "getHistory", "symbols": ["AAPL"], "metrics": ["marketCap"]}], "description": "stray metrics"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(plan.Actions[0].Metrics))
}

func TestParseActionPlan_MissingType(t *testing.T) {
	content := `{"actions": [{"symbols": ["AAPL"]}], "description": "no type"}`

	_, err := parseActionPlan(content)

	assert.Equal(t, true, errors.Is(err, ErrMalformedResponse))
}

func TestParseActionPlan_MissingSymbols(t *testing.T) {
	content := `{"actions": [{"type": "getHistory"}], "description": "no symbols"}`

	_, err := parseActionPlan(content)

	assert.Equal(t, true, errors.Is(err, ErrMalformedResponse))
}

func TestParseActionPlan_NotJSON(t *testing.T) {
	_, err := parseActionPlan("I could not come up with a plan, sorry.")

	assert.Equal(t, true, errors.Is(err, ErrMalformedResponse))
}

func TestParseActionPlan_EmptyActionsValid(t *testing.T) {
	content := `{"actions": [], "description": "nothing to do"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(plan.Actions))
}

func TestParseActionPlan_UnknownTypePassesThrough(t *testing.T) {
	content := `{"actions": [{"type": "getPrice", "symbols": ["AAPL"]}], "description": "legacy action type"}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, "getPrice", plan.Actions[0].Type)
}

func TestParseActionPlan_DropsPartialKeyDates(t *testing.T) {
	content := `{
		"actions": [{"type": "getHistory", "symbols": ["AAPL"]}],
		"description": "history with events",
		"keyDates": [
			{"date": "2024-01-25", "description": "Q1 earnings", "symbol": "AAPL"},
			{"date": "2024-02-01", "description": "missing symbol"},
			{"date": "2024-03-01", "symbol": "AAPL"}
		]
	}`

	plan, err := parseActionPlan(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(plan.KeyDates))
	assert.Equal(t, "2024-01-25", plan.KeyDates[0].Date)
}

func TestCleanJSONResponse_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"actions\": []}\n```",
		"{\"actions\": []}",
		"Some prose {\"actions\": []} more prose",
	}

	for _, input := range inputs {
		once := cleanJSONResponse(input)
		twice := cleanJSONResponse(once)
		assert.Equal(t, once, twice)
	}
}

func TestOpenAIInterpret_EmptyQuery(t *testing.T) {
	// Must fail before any network call; the client is never exercised.
	c := NewOpenAIInterpreter("test-key")

	_, err := c.Interpret("   ")

	assert.Equal(t, true, errors.Is(err, ErrEmptyQuery))
}

func TestAnthropicInterpret_EmptyQuery(t *testing.T) {
	c := NewAnthropicInterpreter("test-key")

	_, err := c.Interpret("")

	assert.Equal(t, true, errors.Is(err, ErrEmptyQuery))
}
