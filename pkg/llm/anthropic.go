package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicInterpreter struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicInterpreter(apiKey string) *AnthropicInterpreter {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicInterpreter{
		client:    &client,
		model:     anthropic.Model("claude-haiku-4-5"),
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicInterpreter) Interpret(query string) (*ActionPlan, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(query)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: no response from anthropic", ErrMalformedResponse)
	}

	plan, err := parseActionPlan(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	plan.ModelUsed = c.modelName
	plan.PromptVersion = promptVersion
	return plan, nil
}
