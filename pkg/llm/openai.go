package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIInterpreter struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIInterpreter(apiKey string) *OpenAIInterpreter {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIInterpreter{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIInterpreter) Interpret(query string) (*ActionPlan, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(query),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from openai", ErrMalformedResponse)
	}

	plan, err := parseActionPlan(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	plan.ModelUsed = c.modelName
	plan.PromptVersion = promptVersion
	return plan, nil
}
