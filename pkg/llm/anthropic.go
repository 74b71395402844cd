package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is not set")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model("claude-haiku-4-5"),
		modelName: "claude-4.5-haiku",
	}, nil
}

func (c *AnthropicClient) Summarize(ctx context.Context, headlines []SummaryInput) (*SummaryResult, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxSummaryTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(headlines))),
		},
	})

	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) &&
			(apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("anthropic API error: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	text := strings.TrimSpace(resp.Content[0].Text)
	if text == "" {
		return nil, fmt.Errorf("empty summary from anthropic")
	}

	return &SummaryResult{
		Text:      text,
		ModelUsed: c.modelName,
	}, nil
}
