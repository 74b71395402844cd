package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"
const defaultOpenRouterModel = "nvidia/nemotron-3-nano-30b-a3b:free"
const maxSummaryTokens = 1024

// OpenRouterClient talks to OpenRouter's OpenAI-compatible
// chat-completions endpoint.
type OpenRouterClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenRouterClient(apiKey, model string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY is not set")
	}
	if model == "" {
		model = defaultOpenRouterModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
	)
	return &OpenRouterClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}, nil
}

func (c *OpenRouterClient) Summarize(ctx context.Context, headlines []SummaryInput) (*SummaryResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     c.model,
		MaxTokens: openai.Int(maxSummaryTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(headlines)),
		},
	})

	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) &&
			(apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("openrouter API error: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openrouter")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("empty summary from openrouter")
	}

	return &SummaryResult{
		Text:      text,
		ModelUsed: c.modelName,
	}, nil
}
