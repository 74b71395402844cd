package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func sampleHeadlines() []SummaryInput {
	base := time.Date(2026, time.February, 27, 9, 0, 0, 0, time.UTC)
	return []SummaryInput{
		{Title: "AI Model Sets New Benchmark Record", Source: "TechCrunch", PublishedAt: base},
		{Title: "Regulators Weigh New AI Rules", Source: "Reuters", PublishedAt: base.Add(-12 * time.Hour)},
		{Title: "Chip Demand Surges on AI Spending", Source: "Bloomberg", PublishedAt: base.Add(-36 * time.Hour)},
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	headlines := sampleHeadlines()

	first := BuildPrompt(headlines)
	second := BuildPrompt(headlines)

	assert.Equal(t, first, second)
}

func TestBuildPrompt_ContainsAllTitles(t *testing.T) {
	headlines := sampleHeadlines()

	prompt := BuildPrompt(headlines)

	for _, h := range headlines {
		assert.Equal(t, true, strings.Contains(prompt, h.Title))
		assert.Equal(t, true, strings.Contains(prompt, h.Source))
	}
	assert.Equal(t, 3, strings.Count(prompt, "- "))
}

func TestBuildPrompt_LineFormat(t *testing.T) {
	headlines := sampleHeadlines()[:1]

	prompt := BuildPrompt(headlines)

	want := "- AI Model Sets New Benchmark Record | TechCrunch (Published: Fri, 27 Feb 2026 09:00:00 UTC)"
	assert.Equal(t, true, strings.Contains(prompt, want))
}

func TestNewOpenRouterClient_MissingKey(t *testing.T) {
	client, err := NewOpenRouterClient("", "")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, client == nil)
}

func TestNewOpenRouterClient_DefaultModel(t *testing.T) {
	client, err := NewOpenRouterClient("test-key", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, defaultOpenRouterModel, client.modelName)
}

func TestNewAnthropicClient_MissingKey(t *testing.T) {
	client, err := NewAnthropicClient("")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, client == nil)
}
