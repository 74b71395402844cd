package llm

import (
	"fmt"
	"strings"
	"time"
)

const promptHeader = `Analyze and summarize the following news headlines. Provide a concise summary that:
1. Identifies the main themes and topics
2. Highlights any significant trends or patterns
3. Notes any breaking or urgent news
4. Provides context and insights

Headlines:
`

const promptFooter = `
Provide a clear, well-structured summary.`

// BuildPrompt is deterministic: the same headline list always yields the
// same prompt string.
func BuildPrompt(headlines []SummaryInput) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for _, h := range headlines {
		sb.WriteString(fmt.Sprintf(
			"- %s | %s (Published: %s)\n",
			h.Title, h.Source, h.PublishedAt.UTC().Format(time.RFC1123),
		))
	}
	sb.WriteString(promptFooter)
	return sb.String()
}
