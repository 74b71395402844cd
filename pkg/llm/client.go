package llm

import (
	"context"
	"errors"
	"time"
)

// ErrUnauthorized marks summarization failures caused by rejected
// credentials, so callers can report a bad key distinctly from a
// flaky upstream.
var ErrUnauthorized = errors.New("summarization service rejected credentials")

type SummaryInput struct {
	Title       string
	Source      string
	PublishedAt time.Time
}

type SummaryResult struct {
	Text      string
	ModelUsed string
}

type Summarizer interface {
	Summarize(ctx context.Context, headlines []SummaryInput) (*SummaryResult, error)
}
