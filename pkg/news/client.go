package news

import (
	"context"
	"time"
)

type Headline struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Link        string    `json:"link"`
}

type HeadlineClient interface {
	Search(ctx context.Context, topic string, days int) ([]Headline, error)
	Name() string
}
