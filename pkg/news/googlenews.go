package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsBaseURL = "https://news.google.com/rss/search"

type GoogleNewsClient struct {
	httpClient *http.Client
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

func (c *GoogleNewsClient) Search(ctx context.Context, topic string, days int) ([]Headline, error) {
	query := fmt.Sprintf("%s when:%dd", topic, days)
	reqURL := fmt.Sprintf(
		"%s?q=%s&hl=en-US&gl=US&ceid=US:en",
		googleNewsBaseURL, url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google news fetch: unexpected status %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google news parse: %w", err)
	}

	headlines := make([]Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, source := splitSourceSuffix(item.Title)
		if source == "" {
			source = feed.Title
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}

		headlines = append(headlines, Headline{
			Title:       title,
			Source:      source,
			PublishedAt: publishedAt,
			Link:        item.Link,
		})
	}

	return headlines, nil
}

// Google News item titles carry the publisher as a trailing " - Publisher"
// segment; the universal feed item has no separate source field.
func splitSourceSuffix(title string) (string, string) {
	idx := strings.LastIndex(title, " - ")
	if idx <= 0 || idx+3 >= len(title) {
		return title, ""
	}
	return title[:idx], title[idx+3:]
}
