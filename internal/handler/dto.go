package handler

import (
	"time"

	"headlinesai/internal/model"
)

type SearchRequest struct {
	Topic string `json:"topic"`
	Days  int    `json:"days"`
}

type HeadlineResponse struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Link        string `json:"link"`
}

type SearchResponse struct {
	Topic        string             `json:"topic"`
	Days         int                `json:"days"`
	Headlines    []HeadlineResponse `json:"headlines"`
	ArticleCount int                `json:"article_count"`
	Summary      string             `json:"summary"`
	SummaryError string             `json:"summary_error,omitempty"`
	ModelUsed    string             `json:"model_used,omitempty"`
	Cached       bool               `json:"cached"`
	Timestamp    string             `json:"timestamp"`
}

type HistoryResponse struct {
	Searches []SearchResponse `json:"searches"`
	Total    int              `json:"total"`
}

func toSearchResponse(rec model.SearchRecord, cached bool) SearchResponse {
	headlines := make([]HeadlineResponse, len(rec.Headlines))
	for i, h := range rec.Headlines {
		headlines[i] = HeadlineResponse{
			Title:       h.Title,
			Source:      h.Source,
			PublishedAt: h.PublishedAt.Format(time.RFC3339),
			Link:        h.Link,
		}
	}

	return SearchResponse{
		Topic:        rec.Topic,
		Days:         rec.Days,
		Headlines:    headlines,
		ArticleCount: len(rec.Headlines),
		Summary:      rec.Summary,
		ModelUsed:    rec.ModelUsed,
		Cached:       cached,
		Timestamp:    rec.Timestamp.Format(time.RFC3339),
	}
}
