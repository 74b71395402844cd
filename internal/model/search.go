package model

import (
	"time"

	"headlinesai/pkg/news"
)

const (
	MinLookbackDays = 1
	MaxLookbackDays = 30
)

// SearchRecord is one completed search, as stored in the recent-search
// history.
type SearchRecord struct {
	Topic     string          `json:"topic"`
	Days      int             `json:"days"`
	Timestamp time.Time       `json:"timestamp"`
	Headlines []news.Headline `json:"headlines"`
	Summary   string          `json:"summary"`
	ModelUsed string          `json:"model_used"`
}
