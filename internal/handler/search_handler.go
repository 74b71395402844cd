package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"headlinesai/internal/model"
	"headlinesai/pkg/llm"
	"headlinesai/pkg/news"

	"github.com/gin-gonic/gin"
)

const noDataSummary = "No headlines to summarize."

type HeadlineSource interface {
	Search(ctx context.Context, topic string, days int) ([]news.Headline, error)
	Name() string
}

type HistoryStore interface {
	Add(ctx context.Context, rec model.SearchRecord) error
	Recent(ctx context.Context, limit int) ([]model.SearchRecord, error)
	GetByTopic(ctx context.Context, topic string) (*model.SearchRecord, error)
	Clear(ctx context.Context) error
	Enabled() bool
}

type SearchHandler struct {
	headlines  HeadlineSource
	summarizer llm.Summarizer
	history    HistoryStore
}

func NewSearchHandler(headlines HeadlineSource, summarizer llm.Summarizer, history HistoryStore) *SearchHandler {
	return &SearchHandler{
		headlines:  headlines,
		summarizer: summarizer,
		history:    history,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	if req.Days < model.MinLookbackDays || req.Days > model.MaxLookbackDays {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Days must be between %d and %d", model.MinLookbackDays, model.MaxLookbackDays),
		})
		return
	}

	ctx := c.Request.Context()

	cached, err := h.history.GetByTopic(ctx, req.Topic)
	if err != nil {
		slog.Warn("error reading search history", "topic", req.Topic, "error", err)
	} else if cached != nil && cached.Days == req.Days {
		slog.Info("serving cached search", "topic", req.Topic, "days", req.Days)
		c.JSON(http.StatusOK, toSearchResponse(*cached, true))
		return
	}

	headlines, err := h.headlines.Search(ctx, req.Topic, req.Days)
	if err != nil {
		slog.Error("error fetching headlines", "source", h.headlines.Name(), "topic", req.Topic, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news feed"})
		return
	}

	rec := model.SearchRecord{
		Topic:     req.Topic,
		Days:      req.Days,
		Timestamp: time.Now(),
		Headlines: headlines,
	}

	// The summarizer is never invoked on an empty headline set.
	if len(headlines) == 0 {
		slog.Info("no headlines found", "topic", req.Topic, "days", req.Days)
		rec.Summary = noDataSummary
		c.JSON(http.StatusOK, toSearchResponse(rec, false))
		return
	}

	inputs := make([]llm.SummaryInput, len(headlines))
	for i, hl := range headlines {
		inputs[i] = llm.SummaryInput{
			Title:       hl.Title,
			Source:      hl.Source,
			PublishedAt: hl.PublishedAt,
		}
	}

	result, err := h.summarizer.Summarize(ctx, inputs)
	if err != nil {
		slog.Error("error generating summary", "topic", req.Topic, "error", err)
		res := toSearchResponse(rec, false)
		if errors.Is(err, llm.ErrUnauthorized) {
			res.SummaryError = "Summarization service rejected the API key"
		} else {
			res.SummaryError = "Summary generation failed"
		}
		c.JSON(http.StatusOK, res)
		return
	}

	rec.Summary = result.Text
	rec.ModelUsed = result.ModelUsed

	if err := h.history.Add(ctx, rec); err != nil {
		slog.Warn("error saving search to history", "topic", req.Topic, "error", err)
	}

	c.JSON(http.StatusOK, toSearchResponse(rec, false))
}
