package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	history HistoryStore
}

func NewHistoryHandler(history HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) GetRecent(c *gin.Context) {
	limit := getQueryLimit(c)

	records, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		slog.Error("error fetching search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "History error"})
		return
	}

	res := HistoryResponse{
		Searches: []SearchResponse{},
		Total:    len(records),
	}
	for _, rec := range records {
		res.Searches = append(res.Searches, toSearchResponse(rec, true))
	}

	c.JSON(http.StatusOK, res)
}

func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context()); err != nil {
		slog.Error("error clearing search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "History error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"history": h.history.Enabled(),
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 20
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
