package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"headlinesai/internal/model"

	"github.com/redis/go-redis/v9"
)

const searchesKey = "headlinesai:searches"
const maxRecords = 20

// SearchCache keeps a bounded recent-search history in Redis: newest
// first, one entry per topic, capped at maxRecords.
type SearchCache struct {
	rdb *redis.Client
}

func NewSearchCache(rdb *redis.Client) *SearchCache {
	return &SearchCache{rdb: rdb}
}

func (c *SearchCache) Add(ctx context.Context, rec model.SearchRecord) error {
	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, insertRecord(records, rec))
}

func (c *SearchCache) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (c *SearchCache) GetByTopic(ctx context.Context, topic string) (*model.SearchRecord, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return findByTopic(records, topic), nil
}

func (c *SearchCache) Clear(ctx context.Context) error {
	return c.rdb.Del(ctx, searchesKey).Err()
}

func (c *SearchCache) Enabled() bool {
	return true
}

func (c *SearchCache) load(ctx context.Context) ([]model.SearchRecord, error) {
	raw, err := c.rdb.Get(ctx, searchesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []model.SearchRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *SearchCache) save(ctx context.Context, records []model.SearchRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, searchesKey, raw, 0).Err()
}

func insertRecord(records []model.SearchRecord, rec model.SearchRecord) []model.SearchRecord {
	out := make([]model.SearchRecord, 0, len(records)+1)
	out = append(out, rec)
	for _, r := range records {
		if strings.EqualFold(r.Topic, rec.Topic) {
			continue
		}
		out = append(out, r)
	}
	if len(out) > maxRecords {
		out = out[:maxRecords]
	}
	return out
}

func findByTopic(records []model.SearchRecord, topic string) *model.SearchRecord {
	for i := range records {
		if strings.EqualFold(records[i].Topic, topic) {
			return &records[i]
		}
	}
	return nil
}
