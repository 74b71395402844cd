package cache

import (
	"context"

	"headlinesai/internal/model"
)

// NoopCache stands in when no Redis is configured; the pipeline runs
// with history disabled.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (*NoopCache) Add(ctx context.Context, rec model.SearchRecord) error {
	return nil
}

func (*NoopCache) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	return nil, nil
}

func (*NoopCache) GetByTopic(ctx context.Context, topic string) (*model.SearchRecord, error) {
	return nil, nil
}

func (*NoopCache) Clear(ctx context.Context) error {
	return nil
}

func (*NoopCache) Enabled() bool {
	return false
}
