package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freshmart/inventory-api/internal/core/ports"
)

// SummaryCache caches per-owner stock summaries in Redis as JSON.
// Key format: summary:<owner_id>
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary for the owner, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, ownerID string) (*ports.StockSummary, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.StockSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("summary cache decode: %w", err)
	}
	return &summary, nil
}

// Set stores the summary with the configured TTL.
func (c *SummaryCache) Set(ctx context.Context, ownerID string, summary *ports.StockSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, c.ttl).Err()
}

// Invalidate drops the cached summary for the owner.
func (c *SummaryCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *SummaryCache) key(ownerID string) string {
	return "summary:" + ownerID
}
