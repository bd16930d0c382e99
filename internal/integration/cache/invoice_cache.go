// Package cache implements Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// statsTTL bounds staleness if an invalidation is ever lost.
const statsTTL = 10 * time.Minute

// statsPayload is the wire form of entity.InvoiceStats in Redis.
type statsPayload struct {
	Total   decimal.Decimal `json:"total"`
	Pending decimal.Decimal `json:"pending"`
}

// invoiceStatsCache implements adapter.InvoiceStatsCache on Redis.
//
// Keys follow "invoice:stats:{cardID}:{YYYY-MM}" so a card's entries share a
// prefix and can be dropped together on invalidation.
type invoiceStatsCache struct {
	client *redis.Client
}

// NewInvoiceStatsCache creates a new Redis invoice stats cache instance.
func NewInvoiceStatsCache(client *redis.Client) adapter.InvoiceStatsCache {
	return &invoiceStatsCache{
		client: client,
	}
}

func statsKey(cardID uuid.UUID, period entity.InvoicePeriod) string {
	return fmt.Sprintf("invoice:stats:%s:%s", cardID, period)
}

// Get returns the cached stats for the card's period, or (nil, nil) on a miss.
func (c *invoiceStatsCache) Get(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	raw, err := c.client.Get(ctx, statsKey(cardID, period)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var payload statsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		// Corrupt entry; treat as a miss so the caller rebuilds it.
		return nil, nil
	}

	return &entity.InvoiceStats{Total: payload.Total, Pending: payload.Pending}, nil
}

// Set stores the stats for the card's period.
func (c *invoiceStatsCache) Set(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod, stats *entity.InvoiceStats) error {
	raw, err := json.Marshal(statsPayload{Total: stats.Total, Pending: stats.Pending})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(cardID, period), raw, statsTTL).Err()
}

// InvalidateCard removes every cached period of the card.
func (c *invoiceStatsCache) InvalidateCard(ctx context.Context, cardID uuid.UUID) error {
	pattern := fmt.Sprintf("invoice:stats:%s:*", cardID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
