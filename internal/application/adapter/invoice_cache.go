// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// InvoiceStatsCache caches per-(card, period) invoice aggregates.
//
// The cache is strictly an optimization: every value is reproducible from the
// transaction store, and a miss or cache failure falls through to the
// aggregation query. Writers invalidate a card's entries only after the store
// mutation has succeeded.
type InvoiceStatsCache interface {
	// Get returns the cached stats for the card's period, or (nil, nil) on a miss.
	Get(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error)

	// Set stores the stats for the card's period.
	Set(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod, stats *entity.InvoiceStats) error

	// InvalidateCard removes every cached period of the card.
	InvalidateCard(ctx context.Context, cardID uuid.UUID) error
}
