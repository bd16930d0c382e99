// Package invoice contains invoice aggregation and payment use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// statsLoader resolves invoice stats for a (card, period), consulting the
// cache before the aggregation query. The cache is optional and advisory:
// nil cache, cache misses and cache failures all fall through to the store,
// so dropping the cache never changes an observable result.
type statsLoader struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.InvoiceStatsCache
}

func (l statsLoader) load(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	if l.cache != nil {
		cached, err := l.cache.Get(ctx, cardID, period)
		if err != nil {
			slog.Debug("Invoice stats cache read failed",
				"cardID", cardID,
				"period", period.String(),
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := l.transactionRepo.GetInvoiceStats(ctx, cardID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invoice stats: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, cardID, period, stats); err != nil {
			slog.Debug("Invoice stats cache write failed",
				"cardID", cardID,
				"period", period.String(),
				"error", err,
			)
		}
	}

	return stats, nil
}

// invalidate drops the card's cached periods after a successful store write.
func (l statsLoader) invalidate(ctx context.Context, cardID uuid.UUID) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidateCard(ctx, cardID); err != nil {
		slog.Warn("Invoice stats cache invalidation failed",
			"cardID", cardID,
			"error", err,
		)
	}
}
