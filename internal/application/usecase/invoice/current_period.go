// Package invoice contains invoice aggregation and payment use cases.
package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ResolvedPeriod is the invoice period a card should present as current,
// together with its aggregates and a localized month name for display.
type ResolvedPeriod struct {
	Period    entity.InvoicePeriod
	MonthName string
	Total     decimal.Decimal
	Pending   decimal.Decimal
}

// CurrentPeriodResolver decides which invoice period is "current" for a card.
//
// Rule, applied uniformly for every view: start at the present calendar
// month. When that period has charges and all of them are settled, advance
// exactly one month and re-aggregate. A period with zero total is always
// current — there is no data to justify advancing past it.
type CurrentPeriodResolver struct {
	loader statsLoader
	now    func() time.Time
}

// NewCurrentPeriodResolver creates a new CurrentPeriodResolver instance.
// cache may be nil.
func NewCurrentPeriodResolver(
	transactionRepo adapter.TransactionRepository,
	cache adapter.InvoiceStatsCache,
) *CurrentPeriodResolver {
	return &CurrentPeriodResolver{
		loader: statsLoader{transactionRepo: transactionRepo, cache: cache},
		now:    time.Now,
	}
}

// WithClock overrides the resolver's time source. Used by tests.
func (r *CurrentPeriodResolver) WithClock(now func() time.Time) *CurrentPeriodResolver {
	r.now = now
	return r
}

// Resolve returns the current invoice period for the card.
func (r *CurrentPeriodResolver) Resolve(ctx context.Context, card *entity.CreditCard) (*ResolvedPeriod, error) {
	period := entity.PeriodOf(r.now())

	stats, err := r.loader.load(ctx, card.ID, period)
	if err != nil {
		return nil, err
	}

	// A fully-paid period auto-advances the view to the next one, once.
	if stats.IsSettled() {
		period = period.Next()
		stats, err = r.loader.load(ctx, card.ID, period)
		if err != nil {
			return nil, err
		}
	}

	return &ResolvedPeriod{
		Period:    period,
		MonthName: period.MonthName(),
		Total:     stats.Total,
		Pending:   stats.Pending,
	}, nil
}
