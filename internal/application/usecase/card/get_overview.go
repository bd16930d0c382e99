// Package card contains credit card-related use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/invoice"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard card overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput represents the dashboard card overview.
type GetOverviewOutput struct {
	Cards []*entity.CardOverview
}

// GetOverviewUseCase builds the dashboard card widget data: per card, the
// available limit and the resolved current invoice period.
type GetOverviewUseCase struct {
	cardRepo        adapter.CardRepository
	transactionRepo adapter.TransactionRepository
	resolver        *invoice.CurrentPeriodResolver
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	cardRepo adapter.CardRepository,
	transactionRepo adapter.TransactionRepository,
	resolver *invoice.CurrentPeriodResolver,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
		resolver:        resolver,
	}
}

// Execute computes the overview for every card of the user.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	overviews := make([]*entity.CardOverview, 0, len(cards))
	for _, c := range cards {
		// The limit is consumed by every unpaid charge, future installments
		// included, not only by the displayed period.
		pendingTotal, err := uc.transactionRepo.SumPendingByCard(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum pending charges for card %s: %w", c.ID, err)
		}

		resolved, err := uc.resolver.Resolve(ctx, c)
		if err != nil {
			return nil, err
		}

		period := resolved.Period
		overviews = append(overviews, &entity.CardOverview{
			Card:           c,
			AvailableLimit: c.AvailableLimit(pendingTotal),
			Period:         &period,
			MonthName:      resolved.MonthName,
			Total:          resolved.Total,
			Pending:        resolved.Pending,
		})
	}

	return &GetOverviewOutput{Cards: overviews}, nil
}
