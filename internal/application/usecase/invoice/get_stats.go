// Package invoice contains invoice aggregation and payment use cases.
package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// GetStatsInput represents the input for the invoice stats query.
type GetStatsInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Month  int
	Year   int
}

// GetStatsOutput represents the aggregated amounts of one invoice period.
type GetStatsOutput struct {
	Period  entity.InvoicePeriod
	Total   decimal.Decimal
	Pending decimal.Decimal
}

// GetStatsUseCase answers the getInvoiceStats query: full and pending amount
// of a card's invoice for a given (month, year).
type GetStatsUseCase struct {
	cardRepo adapter.CardRepository
	loader   statsLoader
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance. cache may be nil.
func NewGetStatsUseCase(
	cardRepo adapter.CardRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.InvoiceStatsCache,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		cardRepo: cardRepo,
		loader:   statsLoader{transactionRepo: transactionRepo, cache: cache},
	}
}

// Execute aggregates the card's invoice period.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	period, err := periodFromInput(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	if err := checkCardOwnership(ctx, uc.cardRepo, input.CardID, input.UserID); err != nil {
		return nil, err
	}

	stats, err := uc.loader.load(ctx, input.CardID, period)
	if err != nil {
		return nil, err
	}

	return &GetStatsOutput{
		Period:  period,
		Total:   stats.Total,
		Pending: stats.Pending,
	}, nil
}

// periodFromInput validates a (month, year) pair into an InvoicePeriod.
func periodFromInput(month, year int) (entity.InvoicePeriod, error) {
	if month < 1 || month > 12 || year < 1 {
		return entity.InvoicePeriod{}, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoicePeriod,
			"invoice period must be a valid month and year",
			domainerror.ErrInvalidInvoicePeriod,
		)
	}
	return entity.InvoicePeriod{Month: time.Month(month), Year: year}, nil
}

// checkCardOwnership loads the card and verifies it belongs to the user.
// A card owned by someone else is reported as not found.
func checkCardOwnership(ctx context.Context, cardRepo adapter.CardRepository, cardID, userID uuid.UUID) error {
	card, err := cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.UserID != userID {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}
	return nil
}
