// Package invoice contains invoice aggregation and payment use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// PayInvoiceInput represents the input for the invoice payment operation.
type PayInvoiceInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Month  int
	Year   int
}

// PayInvoiceOutput represents the result of the invoice payment operation.
type PayInvoiceOutput struct {
	SettledCount int64
}

// PayInvoiceUseCase settles an invoice period: every pending transaction of
// the card whose invoice date falls in the period transitions to completed.
// The transition is all-or-nothing per period; partial payment is not
// supported, and there is no reverse operation.
type PayInvoiceUseCase struct {
	cardRepo        adapter.CardRepository
	transactionRepo adapter.TransactionRepository
	loader          statsLoader
}

// NewPayInvoiceUseCase creates a new PayInvoiceUseCase instance. cache may be nil.
func NewPayInvoiceUseCase(
	cardRepo adapter.CardRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.InvoiceStatsCache,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
		loader:          statsLoader{transactionRepo: transactionRepo, cache: cache},
	}
}

// Execute performs the bulk settlement. The card is verified before any
// mutation; on store failure nothing else changes (fail-closed), and the
// cache is only invalidated after the store write succeeds.
func (uc *PayInvoiceUseCase) Execute(ctx context.Context, input PayInvoiceInput) (*PayInvoiceOutput, error) {
	period, err := periodFromInput(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	if err := checkCardOwnership(ctx, uc.cardRepo, input.CardID, input.UserID); err != nil {
		return nil, err
	}

	settled, err := uc.transactionRepo.SettlePeriod(ctx, input.CardID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to settle invoice period: %w", err)
	}

	uc.loader.invalidate(ctx, input.CardID)

	slog.Info("Invoice period settled",
		"cardID", input.CardID,
		"period", period.String(),
		"settledCount", settled,
	)

	return &PayInvoiceOutput{SettledCount: settled}, nil
}
