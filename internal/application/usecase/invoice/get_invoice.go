// Package invoice contains invoice aggregation and payment use cases.
package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetInvoiceInput represents the input for the invoice detail query.
type GetInvoiceInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Month  int
	Year   int
}

// GetInvoiceOutput represents one invoice period with its transactions, as
// shown on the card detail page.
type GetInvoiceOutput struct {
	Period       entity.InvoicePeriod
	MonthName    string
	Total        decimal.Decimal
	Pending      decimal.Decimal
	Transactions []*entity.Transaction
}

// GetInvoiceUseCase returns an invoice period's aggregates and the
// transactions that belong to it.
type GetInvoiceUseCase struct {
	cardRepo        adapter.CardRepository
	transactionRepo adapter.TransactionRepository
	loader          statsLoader
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance. cache may be nil.
func NewGetInvoiceUseCase(
	cardRepo adapter.CardRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.InvoiceStatsCache,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
		loader:          statsLoader{transactionRepo: transactionRepo, cache: cache},
	}
}

// Execute retrieves the invoice period detail.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	period, err := periodFromInput(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	if err := checkCardOwnership(ctx, uc.cardRepo, input.CardID, input.UserID); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByCardAndPeriod(ctx, input.CardID, period)
	if err != nil {
		return nil, err
	}

	stats, err := uc.loader.load(ctx, input.CardID, period)
	if err != nil {
		return nil, err
	}

	return &GetInvoiceOutput{
		Period:       period,
		MonthName:    period.MonthName(),
		Total:        stats.Total,
		Pending:      stats.Pending,
		Transactions: transactions,
	}, nil
}
