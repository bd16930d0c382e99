// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	Profile   *entity.ProfileType
	Type      *entity.TransactionType
	Status    *entity.TransactionStatus
	CardID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive description match
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates multiple transactions atomically. It is used for
	// installment fan-out: either every installment row lands or none does.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByCardAndPeriod retrieves a card's transactions whose invoice date
	// falls within the given period. Transactions without an invoice date are
	// never returned.
	FindByCardAndPeriod(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) ([]*entity.Transaction, error)

	// GetInvoiceStats aggregates a card's invoice period: full amount and the
	// portion still pending.
	GetInvoiceStats(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error)

	// SumPendingByCard sums the amounts of all pending transactions for a
	// card across every period. Used for the available-limit computation.
	SumPendingByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)

	// SettlePeriod transitions every pending transaction of the card whose
	// invoice date falls in the period to completed. Returns the number of
	// settled transactions.
	SettlePeriod(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (int64, error)

	// CountByCard counts transactions referencing a card, across all periods.
	CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
