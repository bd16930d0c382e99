// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction updates.
// Nil fields keep their current value.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	CategoryID    *uuid.UUID
	Date          *time.Time
	Status        *entity.TransactionStatus
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates.
//
// Credit-card charges cannot be settled here: their status is owned by the
// invoice payment flow, so any status change on a card charge is forced back
// to pending.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.InvoiceStatsCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.InvoiceStatsCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if txn.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				"description too long",
				domainerror.ErrDescriptionTooLong,
			)
		}
		txn.Description = *input.Description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		txn.Amount = *input.Amount
	}

	if input.CategoryID != nil {
		txn.CategoryID = input.CategoryID
	}

	if input.Date != nil {
		txn.Date = valueobject.NormalizeToNoon(*input.Date)
	}

	if input.Status != nil {
		txn.Status = *input.Status
	}
	if txn.IsCreditCard() {
		txn.Status = entity.TransactionStatusPending
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if txn.CardID != nil && uc.cache != nil {
		// Best effort; a stale entry is rebuilt on the next aggregation.
		_ = uc.cache.InvalidateCard(ctx, *txn.CardID)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
