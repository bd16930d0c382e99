// Package card contains credit card-related use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteCardInput represents the input for credit card deletion.
type DeleteCardInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// DeleteCardUseCase handles credit card deletion logic.
// Deletion is refused while transactions still reference the card, so the
// ledger never holds a dangling card reference.
type DeleteCardUseCase struct {
	cardRepo        adapter.CardRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(
	cardRepo adapter.CardRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the credit card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return err
	}

	if card.UserID != input.UserID {
		return domainerror.NewCardError(
			domainerror.ErrCodeNotAuthorizedCard,
			"not authorized to modify card",
			domainerror.ErrNotAuthorizedToModifyCard,
		)
	}

	count, err := uc.transactionRepo.CountByCard(ctx, input.CardID)
	if err != nil {
		return fmt.Errorf("failed to count card transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardHasTransactions,
			"card has transactions and cannot be deleted",
			domainerror.ErrCardHasTransactions,
		)
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
