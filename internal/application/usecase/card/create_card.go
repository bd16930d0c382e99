// Package card contains credit card-related use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// MaxCardNameLength is the maximum allowed length for card names.
const MaxCardNameLength = 100

// CreateCardInput represents the input for credit card creation.
type CreateCardInput struct {
	UserID      uuid.UUID
	Name        string
	LimitAmount decimal.Decimal
	ClosingDay  int
	DueDay      int
	Color       string
}

// CreateCardOutput represents the output of credit card creation.
type CreateCardOutput struct {
	Card *entity.CreditCard
}

// CreateCardUseCase handles credit card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card creation. Closing and due day are
// validated here so the billing-cycle functions can stay trusting.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if input.ClosingDay < 1 || input.ClosingDay > 31 {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidClosingDay,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}

	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardLimit,
			"card limit must be positive",
			domainerror.ErrInvalidCardLimit,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCardColor
	}

	card := entity.NewCreditCard(
		input.UserID,
		input.Name,
		input.LimitAmount,
		input.ClosingDay,
		input.DueDay,
		color,
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
}
