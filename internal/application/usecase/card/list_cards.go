// Package card contains credit card-related use cases.
package card

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListCardsInput represents the input for listing credit cards.
type ListCardsInput struct {
	UserID uuid.UUID
}

// ListCardsOutput represents the output of listing credit cards.
type ListCardsOutput struct {
	Cards []*entity.CreditCard
}

// ListCardsUseCase handles listing a user's credit cards.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute retrieves all cards for the user.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListCardsOutput{Cards: cards}, nil
}
