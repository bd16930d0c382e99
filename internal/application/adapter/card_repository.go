// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CardRepository defines the interface for credit card persistence operations.
type CardRepository interface {
	// Create creates a new credit card in the database.
	Create(ctx context.Context, card *entity.CreditCard) error

	// FindByID retrieves a credit card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// FindByUser retrieves all credit cards for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error)

	// Delete removes a credit card from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
