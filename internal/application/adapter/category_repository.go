// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a given user, optionally
	// filtered by profile.
	FindByUser(ctx context.Context, userID uuid.UUID, profile *entity.ProfileType) ([]*entity.Category, error)

	// Delete soft-deletes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
