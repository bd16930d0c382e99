// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category in the Finance Dashboard system.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      TransactionType
	Color     string
	Icon      string
	Profile   ProfileType
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity. Defaulting of color and icon is
// applied in the application layer before calling this constructor.
func NewCategory(
	userID uuid.UUID,
	name string,
	categoryType TransactionType,
	color string,
	icon string,
	profile ProfileType,
) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Color:     color,
		Icon:      icon,
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
