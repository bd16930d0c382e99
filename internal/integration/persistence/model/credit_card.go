// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ClosingDay  int             `gorm:"not null"`
	DueDay      int             `gorm:"not null"`
	Color       string          `gorm:"type:varchar(7);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		LimitAmount: m.LimitAmount,
		ClosingDay:  m.ClosingDay,
		DueDay:      m.DueDay,
		Color:       m.Color,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:          card.ID,
		UserID:      card.UserID,
		Name:        card.Name,
		LimitAmount: card.LimitAmount,
		ClosingDay:  card.ClosingDay,
		DueDay:      card.DueDay,
		Color:       card.Color,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
