// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	Date          time.Time       `gorm:"type:timestamp;not null;index"`
	InvoiceDate   *time.Time      `gorm:"type:timestamp;index"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(15);not null"`
	Profile       string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Credit card fields
	CardID            *uuid.UUID `gorm:"type:uuid;index"`
	InstallmentNumber *int       `gorm:"type:integer"`
	TotalInstallments *int       `gorm:"type:integer"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel   `gorm:"foreignKey:CategoryID;references:ID"`
	Card     *CreditCardModel `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		Description:       m.Description,
		Amount:            m.Amount,
		Type:              entity.TransactionType(m.Type),
		CategoryID:        m.CategoryID,
		Date:              m.Date,
		InvoiceDate:       m.InvoiceDate,
		Status:            entity.TransactionStatus(m.Status),
		PaymentMethod:     entity.PaymentMethod(m.PaymentMethod),
		Profile:           entity.ProfileType(m.Profile),
		CardID:            m.CardID,
		InstallmentNumber: m.InstallmentNumber,
		TotalInstallments: m.TotalInstallments,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		Description:       transaction.Description,
		Amount:            transaction.Amount,
		Type:              string(transaction.Type),
		CategoryID:        transaction.CategoryID,
		Date:              transaction.Date,
		InvoiceDate:       transaction.InvoiceDate,
		Status:            string(transaction.Status),
		PaymentMethod:     string(transaction.PaymentMethod),
		Profile:           string(transaction.Profile),
		CardID:            transaction.CardID,
		InstallmentNumber: transaction.InstallmentNumber,
		TotalInstallments: transaction.TotalInstallments,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
