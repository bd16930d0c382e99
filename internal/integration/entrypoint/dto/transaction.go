// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=expense income"`
	CategoryID    *string         `json:"category_id,omitempty"`
	Date          time.Time       `json:"date" binding:"required"`
	Status        string          `json:"status,omitempty" binding:"omitempty,oneof=pending completed"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=credit_card debit_card pix cash transfer bill"`
	Profile       string          `json:"profile" binding:"required,oneof=personal business"`
	CardID        *string         `json:"card_id,omitempty"`
	Installments  int             `json:"installments,omitempty" binding:"omitempty,min=1,max=18"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=pending completed"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	CategoryID        *string         `json:"category_id,omitempty"`
	Date              time.Time       `json:"date"`
	InvoiceDate       *time.Time      `json:"invoice_date,omitempty"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	Profile           string          `json:"profile"`
	CardID            *string         `json:"card_id,omitempty"`
	InstallmentNumber *int            `json:"installment_number,omitempty"`
	TotalInstallments *int            `json:"total_installments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                txn.ID.String(),
		Description:       txn.Description,
		Amount:            txn.Amount,
		Type:              string(txn.Type),
		Date:              txn.Date,
		InvoiceDate:       txn.InvoiceDate,
		Status:            string(txn.Status),
		PaymentMethod:     string(txn.PaymentMethod),
		Profile:           string(txn.Profile),
		InstallmentNumber: txn.InstallmentNumber,
		TotalInstallments: txn.TotalInstallments,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}

	if txn.CategoryID != nil {
		categoryID := txn.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if txn.CardID != nil {
		cardID := txn.CardID.String()
		response.CardID = &cardID
	}

	return response
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
