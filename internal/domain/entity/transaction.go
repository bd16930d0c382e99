// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionStatus represents the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodBill       PaymentMethod = "bill"
)

// ProfileType separates personal and business ledgers.
type ProfileType string

const (
	ProfilePersonal ProfileType = "personal"
	ProfileBusiness ProfileType = "business"
)

// Transaction represents a financial transaction in the Finance Dashboard
// system. Amounts are always positive; Type carries the direction.
//
// Credit-card charges additionally carry the card reference, the due date of
// the invoice period they belong to, and their installment position. They are
// created pending and only settled by an invoice payment.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Type              TransactionType
	CategoryID        *uuid.UUID
	Date              time.Time  // Purchase date, normalized to noon
	InvoiceDate       *time.Time // Invoice due date; credit-card charges only
	Status            TransactionStatus
	PaymentMethod     PaymentMethod
	Profile           ProfileType
	CardID            *uuid.UUID
	InstallmentNumber *int
	TotalInstallments *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	date time.Time,
	status TransactionStatus,
	paymentMethod PaymentMethod,
	profile ProfileType,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		Amount:        amount,
		Type:          transactionType,
		CategoryID:    categoryID,
		Date:          date,
		Status:        status,
		PaymentMethod: paymentMethod,
		Profile:       profile,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsCreditCard reports whether the transaction is a credit-card charge.
func (t *Transaction) IsCreditCard() bool {
	return t.PaymentMethod == PaymentMethodCreditCard && t.CardID != nil
}

// InInvoicePeriod reports whether the transaction's invoice date falls in the
// given period. Transactions without an invoice date belong to no period.
func (t *Transaction) InInvoicePeriod(period InvoicePeriod) bool {
	if t.InvoiceDate == nil {
		return false
	}
	return period.Contains(*t.InvoiceDate)
}
