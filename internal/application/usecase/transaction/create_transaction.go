// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Type          entity.TransactionType
	CategoryID    *uuid.UUID
	Date          time.Time
	Status        entity.TransactionStatus
	PaymentMethod entity.PaymentMethod
	Profile       entity.ProfileType
	CardID        *uuid.UUID
	Installments  int // 0 or 1 means a single charge
}

// CreateTransactionOutput represents the output of transaction creation.
// Credit-card purchases split into installments produce one transaction per
// installment; everything else produces exactly one.
type CreateTransactionOutput struct {
	Transactions []*entity.Transaction
}

// CreateTransactionUseCase handles transaction creation, including the
// installment fan-out for credit-card purchases.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
	cache           adapter.InvoiceStatsCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
	cache adapter.InvoiceStatsCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
//
// Credit-card purchases are always persisted as pending, regardless of the
// requested status: they only settle when their invoice is paid. A purchase
// with N installments becomes N rows sharing the purchase date, each carrying
// its own invoice date and a "(i/N)" description suffix.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	purchaseDate := valueobject.NormalizeToNoon(input.Date)

	if input.PaymentMethod != entity.PaymentMethodCreditCard {
		txn := entity.NewTransaction(
			input.UserID,
			input.Description,
			input.Amount,
			input.Type,
			input.CategoryID,
			purchaseDate,
			input.Status,
			input.PaymentMethod,
			input.Profile,
		)

		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}

		return &CreateTransactionOutput{Transactions: []*entity.Transaction{txn}}, nil
	}

	card, err := uc.cardRepo.FindByID(ctx, *input.CardID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}
	if card.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	count := input.Installments
	if count < 1 {
		count = 1
	}

	installments := valueobject.GenerateInstallments(
		input.Amount,
		count,
		purchaseDate,
		card.ClosingDay,
		card.DueDay,
	)

	transactions := make([]*entity.Transaction, 0, len(installments))
	totalInstallments := count
	for _, inst := range installments {
		description := input.Description
		if count > 1 {
			description = fmt.Sprintf("%s (%d/%d)", input.Description, inst.InstallmentNumber, count)
		}

		txn := entity.NewTransaction(
			input.UserID,
			description,
			inst.Amount,
			input.Type,
			input.CategoryID,
			purchaseDate,
			entity.TransactionStatusPending,
			entity.PaymentMethodCreditCard,
			input.Profile,
		)
		txn.CardID = input.CardID
		invoiceDate := inst.InvoiceDate
		txn.InvoiceDate = &invoiceDate
		number := inst.InstallmentNumber
		txn.InstallmentNumber = &number
		txn.TotalInstallments = &totalInstallments

		transactions = append(transactions, txn)
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create installments: %w", err)
	}

	uc.invalidateCard(ctx, *input.CardID)

	slog.Info("credit card purchase created",
		"card_id", input.CardID,
		"installments", count,
		"amount", input.Amount,
	)

	return &CreateTransactionOutput{Transactions: transactions}, nil
}

func (uc *CreateTransactionUseCase) validate(input CreateTransactionInput) error {
	switch input.Type {
	case entity.TransactionTypeExpense, entity.TransactionTypeIncome:
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be expense or income",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description too long",
			domainerror.ErrDescriptionTooLong,
		)
	}

	switch input.PaymentMethod {
	case entity.PaymentMethodCreditCard,
		entity.PaymentMethodDebitCard,
		entity.PaymentMethodPix,
		entity.PaymentMethodCash,
		entity.PaymentMethodTransfer,
		entity.PaymentMethodBill:
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if input.PaymentMethod == entity.PaymentMethodCreditCard {
		if input.CardID == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingCardReference,
				"credit card transactions require a card",
				domainerror.ErrMissingCardReference,
			)
		}
		if input.Installments < 0 {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"installment count must be at least 1",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
	}

	return nil
}

// invalidateCard drops the card's cached invoice stats after a successful
// write. Failures only cost freshness, never correctness.
func (uc *CreateTransactionUseCase) invalidateCard(ctx context.Context, cardID uuid.UUID) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateCard(ctx, cardID); err != nil {
		slog.Warn("failed to invalidate invoice stats cache", "card_id", cardID, "error", err)
	}
}
