// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID  uuid.UUID
	Profile *entity.ProfileType
}

// GetSummaryOutput aggregates the user's ledger for the dashboard header.
//
// Balance only moves on completed transactions; pending amounts are reported
// separately so unpaid invoices never inflate the available money.
type GetSummaryOutput struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	MonthlyBalance decimal.Decimal
	PendingIncome  decimal.Decimal
	PendingExpense decimal.Decimal
}

// GetSummaryUseCase computes the dashboard financial summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Used in tests.
func (uc *GetSummaryUseCase) WithClock(now func() time.Time) *GetSummaryUseCase {
	uc.now = now
	return uc
}

// Execute computes the summary over all of the user's transactions.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:  input.UserID,
		Profile: input.Profile,
	})
	if err != nil {
		return nil, err
	}

	output := &GetSummaryOutput{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		Balance:        decimal.Zero,
		MonthlyBalance: decimal.Zero,
		PendingIncome:  decimal.Zero,
		PendingExpense: decimal.Zero,
	}

	currentMonth := entity.PeriodOf(uc.now())

	for _, txn := range transactions {
		if txn.Status == entity.TransactionStatusPending {
			switch txn.Type {
			case entity.TransactionTypeIncome:
				output.PendingIncome = output.PendingIncome.Add(txn.Amount)
			case entity.TransactionTypeExpense:
				output.PendingExpense = output.PendingExpense.Add(txn.Amount)
			}
			continue
		}

		switch txn.Type {
		case entity.TransactionTypeIncome:
			output.TotalIncome = output.TotalIncome.Add(txn.Amount)
			output.Balance = output.Balance.Add(txn.Amount)
			if currentMonth.Contains(txn.Date) {
				output.MonthlyBalance = output.MonthlyBalance.Add(txn.Amount)
			}
		case entity.TransactionTypeExpense:
			output.TotalExpense = output.TotalExpense.Add(txn.Amount)
			output.Balance = output.Balance.Sub(txn.Amount)
			if currentMonth.Contains(txn.Date) {
				output.MonthlyBalance = output.MonthlyBalance.Sub(txn.Amount)
			}
		}
	}

	return output, nil
}
