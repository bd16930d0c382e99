package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.transactions = append(r.transactions, txn)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, txns []*entity.Transaction) error {
	r.transactions = append(r.transactions, txns...)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID != filter.UserID {
			continue
		}
		if filter.Profile != nil && txn.Profile != *filter.Profile {
			continue
		}
		result = append(result, txn)
	}
	return result, nil
}

func (r *fakeTransactionRepo) FindByCardAndPeriod(_ context.Context, _ uuid.UUID, _ entity.InvoicePeriod) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) GetInvoiceStats(_ context.Context, _ uuid.UUID, _ entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	return &entity.InvoiceStats{Total: decimal.Zero, Pending: decimal.Zero}, nil
}

func (r *fakeTransactionRepo) SumPendingByCard(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeTransactionRepo) SettlePeriod(_ context.Context, _ uuid.UUID, _ entity.InvoicePeriod) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) CountByCard(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func txn(userID uuid.UUID, amount string, txnType entity.TransactionType, status entity.TransactionStatus, date time.Time, profile entity.ProfileType) *entity.Transaction {
	return entity.NewTransaction(
		userID, "t", decimal.RequireFromString(amount), txnType, nil,
		date, status, entity.PaymentMethodPix, profile,
	)
}

func TestGetSummaryUseCase(t *testing.T) {
	userID := uuid.New()
	now := func() time.Time {
		return time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)
	}
	thisMonth := time.Date(2024, time.February, 3, 12, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)

	t.Run("pending amounts never move the balance", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(userID, "3000.00", entity.TransactionTypeIncome, entity.TransactionStatusCompleted, lastMonth, entity.ProfilePersonal),
			txn(userID, "500.00", entity.TransactionTypeExpense, entity.TransactionStatusCompleted, thisMonth, entity.ProfilePersonal),
			txn(userID, "250.00", entity.TransactionTypeExpense, entity.TransactionStatusPending, thisMonth, entity.ProfilePersonal),
			txn(userID, "100.00", entity.TransactionTypeIncome, entity.TransactionStatusPending, thisMonth, entity.ProfilePersonal),
		}}
		uc := NewGetSummaryUseCase(repo).WithClock(now)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := output.Balance.StringFixed(2); got != "2500.00" {
			t.Errorf("expected balance 2500.00, got %s", got)
		}
		if got := output.TotalIncome.StringFixed(2); got != "3000.00" {
			t.Errorf("expected total income 3000.00, got %s", got)
		}
		if got := output.TotalExpense.StringFixed(2); got != "500.00" {
			t.Errorf("expected total expense 500.00, got %s", got)
		}
		if got := output.PendingExpense.StringFixed(2); got != "250.00" {
			t.Errorf("expected pending expense 250.00, got %s", got)
		}
		if got := output.PendingIncome.StringFixed(2); got != "100.00" {
			t.Errorf("expected pending income 100.00, got %s", got)
		}
	})

	t.Run("monthly balance only counts the current month", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(userID, "3000.00", entity.TransactionTypeIncome, entity.TransactionStatusCompleted, lastMonth, entity.ProfilePersonal),
			txn(userID, "1200.00", entity.TransactionTypeIncome, entity.TransactionStatusCompleted, thisMonth, entity.ProfilePersonal),
			txn(userID, "200.00", entity.TransactionTypeExpense, entity.TransactionStatusCompleted, thisMonth, entity.ProfilePersonal),
		}}
		uc := NewGetSummaryUseCase(repo).WithClock(now)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.MonthlyBalance.StringFixed(2); got != "1000.00" {
			t.Errorf("expected monthly balance 1000.00, got %s", got)
		}
	})

	t.Run("profile filter separates the ledgers", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(userID, "1000.00", entity.TransactionTypeIncome, entity.TransactionStatusCompleted, thisMonth, entity.ProfilePersonal),
			txn(userID, "9000.00", entity.TransactionTypeIncome, entity.TransactionStatusCompleted, thisMonth, entity.ProfileBusiness),
		}}
		personal := entity.ProfilePersonal
		uc := NewGetSummaryUseCase(repo).WithClock(now)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Profile: &personal})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Balance.StringFixed(2); got != "1000.00" {
			t.Errorf("expected personal balance 1000.00, got %s", got)
		}
	})

	t.Run("empty ledger yields zeros", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeTransactionRepo{}).WithClock(now)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balance.IsZero() || !output.TotalIncome.IsZero() || !output.PendingExpense.IsZero() {
			t.Error("expected all summary figures to be zero")
		}
	})
}
