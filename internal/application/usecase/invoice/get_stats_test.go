package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

func TestGetStatsUseCase(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 25, 5, "#820AD1")
	feb := time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	t.Run("sums total and pending for the period", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			cardCharge(userID, card.ID, "40.00", feb, entity.TransactionStatusPending),
			cardCharge(userID, card.ID, "60.00", feb, entity.TransactionStatusCompleted),
			cardCharge(userID, card.ID, "15.00", mar, entity.TransactionStatusPending),
		}}
		uc := NewGetStatsUseCase(newFakeCardRepo(card), txnRepo, nil)

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: userID, CardID: card.ID, Month: 2, Year: 2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Total.StringFixed(2) != "100.00" {
			t.Errorf("expected total 100.00, got %s", output.Total)
		}
		if output.Pending.StringFixed(2) != "40.00" {
			t.Errorf("expected pending 40.00, got %s", output.Pending)
		}
	})

	t.Run("pending never exceeds total", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			cardCharge(userID, card.ID, "10.00", feb, entity.TransactionStatusPending),
			cardCharge(userID, card.ID, "20.00", feb, entity.TransactionStatusCompleted),
		}}
		uc := NewGetStatsUseCase(newFakeCardRepo(card), txnRepo, nil)

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: userID, CardID: card.ID, Month: 2, Year: 2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Pending.GreaterThan(output.Total) {
			t.Errorf("pending %s exceeds total %s", output.Pending, output.Total)
		}
	})

	t.Run("empty period reports zeros", func(t *testing.T) {
		uc := NewGetStatsUseCase(newFakeCardRepo(card), &fakeTransactionRepo{}, nil)

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: userID, CardID: card.ID, Month: 6, Year: 2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Total.IsZero() || !output.Pending.IsZero() {
			t.Errorf("expected zeros, got total=%s pending=%s", output.Total, output.Pending)
		}
	})

	t.Run("unknown card fails with card not found", func(t *testing.T) {
		uc := NewGetStatsUseCase(newFakeCardRepo(), &fakeTransactionRepo{}, nil)

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: userID, CardID: uuid.New(), Month: 2, Year: 2024,
		})
		if !errors.Is(err, domainerror.ErrCardNotFound) {
			t.Errorf("expected ErrCardNotFound, got %v", err)
		}
	})

	t.Run("card of another user is not visible", func(t *testing.T) {
		uc := NewGetStatsUseCase(newFakeCardRepo(card), &fakeTransactionRepo{}, nil)

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: uuid.New(), CardID: card.ID, Month: 2, Year: 2024,
		})
		if !errors.Is(err, domainerror.ErrCardNotFound) {
			t.Errorf("expected ErrCardNotFound, got %v", err)
		}
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		uc := NewGetStatsUseCase(newFakeCardRepo(card), &fakeTransactionRepo{}, nil)

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID: userID, CardID: card.ID, Month: 13, Year: 2024,
		})
		if !errors.Is(err, domainerror.ErrInvalidInvoicePeriod) {
			t.Errorf("expected ErrInvalidInvoicePeriod, got %v", err)
		}
	})

	t.Run("second query is served from the cache", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			cardCharge(userID, card.ID, "40.00", feb, entity.TransactionStatusPending),
		}}
		cache := newFakeCache()
		uc := NewGetStatsUseCase(newFakeCardRepo(card), txnRepo, cache)

		input := GetStatsInput{UserID: userID, CardID: card.ID, Month: 2, Year: 2024}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Mutate the store behind the cache's back; the cached value must win.
		txnRepo.transactions = nil
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Total.StringFixed(2) != "40.00" {
			t.Errorf("expected cached total 40.00, got %s", output.Total)
		}
	})
}
