package card

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/invoice"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// fakeCardRepo is an in-memory adapter.CardRepository for tests.
type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func newFakeCardRepo(cards ...*entity.CreditCard) *fakeCardRepo {
	repo := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.CreditCard)}
	for _, c := range cards {
		repo.cards[c.ID] = c
	}
	return repo
}

func (r *fakeCardRepo) Create(_ context.Context, card *entity.CreditCard) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}
	return card, nil
}

func (r *fakeCardRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	var result []*entity.CreditCard
	for _, c := range r.cards {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cards, id)
	return nil
}

// fakeTransactionRepo implements only what the card use cases touch.
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

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepo) FindByCardAndPeriod(_ context.Context, cardID uuid.UUID, period entity.InvoicePeriod) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.CardID != nil && *txn.CardID == cardID && txn.InInvoicePeriod(period) {
			result = append(result, txn)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepo) GetInvoiceStats(_ context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	stats := &entity.InvoiceStats{Total: decimal.Zero, Pending: decimal.Zero}
	for _, txn := range r.transactions {
		if txn.CardID == nil || *txn.CardID != cardID || !txn.InInvoicePeriod(period) {
			continue
		}
		stats.Total = stats.Total.Add(txn.Amount)
		if txn.Status == entity.TransactionStatusPending {
			stats.Pending = stats.Pending.Add(txn.Amount)
		}
	}
	return stats, nil
}

func (r *fakeTransactionRepo) SumPendingByCard(_ context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range r.transactions {
		if txn.CardID != nil && *txn.CardID == cardID && txn.Status == entity.TransactionStatusPending {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) SettlePeriod(_ context.Context, _ uuid.UUID, _ entity.InvoicePeriod) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) CountByCard(_ context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	for _, txn := range r.transactions {
		if txn.CardID != nil && *txn.CardID == cardID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func pendingCharge(userID, cardID uuid.UUID, amount string, invoiceDate time.Time) *entity.Transaction {
	txn := entity.NewTransaction(
		userID,
		"charge",
		decimal.RequireFromString(amount),
		entity.TransactionTypeExpense,
		nil,
		invoiceDate.AddDate(0, -1, 0),
		entity.TransactionStatusPending,
		entity.PaymentMethodCreditCard,
		entity.ProfilePersonal,
	)
	txn.CardID = &cardID
	txn.InvoiceDate = &invoiceDate
	return txn
}

func TestCreateCardUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a card with valid input", func(t *testing.T) {
		repo := newFakeCardRepo()
		uc := NewCreateCardUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCardInput{
			UserID:      userID,
			Name:        "Nubank",
			LimitAmount: decimal.NewFromInt(5000),
			ClosingDay:  25,
			DueDay:      5,
			Color:       "#820AD1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Card.Name != "Nubank" {
			t.Errorf("expected name Nubank, got %s", output.Card.Name)
		}
		if _, ok := repo.cards[output.Card.ID]; !ok {
			t.Error("expected card to be persisted")
		}
	})

	t.Run("defaults the color when empty", func(t *testing.T) {
		uc := NewCreateCardUseCase(newFakeCardRepo())

		output, err := uc.Execute(context.Background(), CreateCardInput{
			UserID:      userID,
			Name:        "Inter",
			LimitAmount: decimal.NewFromInt(1000),
			ClosingDay:  10,
			DueDay:      20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Card.Color != entity.DefaultCardColor {
			t.Errorf("expected default color, got %s", output.Card.Color)
		}
	})

	t.Run("rejects closing day outside 1-31", func(t *testing.T) {
		uc := NewCreateCardUseCase(newFakeCardRepo())

		for _, day := range []int{0, 32, -1} {
			_, err := uc.Execute(context.Background(), CreateCardInput{
				UserID:      userID,
				Name:        "Bad",
				LimitAmount: decimal.NewFromInt(1000),
				ClosingDay:  day,
				DueDay:      5,
			})
			if !errors.Is(err, domainerror.ErrInvalidClosingDay) {
				t.Errorf("closing day %d: expected ErrInvalidClosingDay, got %v", day, err)
			}
		}
	})

	t.Run("rejects due day outside 1-31", func(t *testing.T) {
		uc := NewCreateCardUseCase(newFakeCardRepo())

		_, err := uc.Execute(context.Background(), CreateCardInput{
			UserID:      userID,
			Name:        "Bad",
			LimitAmount: decimal.NewFromInt(1000),
			ClosingDay:  25,
			DueDay:      40,
		})
		if !errors.Is(err, domainerror.ErrInvalidDueDay) {
			t.Errorf("expected ErrInvalidDueDay, got %v", err)
		}
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		uc := NewCreateCardUseCase(newFakeCardRepo())

		_, err := uc.Execute(context.Background(), CreateCardInput{
			UserID:      userID,
			Name:        "Bad",
			LimitAmount: decimal.Zero,
			ClosingDay:  25,
			DueDay:      5,
		})
		if !errors.Is(err, domainerror.ErrInvalidCardLimit) {
			t.Errorf("expected ErrInvalidCardLimit, got %v", err)
		}
	})
}

func TestDeleteCardUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes a card without transactions", func(t *testing.T) {
		card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 25, 5, "#820AD1")
		repo := newFakeCardRepo(card)
		uc := NewDeleteCardUseCase(repo, &fakeTransactionRepo{})

		if err := uc.Execute(context.Background(), DeleteCardInput{UserID: userID, CardID: card.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.cards[card.ID]; ok {
			t.Error("expected card to be deleted")
		}
	})

	t.Run("refuses deletion while transactions reference the card", func(t *testing.T) {
		card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 25, 5, "#820AD1")
		repo := newFakeCardRepo(card)
		feb := time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			pendingCharge(userID, card.ID, "50.00", feb),
		}}
		uc := NewDeleteCardUseCase(repo, txnRepo)

		err := uc.Execute(context.Background(), DeleteCardInput{UserID: userID, CardID: card.ID})
		if !errors.Is(err, domainerror.ErrCardHasTransactions) {
			t.Errorf("expected ErrCardHasTransactions, got %v", err)
		}
		if _, ok := repo.cards[card.ID]; !ok {
			t.Error("expected card to remain")
		}
	})

	t.Run("refuses deletion of another user's card", func(t *testing.T) {
		card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 25, 5, "#820AD1")
		uc := NewDeleteCardUseCase(newFakeCardRepo(card), &fakeTransactionRepo{})

		err := uc.Execute(context.Background(), DeleteCardInput{UserID: uuid.New(), CardID: card.ID})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyCard) {
			t.Errorf("expected ErrNotAuthorizedToModifyCard, got %v", err)
		}
	})
}

func TestGetOverviewUseCase(t *testing.T) {
	userID := uuid.New()
	now := func() time.Time {
		return time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)
	}
	feb := time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	t.Run("available limit subtracts pending charges across all periods", func(t *testing.T) {
		card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(1000), 25, 5, "#820AD1")
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			pendingCharge(userID, card.ID, "300.00", feb),
			pendingCharge(userID, card.ID, "200.00", mar), // future installment
		}}
		uc := NewGetOverviewUseCase(
			newFakeCardRepo(card),
			txnRepo,
			invoice.NewCurrentPeriodResolver(txnRepo, nil).WithClock(now),
		)

		output, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Cards) != 1 {
			t.Fatalf("expected 1 card, got %d", len(output.Cards))
		}

		overview := output.Cards[0]
		if overview.AvailableLimit.StringFixed(2) != "500.00" {
			t.Errorf("expected available limit 500.00, got %s", overview.AvailableLimit)
		}
		if overview.Period.Month != time.February {
			t.Errorf("expected February period, got %v", overview.Period.Month)
		}
		if overview.Total.StringFixed(2) != "300.00" {
			t.Errorf("expected displayed total 300.00, got %s", overview.Total)
		}
	})

	t.Run("available limit floors at zero", func(t *testing.T) {
		card := entity.NewCreditCard(userID, "Inter", decimal.NewFromInt(100), 25, 5, "#FF7A00")
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			pendingCharge(userID, card.ID, "250.00", feb),
		}}
		uc := NewGetOverviewUseCase(
			newFakeCardRepo(card),
			txnRepo,
			invoice.NewCurrentPeriodResolver(txnRepo, nil).WithClock(now),
		)

		output, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Cards[0].AvailableLimit.IsZero() {
			t.Errorf("expected available limit 0, got %s", output.Cards[0].AvailableLimit)
		}
	})
}
