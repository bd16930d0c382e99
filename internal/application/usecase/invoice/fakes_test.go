package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// fakeCardRepo is an in-memory adapter.CardRepository for tests.
type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func newFakeCardRepo(cards ...*entity.CreditCard) *fakeCardRepo {
	repo := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.CreditCard)}
	for _, card := range cards {
		repo.cards[card.ID] = card
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
	for _, card := range r.cards {
		if card.UserID == userID {
			result = append(result, card)
		}
	}
	return result, nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cards, id)
	return nil
}

// fakeTransactionRepo is an in-memory adapter.TransactionRepository for tests.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	r.transactions = append(r.transactions, transactions...)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
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
		if filter.CardID != nil && (txn.CardID == nil || *txn.CardID != *filter.CardID) {
			continue
		}
		result = append(result, txn)
	}
	return result, nil
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

func (r *fakeTransactionRepo) SettlePeriod(_ context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (int64, error) {
	var count int64
	for _, txn := range r.transactions {
		if txn.CardID != nil && *txn.CardID == cardID &&
			txn.Status == entity.TransactionStatusPending && txn.InInvoicePeriod(period) {
			txn.Status = entity.TransactionStatusCompleted
			count++
		}
	}
	return count, nil
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

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, txn := range r.transactions {
		if txn.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, txn := range r.transactions {
		if txn.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

// fakeCache counts hits and invalidations.
type fakeCache struct {
	entries       map[string]*entity.InvoiceStats
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*entity.InvoiceStats)}
}

func (c *fakeCache) key(cardID uuid.UUID, period entity.InvoicePeriod) string {
	return cardID.String() + ":" + period.String()
}

func (c *fakeCache) Get(_ context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	return c.entries[c.key(cardID, period)], nil
}

func (c *fakeCache) Set(_ context.Context, cardID uuid.UUID, period entity.InvoicePeriod, stats *entity.InvoiceStats) error {
	c.entries[c.key(cardID, period)] = stats
	return nil
}

func (c *fakeCache) InvalidateCard(_ context.Context, cardID uuid.UUID) error {
	c.invalidations++
	for key := range c.entries {
		if len(key) >= 36 && key[:36] == cardID.String() {
			delete(c.entries, key)
		}
	}
	return nil
}

// cardCharge builds a pending credit-card transaction with the given invoice date.
func cardCharge(userID, cardID uuid.UUID, amount string, invoiceDate time.Time, status entity.TransactionStatus) *entity.Transaction {
	txn := entity.NewTransaction(
		userID,
		"charge",
		decimal.RequireFromString(amount),
		entity.TransactionTypeExpense,
		nil,
		invoiceDate.AddDate(0, -1, 0),
		status,
		entity.PaymentMethodCreditCard,
		entity.ProfilePersonal,
	)
	txn.CardID = &cardID
	txn.InvoiceDate = &invoiceDate
	return txn
}
