// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates multiple transactions atomically. Used for installment
// fan-out: either every installment row lands or none does.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, txn := range transactions {
			transactionModel := model.TransactionFromEntity(txn)
			if err := tx.Create(transactionModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Profile != nil {
		query = query.Where("profile = ?", string(*filter.Profile))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CardID != nil {
		query = query.Where("card_id = ?", *filter.CardID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindByCardAndPeriod retrieves a card's transactions whose invoice date falls
// within the given period.
func (r *transactionRepository) FindByCardAndPeriod(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) ([]*entity.Transaction, error) {
	start, end := period.Bounds()

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetInvoiceStats aggregates a card's invoice period in a single query.
func (r *transactionRepository) GetInvoiceStats(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (*entity.InvoiceStats, error) {
	start, end := period.Bounds()

	var row struct {
		Total   decimal.Decimal
		Pending decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"COALESCE(SUM(amount), 0) as total, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) as pending",
			string(entity.TransactionStatusPending),
		).
		Where("card_id = ?", cardID).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.InvoiceStats{Total: row.Total, Pending: row.Pending}, nil
}

// SumPendingByCard sums the amounts of all pending transactions for a card
// across every period.
func (r *transactionRepository) SumPendingByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("card_id = ?", cardID).
		Where("status = ?", string(entity.TransactionStatusPending)).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// SettlePeriod transitions every pending transaction of the card whose invoice
// date falls in the period to completed. The status predicate makes the update
// idempotent: rows settled by a concurrent payment are simply not matched.
func (r *transactionRepository) SettlePeriod(ctx context.Context, cardID uuid.UUID, period entity.InvoicePeriod) (int64, error) {
	start, end := period.Bounds()

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("card_id = ?", cardID).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Where("status = ?", string(entity.TransactionStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entity.TransactionStatusCompleted),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByCard counts transactions referencing a card, across all periods.
func (r *transactionRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("card_id = ?", cardID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
