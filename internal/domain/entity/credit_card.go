// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCardColor is the default display color for credit cards.
const DefaultCardColor = "#4F46E5"

// CreditCard represents a credit card in the Finance Dashboard system.
// ClosingDay and DueDay drive the billing-cycle engine: purchases made on or
// after ClosingDay roll into the next statement, and DueDay < ClosingDay
// pushes the due date one calendar month past the statement month.
type CreditCard struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	LimitAmount decimal.Decimal
	ClosingDay  int // Day of month the statement closes (1-31)
	DueDay      int // Day of month payment is due (1-31)
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCreditCard creates a new CreditCard entity.
// Day-of-month validation is the responsibility of the application layer.
func NewCreditCard(
	userID uuid.UUID,
	name string,
	limitAmount decimal.Decimal,
	closingDay int,
	dueDay int,
	color string,
) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		LimitAmount: limitAmount,
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AvailableLimit returns the card's remaining limit after subtracting the
// given total of pending charges. The limit consumed counts every pending
// installment across all periods, not just the current one, and the result
// is floored at zero.
func (c *CreditCard) AvailableLimit(pendingTotal decimal.Decimal) decimal.Decimal {
	available := c.LimitAmount.Sub(pendingTotal)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// CardOverview represents a card together with its resolved current invoice
// period, as shown on the dashboard.
type CardOverview struct {
	Card           *CreditCard
	AvailableLimit decimal.Decimal
	Period         *InvoicePeriod
	MonthName      string
	Total          decimal.Decimal
	Pending        decimal.Decimal
}
