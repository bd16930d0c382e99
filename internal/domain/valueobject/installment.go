// Package valueobject contains domain value objects for the Finance Dashboard system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one dated portion of a purchase split across consecutive
// invoice periods.
type Installment struct {
	Amount            decimal.Decimal
	InstallmentNumber int
	InvoiceDate       time.Time
}

// GenerateInstallments splits a purchase into count installments distributed
// across consecutive monthly invoices of a card.
//
// Each installment gets totalAmount/count rounded to cents; any rounding
// remainder is absorbed into the first installment so the amounts always sum
// to totalAmount exactly. The first invoice date comes from
// CalculateInvoiceDate; installment i is that date advanced i whole months,
// keeping the due day stable, rather than recomputing from a shifted
// purchase date.
//
// count must be at least 1; validation happens at the application boundary.
func GenerateInstallments(
	totalAmount decimal.Decimal,
	count int,
	purchaseDate time.Time,
	closingDay, dueDay int,
) []Installment {
	perInstallment := totalAmount.Div(decimal.NewFromInt(int64(count))).Round(2)
	firstInvoiceDate := CalculateInvoiceDate(purchaseDate, closingDay, dueDay)

	installments := make([]Installment, count)
	for i := 0; i < count; i++ {
		installments[i] = Installment{
			Amount:            perInstallment,
			InstallmentNumber: i + 1,
			InvoiceDate:       AdvanceMonths(firstInvoiceDate, i),
		}
	}

	// Cent correction: push the rounding remainder into the first installment.
	diff := totalAmount.Sub(perInstallment.Mul(decimal.NewFromInt(int64(count))))
	if !diff.IsZero() {
		installments[0].Amount = installments[0].Amount.Add(diff)
	}

	return installments
}
