// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePeriod identifies a monthly billing cycle by the (month, year) of
// its due date.
type InvoicePeriod struct {
	Month time.Month
	Year  int
}

// PeriodOf returns the invoice period a date falls in.
func PeriodOf(t time.Time) InvoicePeriod {
	return InvoicePeriod{Month: t.Month(), Year: t.Year()}
}

// Next returns the following invoice period, rolling the year past December.
func (p InvoicePeriod) Next() InvoicePeriod {
	if p.Month == time.December {
		return InvoicePeriod{Month: time.January, Year: p.Year + 1}
	}
	return InvoicePeriod{Month: p.Month + 1, Year: p.Year}
}

// Contains reports whether the given date falls within the period.
func (p InvoicePeriod) Contains(t time.Time) bool {
	return t.Month() == p.Month && t.Year() == p.Year
}

// Bounds returns the half-open UTC time range [start, end) covering the
// period's calendar month. Used for range queries over invoice dates.
func (p InvoicePeriod) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// String returns the period in "YYYY-MM" form, e.g. "2024-02".
func (p InvoicePeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// monthNames holds pt-BR month names for invoice display, January first.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the localized month name for display, e.g. "fevereiro".
func (p InvoicePeriod) MonthName() string {
	return monthNames[int(p.Month)-1]
}

// InvoiceStats holds the aggregated amounts of one card's invoice period.
// Pending is always less than or equal to Total; both are non-negative.
type InvoiceStats struct {
	Total   decimal.Decimal
	Pending decimal.Decimal
}

// IsSettled reports whether the period has charges and all of them are paid.
func (s InvoiceStats) IsSettled() bool {
	return s.Total.IsPositive() && s.Pending.IsZero()
}
